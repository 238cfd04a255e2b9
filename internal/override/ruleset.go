package override

// RuleSet is an immutable ordered list of rules. Insertion order breaks ties
// between rules of the same mode that match the same device.
// The zero RuleSet is empty and ready to use.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates a RuleSet holding a copy of rules.
func NewRuleSet(rules ...Rule) RuleSet {
	if len(rules) == 0 {
		return RuleSet{}
	}
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return RuleSet{rules: cp}
}

// Len returns the number of rules.
func (s RuleSet) Len() int {
	return len(s.rules)
}

// Rules returns a copy of the rules in insertion order.
func (s RuleSet) Rules() []Rule {
	if len(s.rules) == 0 {
		return nil
	}
	cp := make([]Rule, len(s.rules))
	copy(cp, s.rules)
	return cp
}

// First returns the first rule with the given mode that matches deviceID.
func (s RuleSet) First(mode MatchMode, deviceID string) (Rule, bool) {
	for _, r := range s.rules {
		if r.Mode == mode && r.Matches(deviceID) {
			return r, true
		}
	}
	return Rule{}, false
}
