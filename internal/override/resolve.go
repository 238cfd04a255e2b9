package override

import "fmt"

// Source names which rule set a tier reads.
type Source uint8

const (
	// Local is the explicit rule list passed to a query, or the consumer's rules.
	Local Source = iota
	// Global is the process-wide rule list.
	Global
)

// Tier is one pass of the precedence search.
type Tier struct {
	Source Source
	Mode   MatchMode
}

// String returns names such as "local-exact" or "global-prefix".
func (t Tier) String() string {
	src := "local"
	if t.Source == Global {
		src = "global"
	}
	return fmt.Sprintf("%s-%s", src, t.Mode)
}

// Tiers is the precedence order. Scope dominates mode: any local match beats
// any global match, and exact beats prefix within a scope.
var Tiers = [...]Tier{
	{Source: Local, Mode: Exact},
	{Source: Local, Mode: Prefix},
	{Source: Global, Mode: Exact},
	{Source: Global, Mode: Prefix},
}

// Resolution is the outcome of a precedence search.
type Resolution struct {
	Rule    Rule
	Tier    Tier
	Matched bool
}

// Resolve walks Tiers in order and returns the first rule that matches
// deviceID. Within a tier the first rule in insertion order wins.
func Resolve(deviceID string, local, global RuleSet) Resolution {
	for _, tier := range Tiers {
		set := local
		if tier.Source == Global {
			set = global
		}
		if rule, ok := set.First(tier.Mode, deviceID); ok {
			return Resolution{Rule: rule, Tier: tier, Matched: true}
		}
	}
	return Resolution{}
}
