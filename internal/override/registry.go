package override

import "sync/atomic"

// Registry holds the process-wide RuleSet. Writers replace the whole set;
// readers load a snapshot that later writes never modify.
// The zero Registry is empty and ready to use.
type Registry struct {
	global atomic.Pointer[RuleSet]
}

// NewRegistry creates a Registry seeded with rules.
func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{}
	r.SetProcessWideRules(rules...)
	return r
}

// SetProcessWideRules replaces the process-wide rules. Contents are not
// validated.
func (r *Registry) SetProcessWideRules(rules ...Rule) {
	set := NewRuleSet(rules...)
	r.global.Store(&set)
}

// ProcessWideRules returns a snapshot of the process-wide rules.
func (r *Registry) ProcessWideRules() RuleSet {
	return load(&r.global)
}

// NewScope creates a consumer-scoped rule holder bound to r.
func (r *Registry) NewScope() *Scope {
	return &Scope{registry: r}
}

// Scope holds the rules of a single consumer. Only the owning consumer
// should write to it; reads are safe from any goroutine.
type Scope struct {
	registry *Registry
	local    atomic.Pointer[RuleSet]
}

// Registry returns the registry the scope reads process-wide rules from.
func (s *Scope) Registry() *Registry {
	return s.registry
}

// SetConsumerRules replaces this scope's rules.
func (s *Scope) SetConsumerRules(rules ...Rule) {
	set := NewRuleSet(rules...)
	s.local.Store(&set)
}

// ConsumerRules returns a snapshot of this scope's rules.
func (s *Scope) ConsumerRules() RuleSet {
	return load(&s.local)
}

// Resolve resolves deviceID against explicit when non-nil, otherwise against
// the scope's own rules, and then against the registry's process-wide rules.
func (s *Scope) Resolve(deviceID string, explicit *RuleSet) Resolution {
	local := s.ConsumerRules()
	if explicit != nil {
		local = *explicit
	}
	var global RuleSet
	if s.registry != nil {
		global = s.registry.ProcessWideRules()
	}
	return Resolve(deviceID, local, global)
}

func load(p *atomic.Pointer[RuleSet]) RuleSet {
	if set := p.Load(); set != nil {
		return *set
	}
	return RuleSet{}
}
