package notch

import (
	"github.com/grindlemire/go-notch/internal/cutout"
	"github.com/grindlemire/go-notch/internal/debug"
	"github.com/grindlemire/go-notch/internal/override"
)

// Adjuster owns the process-wide override rules and the cached cutout
// discovery. It is safe for concurrent use.
type Adjuster struct {
	registry *override.Registry
	cutout   *cutout.Cache
	sink     Sink
	strict   bool
	seed     []Rule
}

// New creates an Adjuster that discovers the raw cutout with p, at most once.
// A nil p means the device has no cutout.
func New(p Provider, opts ...Option) (*Adjuster, error) {
	a := &Adjuster{}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.sink == nil {
		a.sink = debug.Nop()
	}
	if a.registry == nil {
		a.registry = override.NewRegistry()
	}
	a.cutout = cutout.NewCache(a.discover(p))
	if len(a.seed) > 0 {
		if err := a.SetProcessWideRules(a.seed...); err != nil {
			return nil, err
		}
		a.seed = nil
	}
	return a, nil
}

// Registry returns the process-wide rule registry.
func (a *Adjuster) Registry() *Registry {
	return a.registry
}

// SetProcessWideRules replaces the process-wide rules. It only fails in
// strict mode, in which case the previous rules stay in place.
func (a *Adjuster) SetProcessWideRules(rules ...Rule) error {
	if a.strict {
		if err := override.Validate(rules...); err != nil {
			return err
		}
	}
	a.registry.SetProcessWideRules(rules...)
	return nil
}

// ProcessWideRules returns a snapshot of the process-wide rules.
func (a *Adjuster) ProcessWideRules() RuleSet {
	return a.registry.ProcessWideRules()
}

// Adjust applies the first matching rule to raw. explicit, when non-nil,
// takes the place of consumer rules; Adjust itself has no consumer, so a nil
// explicit leaves only the process-wide rules.
func (a *Adjuster) Adjust(raw Rect, deviceID string, explicit *RuleSet) Rect {
	local := RuleSet{}
	if explicit != nil {
		local = *explicit
	}
	return a.adjust(raw, deviceID, local)
}

func (a *Adjuster) adjust(raw Rect, deviceID string, local RuleSet) Rect {
	if raw.IsEmpty() {
		return Rect{}
	}
	res := override.Resolve(deviceID, local, a.registry.ProcessWideRules())
	if !res.Matched {
		a.sink.Debugf("no override matched device %q", deviceID)
		return raw
	}
	a.sink.Debugf("override %q (%s) applied to device %q", res.Rule.Key, res.Tier, deviceID)
	return res.Rule.Apply(raw)
}

// discover wraps p so the single discovery is reported to the sink.
func (a *Adjuster) discover(p Provider) Provider {
	if p == nil {
		p = cutout.None()
	}
	return cutout.ProviderFunc(func() (Rect, bool) {
		rect, ok := p.Cutout()
		switch {
		case !ok:
			a.sink.Infof("no cutout found")
		case rect.IsEmpty():
			a.sink.Infof("cutout reported as empty rect %+v, ignoring", rect)
		default:
			a.sink.Infof("cutout found: %+v", rect)
		}
		return rect, ok
	})
}

// RawCutout returns the cached, normalized cutout reported by the provider.
func (a *Adjuster) RawCutout() (Rect, bool) {
	return a.cutout.Cutout()
}

// CutoutRect discovers the raw cutout and adjusts it for deviceID using
// explicit (if non-nil) and the process-wide rules.
func (a *Adjuster) CutoutRect(deviceID string, explicit *RuleSet) Rect {
	raw, _ := a.RawCutout()
	return a.Adjust(raw, deviceID, explicit)
}

// NewConsumer creates a consumer context with its own rules.
func (a *Adjuster) NewConsumer() *Consumer {
	return &Consumer{adjuster: a, scope: a.registry.NewScope()}
}
