package notch

import (
	"fmt"

	"github.com/grindlemire/go-notch/internal/debug"
)

// Option is a functional option for configuring an Adjuster.
type Option func(*Adjuster) error

// WithSink sets the diagnostics sink. Default is a no-op sink. The caller
// owns the sink and closes it if it holds resources.
func WithSink(s Sink) Option {
	return func(a *Adjuster) error {
		if s == nil {
			return fmt.Errorf("sink must not be nil; use a no-op sink to disable diagnostics")
		}
		a.sink = s
		return nil
	}
}

// WithRegistry shares an existing process-wide rule registry.
func WithRegistry(r *Registry) Option {
	return func(a *Adjuster) error {
		if r == nil {
			return fmt.Errorf("registry must not be nil")
		}
		a.registry = r
		return nil
	}
}

// WithProcessWideRules seeds the process-wide rules.
func WithProcessWideRules(rules ...Rule) Option {
	return func(a *Adjuster) error {
		a.seed = append(a.seed, rules...)
		return nil
	}
}

// WithStrictValidation makes the rule setters reject rules with
// non-positive scales, negative corner radii or empty keys. By default rules
// are accepted as given and bad values yield degenerate rectangles.
func WithStrictValidation() Option {
	return func(a *Adjuster) error {
		a.strict = true
		return nil
	}
}

// NopSink returns a Sink that discards everything.
func NopSink() Sink {
	return debug.Nop()
}
