// layout.go re-exports types from the internal packages.
// Any changes to those types must be mirrored here.
package notch

import (
	"github.com/grindlemire/go-notch/internal/cutout"
	"github.com/grindlemire/go-notch/internal/debug"
	"github.com/grindlemire/go-notch/internal/layout"
	"github.com/grindlemire/go-notch/internal/override"
)

// Rect represents a rectangle in logical device coordinates.
type Rect = layout.Rect

// Edges represents values for four sides of a box.
type Edges = layout.Edges

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// Rule is an adjustment applied to a device's cutout rectangle.
type Rule = override.Rule

// RuleSet is an immutable ordered list of rules.
type RuleSet = override.RuleSet

// MatchMode specifies how a rule's key is compared to a device identifier.
type MatchMode = override.MatchMode

const (
	Exact  = override.Exact
	Prefix = override.Prefix
)

// Registry holds process-wide rules; share one between Adjusters with
// WithRegistry.
type Registry = override.Registry

// NewRegistry creates a Registry seeded with rules.
func NewRegistry(rules ...Rule) *Registry {
	return override.NewRegistry(rules...)
}

// Tier is one pass of the precedence search.
type Tier = override.Tier

// Resolution is the outcome of a precedence search.
type Resolution = override.Resolution

// ExactRule creates a rule matching exactly one device identifier.
func ExactRule(key string, widthScale, heightScale, cornerRadius float64) Rule {
	return override.ExactRule(key, widthScale, heightScale, cornerRadius)
}

// SeriesRule creates a rule matching every identifier starting with prefix.
func SeriesRule(prefix string, widthScale, heightScale, cornerRadius float64) Rule {
	return override.SeriesRule(prefix, widthScale, heightScale, cornerRadius)
}

// NewRuleSet creates a RuleSet holding a copy of rules.
func NewRuleSet(rules ...Rule) RuleSet {
	return override.NewRuleSet(rules...)
}

// Provider reports the raw cutout rectangle of the current device.
type Provider = cutout.Provider

// ProviderFunc adapts a function to a Provider.
type ProviderFunc = cutout.ProviderFunc

// Sink receives diagnostics messages.
type Sink = debug.Sink

var (
	ErrInvalidScale  = override.ErrInvalidScale
	ErrInvalidRadius = override.ErrInvalidRadius
	ErrEmptyKey      = override.ErrEmptyKey
	ErrUnknownMode   = override.ErrUnknownMode
)

// Validate reports rules that would produce degenerate rectangles.
func Validate(rules ...Rule) error {
	return override.Validate(rules...)
}
