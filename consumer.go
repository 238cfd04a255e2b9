package notch

import (
	"github.com/grindlemire/go-notch/internal/layout"
	"github.com/grindlemire/go-notch/internal/override"
)

// Consumer is a per-consumer context, typically one per screen or view that
// lays out content around the cutout. Its rules take precedence over the
// process-wide rules of its Adjuster.
type Consumer struct {
	adjuster *Adjuster
	scope    *override.Scope
}

// SetRules replaces this consumer's rules. It only fails in strict mode, in
// which case the previous rules stay in place.
func (c *Consumer) SetRules(rules ...Rule) error {
	if c.adjuster.strict {
		if err := override.Validate(rules...); err != nil {
			return err
		}
	}
	c.scope.SetConsumerRules(rules...)
	return nil
}

// Rules returns a snapshot of this consumer's rules.
func (c *Consumer) Rules() RuleSet {
	return c.scope.ConsumerRules()
}

// Adjust applies the first matching rule to raw. A non-nil explicit replaces
// this consumer's rules for the call.
func (c *Consumer) Adjust(raw Rect, deviceID string, explicit *RuleSet) Rect {
	local := c.scope.ConsumerRules()
	if explicit != nil {
		local = *explicit
	}
	return c.adjuster.adjust(raw, deviceID, local)
}

// Resolve reports which rule, if any, applies to deviceID for this consumer.
func (c *Consumer) Resolve(deviceID string) Resolution {
	return c.scope.Resolve(deviceID, nil)
}

// Rect returns the adjusted cutout for deviceID, or the zero Rect when the
// device has no cutout.
func (c *Consumer) Rect(deviceID string) Rect {
	raw, _ := c.adjuster.RawCutout()
	return c.Adjust(raw, deviceID, nil)
}

// Width returns the adjusted cutout width for deviceID. Hosts call it on
// every layout pass.
func (c *Consumer) Width(deviceID string) float64 {
	return c.Rect(deviceID).Width
}

// SafeInsets returns the band a layout should keep clear at the top of the
// screen: the adjusted cutout's bottom edge, or zero without a cutout.
func (c *Consumer) SafeInsets(deviceID string) Edges {
	r := c.Rect(deviceID)
	if r.IsEmpty() {
		return Edges{}
	}
	return layout.EdgeTRBL(r.Bottom(), 0, 0, 0)
}

// SafeArea returns the part of screen below the adjusted cutout. The cutout
// is clipped to screen first; without an overlap the whole screen is safe.
// An empty screen yields the zero Rect.
func (c *Consumer) SafeArea(screen Rect, deviceID string) Rect {
	screen = screen.Normalize()
	cut := c.Rect(deviceID).Intersect(screen)
	if cut.IsEmpty() {
		return screen
	}
	top := cut.Bottom() - screen.Y
	return screen.Inset(layout.EdgeTRBL(top, 0, 0, 0)).Normalize()
}
