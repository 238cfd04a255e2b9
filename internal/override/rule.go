package override

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-notch/internal/layout"
)

// MatchMode specifies how a rule's key is compared to a device identifier.
type MatchMode uint8

const (
	// Exact matches when the key equals the device identifier.
	Exact MatchMode = iota
	// Prefix matches every device identifier that starts with the key,
	// covering a whole device series with one rule.
	Prefix
)

// String returns the lowercase name used in rule files and diagnostics.
func (m MatchMode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	default:
		return fmt.Sprintf("MatchMode(%d)", uint8(m))
	}
}

// ParseMatchMode parses "exact" or "prefix" (case-insensitive).
// "series" is accepted as an alias for prefix.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return Exact, nil
	case "prefix", "series":
		return Prefix, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Rule is a correction applied to the reported cutout rectangle of a device
// or device family. Rules are plain values with no identity.
type Rule struct {
	Key          string
	WidthScale   float64
	HeightScale  float64
	CornerRadius float64 // carried for display only
	Mode         MatchMode
}

// ExactRule creates a rule matching exactly one device identifier.
func ExactRule(key string, widthScale, heightScale, cornerRadius float64) Rule {
	return Rule{Key: key, WidthScale: widthScale, HeightScale: heightScale, CornerRadius: cornerRadius, Mode: Exact}
}

// SeriesRule creates a rule matching every identifier starting with prefix.
func SeriesRule(prefix string, widthScale, heightScale, cornerRadius float64) Rule {
	return Rule{Key: prefix, WidthScale: widthScale, HeightScale: heightScale, CornerRadius: cornerRadius, Mode: Prefix}
}

// Matches reports whether the rule applies to deviceID.
// An empty prefix key matches every identifier.
func (r Rule) Matches(deviceID string) bool {
	switch r.Mode {
	case Exact:
		return r.Key == deviceID
	case Prefix:
		return strings.HasPrefix(deviceID, r.Key)
	default:
		return false
	}
}

// Apply scales rect by the rule. The result stays horizontally centered on
// the original rect and keeps its top edge; only the bottom edge moves with
// the height change. Scales are not validated, so non-positive values yield
// degenerate rectangles.
func (r Rule) Apply(rect layout.Rect) layout.Rect {
	w := rect.Width * r.WidthScale
	h := rect.Height * r.HeightScale
	return layout.Rect{
		X:      rect.X + (rect.Width-w)/2,
		Y:      rect.Y,
		Width:  w,
		Height: h,
	}
}
