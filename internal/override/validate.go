package override

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidScale  = errors.New("scale must be a finite value greater than zero")
	ErrInvalidRadius = errors.New("corner radius must be a finite value of at least zero")
	ErrEmptyKey      = errors.New("match key is empty")
	ErrUnknownMode   = errors.New("unknown match mode")
)

// Validate checks rules for values the adjuster would turn into degenerate
// rectangles. It is only used in strict mode; the adjuster itself accepts
// any rule. All problems are reported, joined into one error.
func Validate(rules ...Rule) error {
	var errs []error
	for i, r := range rules {
		if r.Key == "" {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, ErrEmptyKey))
		}
		if r.Mode != Exact && r.Mode != Prefix {
			errs = append(errs, fmt.Errorf("rule %d (%q): %w: %v", i, r.Key, ErrUnknownMode, r.Mode))
		}
		if !validScale(r.WidthScale) {
			errs = append(errs, fmt.Errorf("rule %d (%q): width: %w, got %v", i, r.Key, ErrInvalidScale, r.WidthScale))
		}
		if !validScale(r.HeightScale) {
			errs = append(errs, fmt.Errorf("rule %d (%q): height: %w, got %v", i, r.Key, ErrInvalidScale, r.HeightScale))
		}
		if math.IsNaN(r.CornerRadius) || math.IsInf(r.CornerRadius, 0) || r.CornerRadius < 0 {
			errs = append(errs, fmt.Errorf("rule %d (%q): %w, got %v", i, r.Key, ErrInvalidRadius, r.CornerRadius))
		}
	}
	return errors.Join(errs...)
}

func validScale(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
