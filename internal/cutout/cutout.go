// Package cutout abstracts discovery of the raw cutout rectangle.
//
// How a platform finds its notch or camera island is outside this module: a
// [Provider] is any function returning an optional rectangle. [Cache] makes
// sure discovery runs at most once per process.
package cutout

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/grindlemire/go-notch/internal/layout"
)

// Provider reports the raw cutout rectangle of the current device.
// ok is false when the device has no cutout.
type Provider interface {
	Cutout() (rect layout.Rect, ok bool)
}

// ProviderFunc adapts a function to a Provider.
type ProviderFunc func() (layout.Rect, bool)

// Cutout calls f.
func (f ProviderFunc) Cutout() (layout.Rect, bool) {
	return f()
}

// Static returns a Provider that always reports rect.
func Static(rect layout.Rect) Provider {
	return ProviderFunc(func() (layout.Rect, bool) { return rect, true })
}

// None returns a Provider for devices without a cutout.
func None() Provider {
	return ProviderFunc(func() (layout.Rect, bool) { return layout.Rect{}, false })
}

// Cache invokes its Provider at most once, on first access, and serves the
// normalized result afterwards. Concurrent first callers wait for the single
// discovery to finish.
type Cache struct {
	provider Provider
	once     sync.Once
	rect     layout.Rect
	found    bool
}

// NewCache wraps p. A nil p behaves like None.
func NewCache(p Provider) *Cache {
	if p == nil {
		p = None()
	}
	return &Cache{provider: p}
}

// Cutout returns the cached rectangle. A reported rectangle that is empty is
// treated as no cutout.
func (c *Cache) Cutout() (layout.Rect, bool) {
	c.once.Do(func() {
		rect, ok := c.provider.Cutout()
		if !ok {
			return
		}
		c.rect = rect.Normalize()
		c.found = !rect.IsEmpty()
	})
	return c.rect, c.found
}

// ParseRect parses "x,y,width,height". Whitespace around values is ignored.
func ParseRect(s string) (layout.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return layout.Rect{}, fmt.Errorf("cutout %q: want 4 comma-separated values, got %d", s, len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return layout.Rect{}, fmt.Errorf("cutout %q: value %d: %w", s, i, err)
		}
		v[i] = f
	}
	return layout.NewRect(v[0], v[1], v[2], v[3]), nil
}

// FromString returns a Static provider for a rectangle in ParseRect format,
// or None when s is empty.
func FromString(s string) (Provider, error) {
	if strings.TrimSpace(s) == "" {
		return None(), nil
	}
	rect, err := ParseRect(s)
	if err != nil {
		return nil, err
	}
	return Static(rect), nil
}
