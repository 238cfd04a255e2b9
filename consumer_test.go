package notch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumer_Queries(t *testing.T) {
	p := ProviderFunc(func() (Rect, bool) { return NewRect(100, 0, 200, 50), true })
	a := newTestAdjuster(t, p, WithProcessWideRules(SeriesRule("iPhone", 0.9, 1, 0)))

	c := a.NewConsumer()
	assert.InDelta(t, 180, c.Width(iPhone), 1e-9)

	require.NoError(t, c.SetRules(ExactRule(iPhone, 0.8, 0.7, 12)))
	r := c.Rect(iPhone)
	assert.InDelta(t, 120, r.X, 1e-9)
	assert.InDelta(t, 160, r.Width, 1e-9)
	assert.InDelta(t, 35, r.Height, 1e-9)
	assert.InDelta(t, 160, c.Width(iPhone), 1e-9)

	insets := c.SafeInsets(iPhone)
	assert.InDelta(t, 35, insets.Top, 1e-9)
	assert.Zero(t, insets.Left)

	res := c.Resolve(iPhone)
	assert.True(t, res.Matched)
	assert.Equal(t, "local-exact", res.Tier.String())
	assert.Equal(t, 12.0, res.Rule.CornerRadius)

	other := a.NewConsumer()
	assert.InDelta(t, 180, other.Width(iPhone), 1e-9, "consumer rules do not leak")
	assert.InDelta(t, 200, other.Width("Pixel8"), 1e-9)
}

func TestConsumer_ExplicitReplacesOwnRules(t *testing.T) {
	a := newTestAdjuster(t, nil, WithProcessWideRules(ExactRule(iPhone, 0.5, 1, 0)))
	c := a.NewConsumer()
	require.NoError(t, c.SetRules(ExactRule(iPhone, 0.1, 1, 0)))

	raw := NewRect(0, 0, 100, 10)
	assert.InDelta(t, 10, c.Adjust(raw, iPhone, nil).Width, 1e-9)

	empty := NewRuleSet()
	assert.InDelta(t, 50, c.Adjust(raw, iPhone, &empty).Width, 1e-9)

	explicit := NewRuleSet(SeriesRule("iPhone", 0.3, 1, 0))
	assert.InDelta(t, 30, c.Adjust(raw, iPhone, &explicit).Width, 1e-9)
}

func TestConsumer_NoCutout(t *testing.T) {
	a := newTestAdjuster(t, nil, WithProcessWideRules(SeriesRule("", 0.5, 1, 0)))
	c := a.NewConsumer()

	assert.Zero(t, c.Width(iPhone))
	assert.Equal(t, Rect{}, c.Rect(iPhone))
	assert.True(t, c.SafeInsets(iPhone).IsZero())
}

func TestDefault(t *testing.T) {
	p := ProviderFunc(func() (Rect, bool) { return NewRect(0, 0, 100, 10), true })
	a := Default(p)
	assert.Same(t, a, Default(nil))
	assert.Same(t, DefaultRegistry(), a.Registry())
}

func TestConsumer_SafeArea(t *testing.T) {
	p := ProviderFunc(func() (Rect, bool) { return NewRect(126, 11, 141, 37), true })
	a := newTestAdjuster(t, p, WithProcessWideRules(ExactRule(iPhone, 1, 0.5, 0)))
	c := a.NewConsumer()

	type tc struct {
		screen   Rect
		device   string
		expected Rect
	}

	tests := map[string]tc{
		"below reported cutout": {
			screen:   NewRect(0, 0, 393, 852),
			device:   "Pixel8",
			expected: NewRect(0, 48, 393, 804),
		},
		"below adjusted cutout": {
			screen:   NewRect(0, 0, 393, 852),
			device:   iPhone,
			expected: NewRect(0, 29.5, 393, 822.5),
		},
		"cutout clipped to screen": {
			screen:   NewRect(0, 20, 393, 100),
			device:   "Pixel8",
			expected: NewRect(0, 48, 393, 72),
		},
		"cutout outside screen": {
			screen:   NewRect(0, 100, 393, 100),
			device:   "Pixel8",
			expected: NewRect(0, 100, 393, 100),
		},
		"cutout covers screen": {
			screen:   NewRect(130, 12, 10, 10),
			device:   "Pixel8",
			expected: Rect{},
		},
		"empty screen": {
			screen:   NewRect(0, 0, 0, 852),
			device:   "Pixel8",
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.SafeArea(tt.screen, tt.device))
		})
	}
}

func TestConsumer_SafeAreaNoCutout(t *testing.T) {
	c := newTestAdjuster(t, nil).NewConsumer()
	screen := NewRect(0, 0, 393, 852)
	assert.Equal(t, screen, c.SafeArea(screen, iPhone))
}
