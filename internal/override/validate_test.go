package override

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	type tc struct {
		rules []Rule
		want  []error
	}

	tests := map[string]tc{
		"valid": {
			rules: []Rule{ExactRule("iPhone14,3", 0.8, 0.7, 12), SeriesRule("iPhone", 1, 1, 0)},
		},
		"no rules": {},
		"zero width scale": {
			rules: []Rule{ExactRule("a", 0, 1, 0)},
			want:  []error{ErrInvalidScale},
		},
		"nan height scale": {
			rules: []Rule{ExactRule("a", 1, math.NaN(), 0)},
			want:  []error{ErrInvalidScale},
		},
		"negative radius": {
			rules: []Rule{ExactRule("a", 1, 1, -1)},
			want:  []error{ErrInvalidRadius},
		},
		"empty key": {
			rules: []Rule{SeriesRule("", 1, 1, 0)},
			want:  []error{ErrEmptyKey},
		},
		"unknown mode": {
			rules: []Rule{{Key: "a", WidthScale: 1, HeightScale: 1, Mode: MatchMode(3)}},
			want:  []error{ErrUnknownMode},
		},
		"several problems joined": {
			rules: []Rule{ExactRule("", -1, 1, 0), ExactRule("b", 1, math.Inf(1), math.NaN())},
			want:  []error{ErrEmptyKey, ErrInvalidScale, ErrInvalidRadius},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := Validate(tt.rules...)
			if len(tt.want) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, target := range tt.want {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestValidate_MentionsIndex(t *testing.T) {
	err := Validate(ExactRule("ok", 1, 1, 0), ExactRule("bad", 0, 1, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule 1 ("bad")`)
}
