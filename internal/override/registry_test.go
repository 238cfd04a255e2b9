package override

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ZeroValue(t *testing.T) {
	var r Registry
	assert.Equal(t, 0, r.ProcessWideRules().Len())

	s := r.NewScope()
	assert.Equal(t, 0, s.ConsumerRules().Len())
	assert.Same(t, &r, s.Registry())
}

func TestRegistry_ReplaceIsWholesale(t *testing.T) {
	r := NewRegistry(ExactRule("a", 1, 1, 0), ExactRule("b", 1, 1, 0))
	require.Equal(t, 2, r.ProcessWideRules().Len())

	before := r.ProcessWideRules()
	r.SetProcessWideRules(SeriesRule("c", 1, 1, 0))

	assert.Equal(t, 2, before.Len(), "held snapshot must not change")
	after := r.ProcessWideRules().Rules()
	require.Len(t, after, 1)
	assert.Equal(t, "c", after[0].Key)

	r.SetProcessWideRules()
	assert.Equal(t, 0, r.ProcessWideRules().Len())
}

func TestScope_Independent(t *testing.T) {
	r := NewRegistry()
	a := r.NewScope()
	b := r.NewScope()

	a.SetConsumerRules(ExactRule("iPhone14,3", 0.5, 1, 0))

	assert.Equal(t, 1, a.ConsumerRules().Len())
	assert.Equal(t, 0, b.ConsumerRules().Len())
	assert.Equal(t, 0, r.ProcessWideRules().Len())
}

func TestScope_ResolveExplicitReplacesLocal(t *testing.T) {
	r := NewRegistry(SeriesRule("iPhone", 0.9, 1, 0))
	s := r.NewScope()
	s.SetConsumerRules(ExactRule("iPhone14,3", 0.5, 1, 0))

	res := s.Resolve("iPhone14,3", nil)
	assert.Equal(t, "local-exact", res.Tier.String())
	assert.Equal(t, 0.5, res.Rule.WidthScale)

	explicit := NewRuleSet(SeriesRule("iPhone14", 0.7, 1, 0))
	res = s.Resolve("iPhone14,3", &explicit)
	assert.Equal(t, "local-prefix", res.Tier.String())
	assert.Equal(t, 0.7, res.Rule.WidthScale)

	empty := RuleSet{}
	res = s.Resolve("iPhone14,3", &empty)
	assert.Equal(t, "global-prefix", res.Tier.String(), "an explicit empty list hides consumer rules")
}

func TestScope_ResolveWithoutRegistry(t *testing.T) {
	s := &Scope{}
	s.SetConsumerRules(SeriesRule("Pixel", 0.5, 1, 0))
	res := s.Resolve("Pixel8", nil)
	assert.True(t, res.Matched)
}

func TestRegistry_ConcurrentReplace(t *testing.T) {
	small := []Rule{ExactRule("a", 1, 1, 0)}
	large := []Rule{ExactRule("a", 1, 1, 0), ExactRule("b", 1, 1, 0), ExactRule("c", 1, 1, 0)}
	r := NewRegistry(small...)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			if i%2 == 0 {
				r.SetProcessWideRules(large...)
			} else {
				r.SetProcessWideRules(small...)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for range 1000 {
			n := r.ProcessWideRules().Len()
			if n != len(small) && n != len(large) {
				t.Errorf("observed torn rule set of length %d", n)
				return
			}
		}
	}()
	wg.Wait()
}
