package notch

import "sync"

var (
	defaultRegistry = sync.OnceValue(func() *Registry {
		return NewRegistry()
	})
	defaultMu       sync.Mutex
	defaultAdjuster *Adjuster
)

// DefaultRegistry returns the process-wide registry shared by Default.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Default returns the process Adjuster, creating it with p on first call.
// Later calls ignore p. Hosts that prefer explicit wiring use New instead.
func Default(p Provider) *Adjuster {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultAdjuster == nil {
		// Options below cannot fail.
		defaultAdjuster, _ = New(p, WithRegistry(defaultRegistry()))
	}
	return defaultAdjuster
}
