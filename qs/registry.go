package qs

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

var (
	// ErrDuplicateSpec is returned when a spec is registered twice.
	ErrDuplicateSpec = errors.New("qs: duplicate tile spec")

	// ErrUnknownSpec is returned when no factory is registered for a spec.
	ErrUnknownSpec = errors.New("qs: unknown tile spec")

	// ErrEmptySpec is returned when registering an empty spec.
	ErrEmptySpec = errors.New("qs: empty tile spec")

	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("qs: nil tile factory")
)

// Factory constructs a new tile instance.
type Factory func() (Tile, error)

// Registry maps tile specs to the factories that build them.
// Conflicts are reported at registration time, so a bad binding fails
// startup instead of silently replacing an earlier tile.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds spec to factory.
func (r *Registry) Register(spec string, factory Factory) error {
	if spec == "" {
		return ErrEmptySpec
	}
	if factory == nil {
		return fmt.Errorf("%w: %q", ErrNilFactory, spec)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[spec]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSpec, spec)
	}
	r.factories[spec] = factory
	log.Printf("[QS] registered tile %q", spec)
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(spec string, factory Factory) {
	if err := r.Register(spec, factory); err != nil {
		panic(err)
	}
}

// Has reports whether spec is registered.
func (r *Registry) Has(spec string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[spec]
	return ok
}

// Len returns the number of registered specs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Specs returns the registered specs in sorted order.
func (r *Registry) Specs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := make([]string, 0, len(r.factories))
	for spec := range r.factories {
		specs = append(specs, spec)
	}
	sort.Strings(specs)
	return specs
}

// New builds the tile registered for spec.
func (r *Registry) New(spec string) (Tile, error) {
	r.mu.RLock()
	factory, exists := r.factories[spec]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpec, spec)
	}

	tile, err := factory()
	if err != nil {
		return nil, fmt.Errorf("building tile %q: %w", spec, err)
	}
	return tile, nil
}

// Build instantiates every registered tile. If any factory fails the tiles
// built so far are closed and the error is returned.
func (r *Registry) Build() (map[string]Tile, error) {
	built := make(map[string]Tile, r.Len())
	for _, spec := range r.Specs() {
		tile, err := r.New(spec)
		if err != nil {
			for _, t := range built {
				t.Close()
			}
			return nil, err
		}
		built[spec] = tile
	}
	return built, nil
}
