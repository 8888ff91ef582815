package qs

import (
	"sync"
)

// StateValue is the on/off/unavailable value of a tile.
type StateValue int

const (
	StateUnavailable StateValue = iota
	StateInactive
	StateActive
)

func (v StateValue) String() string {
	switch v {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	default:
		return "unavailable"
	}
}

// State is what a tile shows in the panel.
type State struct {
	Value              StateValue
	Label              string
	SecondaryLabel     string
	Icon               string // themed icon name
	ContentDescription string
}

// Tile is the contract every quick-settings tile implements.
type Tile interface {
	// Spec returns the stable key the tile is registered under
	Spec() string

	// State returns a snapshot of the current state
	State() State

	// Click handles a primary tap
	Click()

	// LongClick handles a long press
	LongClick()

	// Listen registers a callback called after every state change.
	// Callbacks may run on a background goroutine and must not call Click
	// or LongClick synchronously.
	Listen(func(State))

	// Close releases anything the tile holds. The tile is unusable afterwards.
	Close()
}

// Base keeps a tile's state and listener list. Tiles embed it and call
// SetState whenever something they show changes.
type Base struct {
	spec string

	mu        sync.RWMutex
	state     State
	listeners []func(State)
}

// NewBase returns a Base for spec with an initial state.
func NewBase(spec string, initial State) *Base {
	return &Base{spec: spec, state: initial}
}

func (b *Base) Spec() string {
	return b.spec
}

func (b *Base) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

func (b *Base) Listen(fn func(State)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// SetState stores s and notifies listeners if it differs from the old state.
func (b *Base) SetState(s State) {
	b.mu.Lock()
	if b.state == s {
		b.mu.Unlock()
		return
	}
	b.state = s
	listeners := make([]func(State), len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.Unlock()

	// Trigger all registered callbacks outside the lock
	for _, callback := range listeners {
		callback(s)
	}
}

// ClearListeners drops every registered callback.
func (b *Base) ClearListeners() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = nil
}
