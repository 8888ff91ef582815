package tiles

import (
	"log"
	"sync"

	"cardinal/config"
	"cardinal/qs"
)

// HeadsUpTileSpec is the registry key of the heads-up tile
const HeadsUpTileSpec = "heads_up"

// HeadsUpTile toggles heads-up (pop-up) notifications. The value lives in the
// settings store so edits made elsewhere show up on the tile.
type HeadsUpTile struct {
	*qs.Base

	store       *config.Store
	unsubscribe func()

	mu     sync.Mutex
	closed bool
}

// Ensure HeadsUpTile implements qs.Tile
var _ qs.Tile = (*HeadsUpTile)(nil)

func NewHeadsUpTile(store *config.Store) *HeadsUpTile {
	h := &HeadsUpTile{store: store}
	h.Base = qs.NewBase(HeadsUpTileSpec, headsUpState(store.Settings().HeadsUpEnabled))

	h.unsubscribe = store.OnChange(func(s config.Settings) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.closed {
			return
		}
		h.SetState(headsUpState(s.HeadsUpEnabled))
	})
	return h
}

// Enabled reports the stored setting.
func (h *HeadsUpTile) Enabled() bool {
	return h.store.Settings().HeadsUpEnabled
}

func (h *HeadsUpTile) Click() {
	h.toggle()
}

// LongClick behaves like Click; there is no detail page to open.
func (h *HeadsUpTile) LongClick() {
	h.toggle()
}

// Close stops following the settings store and drops listeners.
func (h *HeadsUpTile) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.ClearListeners()
	h.mu.Unlock()

	h.unsubscribe()
}

func (h *HeadsUpTile) toggle() {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return
	}

	var enabled bool
	err := h.store.Update(func(s *config.Settings) {
		s.HeadsUpEnabled = !s.HeadsUpEnabled
		enabled = s.HeadsUpEnabled
	})
	if err != nil {
		log.Printf("[HeadsUp] failed to save setting: %v", err)
		return
	}
	log.Printf("[HeadsUp] heads up notifications enabled=%v", enabled)
}

func headsUpState(enabled bool) qs.State {
	state := qs.State{
		Value:              qs.StateInactive,
		Label:              "Heads up",
		SecondaryLabel:     "Off",
		Icon:               "heads_up",
		ContentDescription: "Heads up notifications",
	}
	if enabled {
		state.Value = qs.StateActive
		state.SecondaryLabel = "On"
	}
	return state
}
