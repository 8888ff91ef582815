package qs

import (
	"errors"
	"log"
	"sync"
)

// Host owns the tiles shown in the panel, in the user's configured order.
type Host struct {
	mu    sync.RWMutex
	tiles []Tile
	index map[string]Tile
}

// NewHost builds a tile for every spec in order. Unknown specs and repeated
// entries are logged and skipped; any other factory error aborts.
func NewHost(reg *Registry, specs []string) (*Host, error) {
	h := &Host{index: make(map[string]Tile, len(specs))}

	for _, spec := range specs {
		if _, seen := h.index[spec]; seen {
			log.Printf("[QS] tile %q listed more than once, ignoring repeat", spec)
			continue
		}

		tile, err := reg.New(spec)
		if errors.Is(err, ErrUnknownSpec) {
			log.Printf("[QS] no tile registered for %q, skipping", spec)
			continue
		}
		if err != nil {
			h.Close()
			return nil, err
		}

		h.tiles = append(h.tiles, tile)
		h.index[spec] = tile
	}

	log.Printf("[QS] host created with %d tile(s)", len(h.tiles))
	return h, nil
}

// Tiles returns the tiles in display order.
func (h *Host) Tiles() []Tile {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Tile, len(h.tiles))
	copy(out, h.tiles)
	return out
}

// Tile returns the tile for spec, or nil.
func (h *Host) Tile(spec string) Tile {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.index[spec]
}

// Close closes every tile and empties the host.
func (h *Host) Close() {
	h.mu.Lock()
	tiles := h.tiles
	h.tiles = nil
	h.index = map[string]Tile{}
	h.mu.Unlock()

	for _, t := range tiles {
		t.Close()
	}
}
