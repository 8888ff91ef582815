// Package cardinal binds the Cardinal tiles into a quick-settings registry.
package cardinal

import (
	"fmt"

	"cardinal/config"
	"cardinal/qs"
	"cardinal/tiles"
)

// Module holds what the Cardinal tiles need to be constructed.
type Module struct {
	Settings  *config.Store
	Inhibitor tiles.Inhibitor
}

// Bind registers every Cardinal tile in reg under its tile spec.
// A spec that is already taken fails with qs.ErrDuplicateSpec before
// anything is registered, so a failed Bind leaves reg unchanged.
func (m Module) Bind(reg *qs.Registry) error {
	if m.Settings == nil {
		return fmt.Errorf("cardinal: module needs a settings store")
	}

	bindings := []struct {
		spec    string
		factory qs.Factory
	}{
		// Inject CaffeineTile into the tile map
		{tiles.CaffeineTileSpec, m.newCaffeineTile},
		// Inject HeadsUpTile into the tile map
		{tiles.HeadsUpTileSpec, m.newHeadsUpTile},
	}

	for _, b := range bindings {
		if reg.Has(b.spec) {
			return fmt.Errorf("cardinal: %w: %q", qs.ErrDuplicateSpec, b.spec)
		}
	}

	for _, b := range bindings {
		if err := reg.Register(b.spec, b.factory); err != nil {
			return fmt.Errorf("cardinal: %w", err)
		}
	}
	return nil
}

func (m Module) newCaffeineTile() (qs.Tile, error) {
	durations := tiles.DurationsFromSeconds(m.Settings.Settings().CaffeineDurationsSec)
	return tiles.NewCaffeineTile(m.Inhibitor, durations), nil
}

func (m Module) newHeadsUpTile() (qs.Tile, error) {
	return tiles.NewHeadsUpTile(m.Settings), nil
}
