package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"cardinal/qs"
)

// tileButton is a button that also reacts to secondary (right) clicks,
// which stand in for a long press on desktop.
type tileButton struct {
	widget.Button
	onSecondaryTapped func()
}

func newTileButton(onTapped, onSecondaryTapped func()) *tileButton {
	b := &tileButton{onSecondaryTapped: onSecondaryTapped}
	b.OnTapped = onTapped
	b.ExtendBaseWidget(b)
	return b
}

// TappedSecondary implements fyne.SecondaryTappable
func (b *tileButton) TappedSecondary(*fyne.PointEvent) {
	if b.onSecondaryTapped != nil {
		b.onSecondaryTapped()
	}
}

// TileView shows one quick-settings tile and keeps itself in sync with the
// tile's state.
type TileView struct {
	Tile      qs.Tile
	Button    *tileButton
	Secondary *widget.Label
	Container fyne.CanvasObject
}

// NewTileView creates the view for tile. Tapping calls Click, a secondary
// tap calls LongClick.
func NewTileView(tile qs.Tile) *TileView {
	v := &TileView{Tile: tile}

	v.Button = newTileButton(
		func() {
			log.Printf("[UI] tile %q clicked", tile.Spec())
			tile.Click()
		},
		func() {
			log.Printf("[UI] tile %q long clicked", tile.Spec())
			tile.LongClick()
		},
	)
	v.Secondary = NewSecondaryLabel("")
	v.Container = container.NewVBox(v.Button, v.Secondary)

	v.apply(tile.State())

	tile.Listen(func(s qs.State) {
		fyne.Do(func() {
			v.apply(s)
		})
	})

	return v
}

// apply renders a state onto the widgets, must run on the UI goroutine
func (v *TileView) apply(s qs.State) {
	v.Button.SetText(s.Label)
	v.Button.SetIcon(iconResource(s.Icon))

	switch s.Value {
	case qs.StateActive:
		v.Button.Importance = widget.HighImportance
		v.Button.Enable()
	case qs.StateInactive:
		v.Button.Importance = widget.MediumImportance
		v.Button.Enable()
	default:
		v.Button.Importance = widget.LowImportance
		v.Button.Disable()
	}
	v.Button.Refresh()

	v.Secondary.SetText(s.SecondaryLabel)
}

// NewTileGridView lays out one TileView per host tile.
func NewTileGridView(host *qs.Host) (fyne.CanvasObject, []*TileView) {
	tiles := host.Tiles()
	views := make([]*TileView, 0, len(tiles))
	objects := make([]fyne.CanvasObject, 0, len(tiles))

	for _, tile := range tiles {
		v := NewTileView(tile)
		views = append(views, v)
		objects = append(objects, v.Container)
	}

	if len(objects) == 0 {
		return widget.NewLabel("No tiles configured"), views
	}
	return container.NewGridWithColumns(TileColumns, objects...), views
}
