package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// BuildMainLayout constructs the complete application UI layout.
//
// The layout structure is:
// - Background: slate gradient
// - Header: application title and version (top)
// - Content: card holding the tile grid
// - Footer: info footer with the stored footer text (bottom), hidden when empty
func BuildMainLayout(state *AppState) fyne.CanvasObject {
	gradient := canvas.NewLinearGradient(
		GradientStartColor,
		GradientEndColor,
		GradientAngle,
	)

	header := NewHeader()

	grid, _ := NewTileGridView(state.Host)
	contentArea := container.NewPadded(NewCardWithHeader("Tiles", grid))

	// The footer is re-rendered from scratch whenever its text changes
	footerHolder := container.NewStack(NewFooter(state.FooterText()))
	state.RegisterFooterChangedCallback(func(text string) {
		footerHolder.Objects = []fyne.CanvasObject{NewFooter(text)}
		footerHolder.Refresh()
	})

	mainLayout := container.NewBorder(
		container.NewPadded(header), // Top: Header with padding
		footerHolder,                // Bottom: Footer
		nil,                         // Left: None
		nil,                         // Right: None
		contentArea,                 // Center: Main content fills remaining space
	)

	return container.NewStack(gradient, mainLayout)
}
