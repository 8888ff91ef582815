package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"cardinal/config"
)

// NewHeader creates the application header with title and a version line.
//
// Returns:
//   - fyne.CanvasObject: A container with the formatted header content
func NewHeader() fyne.CanvasObject {
	titleText := canvas.NewText("Quick Settings", TextColorLight)
	titleText.TextSize = TitleTextSize
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.Alignment = fyne.TextAlignCenter

	subtitleText := canvas.NewText("Cardinal "+config.Version, TextColorLight)
	subtitleText.TextSize = SubtitleTextSize
	subtitleText.Alignment = fyne.TextAlignCenter

	return container.NewVBox(titleText, subtitleText)
}
