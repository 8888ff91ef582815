package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewCard wraps content in a card-like container with a light background.
// The card stacks a background rectangle behind the padded content.
//
// Parameters:
//   - content: The fyne.CanvasObject to be displayed inside the card
//
// Returns:
//   - fyne.CanvasObject: A card container with background and padded content
func NewCard(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(CardBackgroundColor)
	bg.CornerRadius = 12

	// Set minimum size to ensure the card is always visible
	// even when content is very small
	bg.SetMinSize(fyne.NewSize(CardMinWidth, CardMinHeight))

	return container.NewStack(bg, container.NewPadded(content))
}

// NewCardWithHeader creates a card with a title header and separator.
//
// Parameters:
//   - title: The text to display in the card header
//   - content: The main content to display below the header
func NewCardWithHeader(title string, content fyne.CanvasObject) fyne.CanvasObject {
	header := container.NewVBox(
		NewBoldLabel(title),
		NewSeparator(),
	)

	cardContent := container.NewBorder(
		header,  // Top border
		nil,     // Bottom border
		nil,     // Left border
		nil,     // Right border
		content, // Center content (fills remaining space)
	)

	return NewCard(cardContent)
}
