package ui

import (
	"fyne.io/fyne/v2"

	"cardinal/view"
)

// Footer renders the informational footer shown at the end of a page:
// an info icon, a fixed gap and the text in body style, stacked vertically.
// Empty text renders nothing at all.
func Footer(footerText string) *view.Node {
	if footerText == "" {
		return nil
	}
	return view.Column(ItemPadding,
		view.Icon(view.IconInfo, ""),
		view.Spacer(ItemPaddingVertical),
		view.Text(footerText, view.TextStyleBody),
	)
}

// NewFooter creates the footer as a fyne object.
func NewFooter(footerText string) fyne.CanvasObject {
	return Materialize(Footer(footerText))
}
