package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewBoldLabel creates a leading-aligned label with bold text.
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// NewSeparator creates a horizontal separator line.
func NewSeparator() *widget.Separator {
	return widget.NewSeparator()
}

// NewSecondaryLabel creates a small, low-importance centered label.
func NewSecondaryLabel(text string) *widget.Label {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignCenter, fyne.TextStyle{})
	label.SizeName = theme.SizeNameCaptionText
	label.Importance = widget.LowImportance
	return label
}
