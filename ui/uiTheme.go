package ui

import (
	"image/color"

	"cardinal/view"
)

// Theme constants define the visual appearance of the application.
// Every component reads its colours, spacing and sizes from here.

// Color palette for the application
var (
	// GradientStartColor is the lighter slate used at the start of the background gradient
	GradientStartColor = color.RGBA{R: 38, G: 50, B: 56, A: 255}

	// GradientEndColor is the darker slate used at the end of the background gradient
	GradientEndColor = color.RGBA{R: 18, G: 24, B: 28, A: 255}

	// CardBackgroundColor is the surface behind the tile grid and footer
	CardBackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// TextColorLight is used for text on dark backgrounds (like the gradient)
	TextColorLight = color.White
)

// Text size constants for consistent typography
const (
	// TitleTextSize is used for the main application title
	TitleTextSize = 32

	// SubtitleTextSize is used for descriptive text below titles
	SubtitleTextSize = 14
)

// Settings dimensions, in fyne units
const (
	// ItemPaddingStart is the leading inset of a settings item
	ItemPaddingStart = 24

	// ItemPaddingEnd is the trailing inset of a settings item
	ItemPaddingEnd = 16

	// ItemPaddingVertical is the top and bottom inset of a settings item,
	// also used as the gap between a footer icon and its text
	ItemPaddingVertical = 16
)

// ItemPadding is the standard inset around a settings item.
var ItemPadding = view.Insets{
	Top:      ItemPaddingVertical,
	Bottom:   ItemPaddingVertical,
	Leading:  ItemPaddingStart,
	Trailing: ItemPaddingEnd,
}

// Layout constants
const (
	// GradientAngle defines the angle of the background gradient in degrees
	GradientAngle = 45

	// CardMinWidth is the minimum width for card components
	CardMinWidth = 100

	// CardMinHeight is the minimum height for card components
	CardMinHeight = 100

	// TileColumns is how many tiles sit side by side in the grid
	TileColumns = 2

	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 480

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 560
)
