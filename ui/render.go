package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"cardinal/view"
)

// Materialize turns a view tree into fyne objects. A nil tree becomes an
// empty container so callers can always place the result.
func Materialize(node *view.Node) fyne.CanvasObject {
	if node == nil {
		return container.NewWithoutLayout()
	}
	return materialize(node)
}

func materialize(n *view.Node) fyne.CanvasObject {
	switch n.Kind {
	case view.KindColumn:
		objects := make([]fyne.CanvasObject, 0, len(n.Children))
		for _, child := range n.Children {
			objects = append(objects, materialize(child))
		}
		column := container.NewVBox(objects...)
		if n.Padding == (view.Insets{}) {
			return column
		}
		p := n.Padding
		return container.New(layout.NewCustomPaddedLayout(p.Top, p.Bottom, p.Leading, p.Trailing), column)

	case view.KindIcon:
		// fyne icons carry no accessible label, ContentDescription is unused
		return widget.NewIcon(iconResource(string(n.Icon)))

	case view.KindSpacer:
		gap := canvas.NewRectangle(color.Transparent)
		gap.SetMinSize(fyne.NewSize(0, n.Height))
		return gap

	case view.KindText:
		return newStyledLabel(n.Text, n.Style)

	default:
		return container.NewWithoutLayout()
	}
}

// newStyledLabel maps a text style onto a wrapping label
func newStyledLabel(text string, style view.TextStyle) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	switch style {
	case view.TextStyleTitle:
		label.TextStyle = fyne.TextStyle{Bold: true}
	default:
		label.Importance = widget.MediumImportance
	}
	return label
}

// iconResource resolves themed icon names used by view nodes and tile states
func iconResource(name string) fyne.Resource {
	switch name {
	case string(view.IconInfo):
		return theme.InfoIcon()
	case "caffeine":
		return theme.VisibilityIcon()
	case "heads_up":
		return theme.MailComposeIcon()
	default:
		return theme.QuestionIcon()
	}
}
