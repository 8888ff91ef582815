package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardinal/view"
)

func TestFooter_EmptyRendersNothing(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Footer(""))
}

func TestFooter_IconSpacerText(t *testing.T) {
	t.Parallel()

	const text = "Footer text always at the end of page."
	node := Footer(text)
	require.NotNil(t, node)

	assert.Equal(t, view.KindColumn, node.Kind)
	assert.Equal(t, ItemPadding, node.Padding)
	require.Len(t, node.Children, 3)

	icon, spacer, body := node.Children[0], node.Children[1], node.Children[2]
	assert.Equal(t, view.KindIcon, icon.Kind)
	assert.Equal(t, view.IconInfo, icon.Icon)
	assert.Empty(t, icon.ContentDescription)

	assert.Equal(t, view.KindSpacer, spacer.Kind)
	assert.Equal(t, float32(ItemPaddingVertical), spacer.Height)

	assert.Equal(t, view.KindText, body.Kind)
	assert.Equal(t, text, body.Text)
	assert.Equal(t, view.TextStyleBody, body.Style)

	assert.Equal(t, 1, view.Count(node, view.KindIcon))
	assert.Equal(t, 1, view.Count(node, view.KindSpacer))
	assert.Equal(t, 1, view.Count(node, view.KindText))
}

func TestFooter_TextIsVerbatim(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		" ",
		"ünïcödé ✓ 鑑賞 🚀",
		"line one\nline two",
		"<b>not markup</b> & *not markdown*",
		"tab\there",
	} {
		node := Footer(text)
		require.NotNil(t, node, "%q", text)
		assert.Equal(t, text, node.Children[2].Text)
	}
}

func TestFooter_Pure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Footer("same"), Footer("same"))
}

func TestNewFooter_EmptyHasNoObjects(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	obj := NewFooter("")
	c, ok := obj.(*fyne.Container)
	require.True(t, ok)
	assert.Empty(t, c.Objects)
}

func TestNewFooter_Materializes(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	const text = "Footer text always at the end of page."
	padded, ok := NewFooter(text).(*fyne.Container)
	require.True(t, ok)
	require.Len(t, padded.Objects, 1)

	column, ok := padded.Objects[0].(*fyne.Container)
	require.True(t, ok)
	require.Len(t, column.Objects, 3)

	icon, ok := column.Objects[0].(*widget.Icon)
	require.True(t, ok)
	assert.Equal(t, theme.InfoIcon().Name(), icon.Resource.Name())

	gap, ok := column.Objects[1].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, float32(ItemPaddingVertical), gap.MinSize().Height)

	label, ok := column.Objects[2].(*widget.Label)
	require.True(t, ok)
	assert.Equal(t, text, label.Text)
	assert.Equal(t, fyne.TextWrapWord, label.Wrapping)
}
