package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestLogsMenuItem_DisabledWithoutLogFile(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	item := NewLogsMenuItem(a, "")
	assert.True(t, item.Disabled)

	item.Action()
	assert.Empty(t, a.Driver().AllWindows())
}

func TestLogsMenuItem_EnabledWithLogFile(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	item := NewLogsMenuItem(a, "/tmp/cardinal.log")
	assert.False(t, item.Disabled)
	assert.Equal(t, "Logs", item.Label)
}
