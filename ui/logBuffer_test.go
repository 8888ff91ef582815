package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogBuffer_KeepsNewest(t *testing.T) {
	t.Parallel()

	b := newLogBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Append(fmt.Sprintf("line %d", i))
	}

	assert.Equal(t, []string{"line 3", "line 4", "line 5"}, b.Lines())
	assert.Equal(t, 5, b.Total())
	assert.Equal(t, "line 3\nline 4\nline 5", b.Text())
}

func TestLogBuffer_Search(t *testing.T) {
	t.Parallel()

	b := newLogBuffer(10)
	b.Append("[QS] registered tile \"caffeine\"")
	b.Append("[UI] tile \"caffeine\" clicked")
	b.Append("[HeadsUp] heads up notifications enabled=false")

	assert.Equal(t, b.Text(), b.Search(""))
	assert.Equal(t,
		"[QS] registered tile \"caffeine\"\n[UI] tile \"caffeine\" clicked\n\n[Found 2 matches in loaded lines]",
		b.Search("CAFFEINE"))
	assert.Contains(t, b.Search("wifi"), "No results found for: wifi")
}
