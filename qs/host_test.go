package qs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHost_OrderSkipsUnknownAndRepeats(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.MustRegister("a", stubFactory("a", nil))
	r.MustRegister("b", stubFactory("b", nil))

	h, err := NewHost(r, []string{"b", "ghost", "a", "b"})
	require.NoError(t, err)

	tiles := h.Tiles()
	require.Len(t, tiles, 2)
	assert.Equal(t, "b", tiles[0].Spec())
	assert.Equal(t, "a", tiles[1].Spec())
	assert.NotNil(t, h.Tile("a"))
	assert.Nil(t, h.Tile("ghost"))
}

func TestNewHost_FactoryErrorClosesBuiltTiles(t *testing.T) {
	t.Parallel()

	var made []*stubTile
	r := NewRegistry()
	r.MustRegister("a", stubFactory("a", &made))
	r.MustRegister("bad", func() (Tile, error) { return nil, errors.New("broken") })

	h, err := NewHost(r, []string{"a", "bad"})
	require.Error(t, err)
	assert.Nil(t, h)
	require.Len(t, made, 1)
	assert.Equal(t, 1, made[0].closed)
}

func TestHost_Close(t *testing.T) {
	t.Parallel()

	var made []*stubTile
	r := NewRegistry()
	r.MustRegister("a", stubFactory("a", &made))

	h, err := NewHost(r, []string{"a"})
	require.NoError(t, err)

	h.Close()
	assert.Empty(t, h.Tiles())
	assert.Nil(t, h.Tile("a"))
	assert.Equal(t, 1, made[0].closed)
}
