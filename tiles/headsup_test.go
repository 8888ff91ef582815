package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardinal/config"
	"cardinal/qs"
)

func TestHeadsUp_ReflectsStoredSetting(t *testing.T) {
	t.Parallel()

	store, err := config.Open(t.TempDir())
	require.NoError(t, err)

	h := NewHeadsUpTile(store)
	defer h.Close()

	assert.Equal(t, HeadsUpTileSpec, h.Spec())
	assert.True(t, h.Enabled())
	assert.Equal(t, qs.StateActive, h.State().Value)
	assert.Equal(t, "On", h.State().SecondaryLabel)
}

func TestHeadsUp_ClickTogglesAndPersists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := config.Open(dir)
	require.NoError(t, err)

	h := NewHeadsUpTile(store)
	defer h.Close()

	var seen []qs.State
	h.Listen(func(s qs.State) { seen = append(seen, s) })

	h.Click()
	assert.False(t, h.Enabled())
	assert.Equal(t, qs.StateInactive, h.State().Value)
	assert.Equal(t, "Off", h.State().SecondaryLabel)

	reopened, err := config.Open(dir)
	require.NoError(t, err)
	assert.False(t, reopened.Settings().HeadsUpEnabled)

	h.LongClick()
	assert.True(t, h.Enabled())
	require.Len(t, seen, 2)
	assert.Equal(t, qs.StateActive, seen[1].Value)
}

func TestHeadsUp_ExternalChangeRefreshesTile(t *testing.T) {
	t.Parallel()

	store, err := config.Open(t.TempDir())
	require.NoError(t, err)

	h := NewHeadsUpTile(store)
	defer h.Close()

	require.NoError(t, store.Update(func(s *config.Settings) { s.HeadsUpEnabled = false }))
	assert.Equal(t, qs.StateInactive, h.State().Value)
}

func TestHeadsUp_ClosedIgnoresClicksAndChanges(t *testing.T) {
	t.Parallel()

	store, err := config.Open(t.TempDir())
	require.NoError(t, err)

	h := NewHeadsUpTile(store)
	h.Close()

	h.Click()
	assert.True(t, store.Settings().HeadsUpEnabled)

	require.NoError(t, store.Update(func(s *config.Settings) { s.HeadsUpEnabled = false }))
	assert.Equal(t, qs.StateActive, h.State().Value)
}

func TestHeadsUp_CloseUnsubscribesFromStore(t *testing.T) {
	t.Parallel()

	store, err := config.Open(t.TempDir())
	require.NoError(t, err)

	h := NewHeadsUpTile(store)
	stop := h.unsubscribe
	calls := 0
	h.unsubscribe = func() {
		calls++
		stop()
	}

	h.Close()
	h.Close()
	assert.Equal(t, 1, calls)
}
