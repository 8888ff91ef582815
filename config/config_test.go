package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesDefaults(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "cardinal")
	s, err := Open(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, settingsFileName), s.Path())
	assert.FileExists(t, s.Path())
	assert.Equal(t, DefaultSettings(), s.Settings())
}

func TestOpen_MissingFieldsKeepDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName),
		[]byte(`{"tiles":["heads_up"],"footer_text":""}`), 0644))

	s, err := Open(dir)
	require.NoError(t, err)

	got := s.Settings()
	assert.Equal(t, []string{"heads_up"}, got.Tiles)
	assert.Equal(t, "", got.FooterText)
	assert.True(t, got.HeadsUpEnabled)
	assert.Equal(t, DefaultSettings().CaffeineDurationsSec, got.CaffeineDurationsSec)
}

func TestOpen_BadJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(`{`), 0644))

	_, err := Open(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshalling settings")
}

func TestUpdate_PersistsAndNotifies(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	var seen []Settings
	s.OnChange(func(v Settings) { seen = append(seen, v) })
	s.OnChange(nil)

	require.NoError(t, s.Update(func(v *Settings) { v.HeadsUpEnabled = false }))

	require.Len(t, seen, 1)
	assert.False(t, seen[0].HeadsUpEnabled)
	assert.False(t, s.Settings().HeadsUpEnabled)

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, reopened.Settings().HeadsUpEnabled)
}

func TestOnChange_Unsubscribe(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	require.NoError(t, err)

	var first, second int
	stopFirst := s.OnChange(func(Settings) { first++ })
	s.OnChange(func(Settings) { second++ })
	require.Equal(t, 2, s.subscribers())

	require.NoError(t, s.Update(func(v *Settings) { v.FooterText = "a" }))
	stopFirst()
	stopFirst()
	assert.Equal(t, 1, s.subscribers())

	require.NoError(t, s.Update(func(v *Settings) { v.FooterText = "b" }))
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestSettings_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	require.NoError(t, err)

	got := s.Settings()
	got.Tiles[0] = "mutated"
	assert.Equal(t, "caffeine", s.Settings().Tiles[0])
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/.config/x")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "x"), got)

	got, err = ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandPath("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
