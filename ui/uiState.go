package ui

import (
	"fyne.io/fyne/v2"

	"cardinal/config"
	"cardinal/qs"
)

// AppState holds what the UI components share: the main window, the
// settings store, the tile host and where the log file lives.
type AppState struct {
	// Window is the main application window, needed for showing dialogs
	Window fyne.Window

	// Store holds the persisted settings
	Store *config.Store

	// Host owns the tiles in display order
	Host *qs.Host

	// LogPath is the file shown by the log window
	LogPath string

	// OnFooterChanged is called on the UI goroutine with the new footer text
	OnFooterChanged []func(string)
}

// NewAppState creates the application state and subscribes to settings
// changes so footer listeners follow the stored text. Listeners are called
// after every settings write, even if the footer text did not change.
func NewAppState(window fyne.Window, store *config.Store, host *qs.Host, logPath string) *AppState {
	s := &AppState{
		Window:  window,
		Store:   store,
		Host:    host,
		LogPath: logPath,
	}

	store.OnChange(func(settings config.Settings) {
		text := settings.FooterText
		fyne.Do(func() {
			for _, callback := range s.OnFooterChanged {
				callback(text)
			}
		})
	})
	return s
}

// FooterText returns the footer text currently stored.
func (s *AppState) FooterText() string {
	return s.Store.Settings().FooterText
}

// RegisterFooterChangedCallback registers a callback for footer text changes.
func (s *AppState) RegisterFooterChangedCallback(callback func(string)) {
	s.OnFooterChanged = append(s.OnFooterChanged, callback)
}
