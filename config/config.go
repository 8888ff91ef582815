package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const settingsFileName = "settings.json"

// Settings is everything the panel persists between runs.
type Settings struct {
	// Tiles is the ordered list of tile specs shown in the panel
	Tiles []string `json:"tiles"`

	// HeadsUpEnabled backs the heads-up tile
	HeadsUpEnabled bool `json:"heads_up_enabled"`

	// CaffeineDurationsSec is the cycle of keep-awake durations in seconds.
	// -1 is infinite; zero and other negative values are ignored.
	CaffeineDurationsSec []int `json:"caffeine_durations_sec"`

	// FooterText is shown under the tile grid, empty hides the footer
	FooterText string `json:"footer_text"`
}

// DefaultSettings returns the settings written on first run.
func DefaultSettings() Settings {
	return Settings{
		Tiles:                []string{"caffeine", "heads_up"},
		HeadsUpEnabled:       true,
		CaffeineDurationsSec: []int{5 * 60, 10 * 60, 30 * 60, -1},
		FooterText:           "Tiles can be rearranged in settings.",
	}
}

func (s Settings) clone() Settings {
	out := s
	out.Tiles = append([]string(nil), s.Tiles...)
	out.CaffeineDurationsSec = append([]int(nil), s.CaffeineDurationsSec...)
	return out
}

// Store loads and saves Settings and tells subscribers when they change.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings Settings
	onChange []subscriber
	nextID   int
}

type subscriber struct {
	id       int
	callback func(Settings)
}

// OpenDefault opens the store in ~/.config/cardinal.
func OpenDefault() (*Store, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Open opens the settings file in dir, creating the directory and a file
// holding DefaultSettings if either is missing.
func Open(dir string) (*Store, error) {
	if err := verifyConfigDirectory(dir); err != nil {
		return nil, err
	}

	s := &Store{path: filepath.Join(dir, settingsFileName)}

	settingsFile, err := verifyConfigFiles(s.path)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(settingsFile)
	if err != nil {
		return nil, err
	}
	s.settings = settings
	return s, nil
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.clone()
}

// Update applies fn to a copy of the settings, writes the result to disk and
// notifies subscribers. Nothing changes if the write fails.
func (s *Store) Update(fn func(*Settings)) error {
	s.mu.Lock()
	next := s.settings.clone()
	fn(&next)

	if err := saveSettings(s.path, next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.settings = next
	callbacks := make([]func(Settings), 0, len(s.onChange))
	for _, sub := range s.onChange {
		callbacks = append(callbacks, sub.callback)
	}
	s.mu.Unlock()

	for _, callback := range callbacks {
		callback(next.clone())
	}
	return nil
}

// OnChange registers a callback called after every successful Update and
// returns a func that removes it. Calling the returned func again is a no-op.
func (s *Store) OnChange(callback func(Settings)) (unsubscribe func()) {
	if callback == nil {
		return func() {}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.onChange = append(s.onChange, subscriber{id: id, callback: callback})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.onChange {
			if sub.id == id {
				s.onChange = append(s.onChange[:i:i], s.onChange[i+1:]...)
				return
			}
		}
	}
}

// subscribers returns how many OnChange callbacks are registered.
func (s *Store) subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.onChange)
}

// load settings, missing fields keep their defaults
func loadSettings(settingsFile string) (Settings, error) {
	file, err := os.Open(settingsFile)
	if err != nil {
		return Settings{}, fmt.Errorf("error loading settings file: %w", err)
	}
	defer file.Close()

	byteValues, err := io.ReadAll(file)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(byteValues, &settings); err != nil {
		return Settings{}, fmt.Errorf("error unmarshalling settings: %w", err)
	}

	return settings, nil
}

func saveSettings(settingsFile string, data Settings) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	// Write to a temp file first so a crash never leaves half a file behind
	tmp := settingsFile + ".tmp"
	if err := os.WriteFile(tmp, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing settings file: %w", err)
	}
	return os.Rename(tmp, settingsFile)
}

// check config directory exists or create it
func verifyConfigDirectory(configDirectory string) error {
	_, err := os.Stat(configDirectory)

	if os.IsNotExist(err) {
		if err := os.MkdirAll(configDirectory, 0755); err != nil {
			return fmt.Errorf("error creating directory %s: %w", configDirectory, err)
		}
		log.Printf("[Config] Directory %s created successfully.", configDirectory)
	} else if err != nil {
		return fmt.Errorf("error checking directory %s: %w", configDirectory, err)
	}

	return nil
}

// check settings file exists or create it
func verifyConfigFiles(settingsFile string) (string, error) {
	_, err := os.Stat(settingsFile)

	if os.IsNotExist(err) {
		log.Printf("[Config] Settings file not found, creating defaults at '%s'", settingsFile)

		if saveErr := saveSettings(settingsFile, DefaultSettings()); saveErr != nil {
			return "", fmt.Errorf("error creating settings file: %w", saveErr)
		}
	} else if err != nil {
		return "", fmt.Errorf("error checking file existence: %w", err)
	}

	return settingsFile, nil
}
