package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appConfigDir = "~/.config/cardinal"

// ConfigDir returns the expanded application config directory.
func ConfigDir() (string, error) {
	dir, err := ExpandPath(appConfigDir)
	if err != nil {
		return "", fmt.Errorf("cannot resolve local configuration directory: %w", err)
	}
	return dir, nil
}

// ExpandPath expands ~ to the user's home directory, or returns the path as-is
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/")), nil
	}
	return path, nil
}
