package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files

	// LogFileName is the application log inside the config directory
	LogFileName = "cardinal.log"
)

// RotatingFile is an io.Writer that appends to a log file and rotates it
// once it grows past a size limit, keeping a fixed number of backups.
type RotatingFile struct {
	mu       sync.Mutex
	path     string
	maxSize  int64
	maxFiles int
	file     *os.File
	size     int64
}

// OpenRotatingFile opens path for appending, rotating first if it is already
// over maxSize.
func OpenRotatingFile(path string, maxSize int64, maxFiles int) (*RotatingFile, error) {
	r := &RotatingFile{path: path, maxSize: maxSize, maxFiles: maxFiles}

	// Check if we need to rotate before opening
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
		if r.size >= r.maxSize {
			if err := r.rotate(); err != nil {
				return nil, fmt.Errorf("failed to rotate logs: %w", err)
			}
		}
	}

	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *RotatingFile) Path() string {
	return r.path
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return 0, os.ErrClosed
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	if err != nil {
		return n, err
	}

	if r.size >= r.maxSize {
		if err := r.rotate(); err != nil {
			return n, fmt.Errorf("failed to rotate logs: %w", err)
		}
		if err := r.open(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Close closes the underlying file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

func (r *RotatingFile) open() error {
	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

// rotate performs log rotation: path -> path.1 -> path.2 ... dropping the oldest
func (r *RotatingFile) rotate() error {
	if r.file != nil {
		r.file.Close()
		r.file = nil
	}

	// Remove oldest backup
	oldestBackup := fmt.Sprintf("%s.%d", r.path, r.maxFiles)
	os.Remove(oldestBackup) // Ignore error if file doesn't exist

	// Rotate existing backups
	for i := r.maxFiles - 1; i >= 1; i-- {
		oldPath := fmt.Sprintf("%s.%d", r.path, i)
		newPath := fmt.Sprintf("%s.%d", r.path, i+1)
		os.Rename(oldPath, newPath) // Ignore error if source doesn't exist
	}

	// Move current log to .1
	if err := os.Rename(r.path, r.path+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}

	r.size = 0
	return nil
}

var (
	appLogMu   sync.Mutex
	appLogFile *RotatingFile
)

// Init sends the standard logger to stderr and to a rotating cardinal.log in
// configDir. It should be called once during application startup.
func Init(configDir string) (string, error) {
	appLogMu.Lock()
	defer appLogMu.Unlock()

	// logging starts before the settings store, so the directory may be new
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(configDir, LogFileName)
	file, err := OpenRotatingFile(logPath, maxLogSize, maxLogFiles)
	if err != nil {
		return "", err
	}

	if appLogFile != nil {
		appLogFile.Close()
	}
	appLogFile = file

	log.SetOutput(io.MultiWriter(os.Stderr, file))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	log.Println("=== Cardinal Logger Initialized ===")
	log.Printf("Log file: %s", logPath)
	return logPath, nil
}

// Close restores stderr logging and closes the log file.
func Close() {
	appLogMu.Lock()
	defer appLogMu.Unlock()

	if appLogFile != nil {
		log.Println("=== Cardinal Logger Closing ===")
		log.SetOutput(os.Stderr)
		appLogFile.Close()
		appLogFile = nil
	}
}
