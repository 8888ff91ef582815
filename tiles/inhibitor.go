package tiles

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"sync"
)

// Inhibitor keeps the display from sleeping while held.
type Inhibitor interface {
	Acquire(reason string) error
	Release() error
}

// ExecInhibitor holds a platform helper process open for as long as the
// inhibit is held: systemd-inhibit on linux, caffeinate on darwin.
type ExecInhibitor struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

// inhibitCommand returns the helper command for this OS
func inhibitCommand(goos, reason string) (*exec.Cmd, error) {
	switch goos {
	case "linux":
		return exec.Command("systemd-inhibit",
			"--what=idle:sleep",
			"--who=cardinal",
			"--why="+reason,
			"--mode=block",
			"sleep", "infinity"), nil
	case "darwin":
		return exec.Command("caffeinate", "-d", "-i"), nil
	default:
		return nil, fmt.Errorf("keep awake not supported on %s", goos)
	}
}

func (e *ExecInhibitor) Acquire(reason string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd != nil {
		return nil
	}

	cmd, err := inhibitCommand(runtime.GOOS, reason)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}

	e.cmd = cmd
	log.Printf("[Caffeine] inhibit acquired (pid %d)", cmd.Process.Pid)
	return nil
}

func (e *ExecInhibitor) Release() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd == nil {
		return nil
	}
	cmd := e.cmd
	e.cmd = nil

	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("failed to stop inhibit helper: %w", err)
	}
	// Reap the child; the kill makes Wait return an error we don't care about
	_ = cmd.Wait()
	log.Println("[Caffeine] inhibit released")
	return nil
}

// LogInhibitor only records calls. Used where no helper is available.
type LogInhibitor struct {
	mu   sync.Mutex
	held bool
}

func (l *LogInhibitor) Acquire(reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = true
	log.Printf("[Caffeine] keep awake requested: %s", reason)
	return nil
}

func (l *LogInhibitor) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = false
	log.Println("[Caffeine] keep awake released")
	return nil
}

// Held reports whether Acquire was called without a matching Release.
func (l *LogInhibitor) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held
}
