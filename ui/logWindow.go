package ui

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"
	"golang.design/x/clipboard"
)

const linesToKeep = 1000 // Keep the last 1000 lines in the window

var clipboardInit = sync.OnceValue(clipboard.Init)

// ShowLogWindow opens a window that follows the application log live.
func ShowLogWindow(a fyne.App, logFilePath string) {
	if logFilePath == "" {
		log.Println("[UI] No log file to show")
		return
	}
	logWindow := a.NewWindow("Cardinal Log")
	logWindow.Resize(fyne.NewSize(800, 600))

	logLabel := widget.NewLabel("Loading log file...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	infoLabel := widget.NewLabel("")
	buffer := newLogBuffer(linesToKeep)

	updateDisplay := func() {
		logLabel.SetText(buffer.Search(searchEntry.Text))
		infoLabel.SetText(fmt.Sprintf("Showing last %d of %d lines read. New lines appear as they are written.",
			len(buffer.Lines()), buffer.Total()))
	}

	searchEntry.OnSubmitted = func(string) {
		updateDisplay()
	}
	searchButton := widget.NewButton("Search", updateDisplay)

	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		updateDisplay()
	})

	copyButton := widget.NewButton("Copy", func() {
		if err := copyToClipboard(logLabel.Text); err != nil {
			dialog.ShowError(err, logWindow)
			return
		}
		log.Println("[UI] Log content copied to clipboard")
	})

	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(filepath.Dir(logFilePath), logWindow)
	})

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, copyButton, openDirButton),
		searchEntry)

	scroll := container.NewScroll(logLabel)

	content := container.NewBorder(
		container.NewVBox(searchBox, infoLabel),
		nil, nil, nil,
		scroll,
	)
	logWindow.SetContent(content)

	// Follow the file, reopening it when the logger rotates
	follower, err := tail.TailFile(logFilePath, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekStart},
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		logLabel.SetText(fmt.Sprintf("Failed to open log file: %v", err))
		logWindow.Show()
		return
	}

	logWindow.SetOnClosed(func() {
		follower.Stop()
		follower.Cleanup()
	})
	logWindow.Show()

	go func() {
		for line := range follower.Lines {
			if line.Err != nil {
				log.Printf("[UI] error reading log file: %v", line.Err)
				continue
			}
			buffer.Append(line.Text)
			fyne.Do(updateDisplay)
		}
	}()
}

func copyToClipboard(text string) error {
	if err := clipboardInit(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	if err := cmd.Start(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %w", err), parent)
	}
}

// NewLogsMenuItem opens the log window. It is disabled when file logging
// could not be started.
func NewLogsMenuItem(a fyne.App, logFilePath string) *fyne.MenuItem {
	item := fyne.NewMenuItem("Logs", func() {
		log.Println("[UI] Logs opened (GUI)")
		ShowLogWindow(a, logFilePath)
	})
	item.Disabled = logFilePath == ""
	return item
}
