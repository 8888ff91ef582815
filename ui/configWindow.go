package ui

import (
	"bufio"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShowConfigWindow shows the raw settings file with search.
func ShowConfigWindow(a fyne.App, settingsPath string) {
	configWindow := a.NewWindow("Cardinal Settings File")
	configWindow.Resize(fyne.NewSize(600, 400))

	configLabel := widget.NewLabel("Loading settings file...")
	configLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search settings...")

	buffer := newLogBuffer(10000)

	performSearch := func() {
		configLabel.SetText(buffer.Search(searchEntry.Text))
	}
	searchEntry.OnSubmitted = func(string) {
		performSearch()
	}

	searchButton := widget.NewButton("Search", performSearch)
	clearButton := widget.NewButton("Clear", func() {
		searchEntry.SetText("")
		performSearch()
	})

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton),
		searchEntry)

	content := container.NewBorder(searchBox, nil, nil, nil, container.NewScroll(configLabel))
	configWindow.SetContent(content)
	configWindow.Show()

	go func() {
		if err := readLines(settingsPath, buffer); err != nil {
			fyne.Do(func() {
				configLabel.SetText(fmt.Sprintf("Failed to load settings file: %v", err))
			})
			return
		}
		fyne.Do(performSearch)
	}()
}

// readLines appends every line of path to buf
func readLines(path string, buf *logBuffer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		buf.Append(scanner.Text())
	}
	return scanner.Err()
}
