package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"cardinal/config"
)

func ShowAboutDialog(a fyne.App) {
	title := widget.NewLabel("Cardinal Quick Settings")
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(buildInfoText())
	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"Quick-settings tiles for the desktop.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"Tiles:\n" +
			"• Caffeine: keep the screen awake (click to cycle, right-click for infinite)\n" +
			"• Heads up: toggle pop-up notifications",
	)
	features.Wrapping = fyne.TextWrapWord

	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	mainContent := container.NewVBox(
		container.NewCenter(title),
		container.NewCenter(version),
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
		NewFooter("Settings are stored in ~/.config/cardinal."),
	)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(closeBtn),
	)

	content := container.NewBorder(nil, bottom, nil, nil, container.NewScroll(mainContent))

	aboutWin = a.NewWindow("About Cardinal")
	aboutWin.SetContent(content)
	aboutWin.Resize(fyne.NewSize(400, 400))
	aboutWin.SetFixedSize(true)
	aboutWin.Show()
}

// buildInfoText is the version block of the About window
func buildInfoText() string {
	version := config.Version
	if !config.IsRelease() {
		version += " (development build)"
	}
	return "Version: " + version +
		"\nCommit: " + config.GitCommit +
		"\nBuilt: " + config.BuildTime
}
