package main

// Package structure:
// - view/      : toolkit-independent view tree produced by render functions
// - ui/        : theme, footer, fyne materializer, tile views, windows
// - qs/        : tile contract, tile registry and tile host
// - tiles/     : caffeine and heads-up tiles
// - cardinal/  : binds the tiles into the registry
// - config/    : settings persistence and version info
// - logging/   : rotating application log

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"cardinal/cardinal"
	"cardinal/config"
	"cardinal/logging"
	"cardinal/qs"
	"cardinal/tiles"
	"cardinal/ui"
)

func main() {
	configDir, err := config.ConfigDir()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logPath, err := logging.Init(configDir)
	if err != nil {
		log.Printf("[Main] file logging disabled: %v", err)
	}
	defer logging.Close()
	log.Printf("[Main] Cardinal %s (commit %s, release=%v)", config.Version, config.GitCommit, config.IsRelease())

	store, err := config.Open(configDir)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// -------------------------------------------------------------------------
	// TILE REGISTRY
	// -------------------------------------------------------------------------
	registry := qs.NewRegistry()
	module := cardinal.Module{Settings: store, Inhibitor: &tiles.ExecInhibitor{}}
	if err := module.Bind(registry); err != nil {
		log.Fatalf("tile registry: %v", err)
	}

	host, err := qs.NewHost(registry, store.Settings().Tiles)
	if err != nil {
		log.Fatalf("tile host: %v", err)
	}
	defer host.Close()

	// Create a new Fyne application instance
	cardinalApp := app.NewWithID(config.AppID)
	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    "Cardinal",
		Version: config.Version,
	})

	myWindow := cardinalApp.NewWindow("Cardinal Quick Settings")
	myWindow.SetIcon(theme.SettingsIcon())

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		ui.NewLogsMenuItem(cardinalApp, logPath),
		fyne.NewMenuItem("Settings File", func() {
			log.Println("[UI] Settings file opened (GUI)")
			ui.ShowConfigWindow(cardinalApp, store.Path())
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] About dialog opened")
			ui.ShowAboutDialog(cardinalApp)
		}),
	)

	myWindow.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] User closed application (ctrl + q)")
		cardinalApp.Quit()
	})
	if logPath != "" {
		myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
			KeyName:  fyne.KeyL,
			Modifier: fyne.KeyModifierControl,
		}, func(shortcut fyne.Shortcut) {
			log.Println("[UI] Logs opened (ctrl + l)")
			ui.ShowLogWindow(cardinalApp, logPath)
		})
	}

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] User closed application (window)")
		cardinalApp.Quit()
	})

	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	state := ui.NewAppState(myWindow, store, host, logPath)
	myWindow.SetContent(ui.BuildMainLayout(state))

	myWindow.ShowAndRun()
}
