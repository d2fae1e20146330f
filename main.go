package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/washwatch/washwatch/internal/config"
	"github.com/washwatch/washwatch/internal/storage"
	"github.com/washwatch/washwatch/internal/track"
	"github.com/washwatch/washwatch/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.washwatch.washwatch"
	AppName = "WashWatch"

	// Optional site registry overrides next to the binary.
	SitesFile = "sites.yaml"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Str("version", version).Msg("WashWatch starting")

	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	sites, err := config.LoadSites(SitesFile)
	if err != nil {
		log.Warn().Err(err).Msg("site overrides ignored, using defaults")
	}

	store := storage.NewStore(myApp.Preferences())
	svc := track.NewService(store)

	// Create and setup UI, then restore the persisted collection
	rootUI := ui.NewRootUI(myWindow, myApp, svc, store, sites)
	svc.Start()
	rootUI.Start()

	myWindow.SetOnClosed(func() {
		svc.Close()
	})

	// Show and run
	myWindow.ShowAndRun()
}
