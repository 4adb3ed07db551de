package main

import (
	"context"
	"fmt"
	"os"

	"tag-editor/internal/config"
	"tag-editor/internal/controllers"
	"tag-editor/internal/logger"
	"tag-editor/internal/models"
	"tag-editor/internal/services"
	"tag-editor/internal/shutdown"
	"tag-editor/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppID      = "com.imagetagging.tag-editor"
	AppVersion = "1.0.0"
)

// Application wires the editor together and owns the UI event loop.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView
	viewer     *views.ImageViewer

	shutdown *shutdown.Manager
}

func main() {
	cmd := config.NewCommand("tag-editor", AppVersion, run)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tag-editor: %v\n", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cfg config.Config) error {
	appLogger := logger.New(cfg.LogLevel, cfg.LogJSON)

	application, err := NewApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Application", err, map[string]interface{}{
			"dir": cfg.Dir,
		})
		return err
	}

	return application.Run()
}

// NewApplication scans the pair directory and builds the windows. It fails
// when the directory holds no caption/image pair.
func NewApplication(cfg config.Config, appLogger logger.Logger) (*Application, error) {
	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":   AppVersion,
		"dir":       cfg.Dir,
		"text_ext":  cfg.TextExt,
		"image_ext": cfg.ImageExt,
	})

	pairs, err := services.NewScanner(cfg.TextExt, cfg.ImageExt, appLogger).Scan(cfg.Dir)
	if err != nil {
		return nil, err
	}
	session, err := models.NewSession(pairs)
	if err != nil {
		return nil, err
	}

	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(views.WindowTitle)
	window.Resize(views.DefaultWindowSize)
	window.SetMaster()

	view := views.NewMainView(window)
	viewer := views.NewImageViewer(fyneApp)

	controller := controllers.NewMainController(
		session,
		services.NewCaptionService(appLogger),
		services.NewImageService(appLogger),
		appLogger,
	)
	controller.SetMainView(view)
	controller.SetImageViewer(viewer)

	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register(controller)

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       view,
		viewer:     viewer,
		shutdown:   shutdownMgr,
	}, nil
}

// Run shows the first pair and blocks in the UI loop until the editor
// window is closed or the process is signalled.
func (a *Application) Run() error {
	a.view.Show()
	if err := a.controller.Start(); err != nil {
		return err
	}
	a.window.RequestFocus()

	a.window.SetOnClosed(a.shutdown.Shutdown)
	a.shutdown.Listen(func(os.Signal) {
		fyne.Do(func() {
			a.shutdown.Shutdown()
			a.fyneApp.Quit()
		})
	})

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}
