package app

import (
	"context"
	"os"

	"app-registry/internal/config"
	"app-registry/internal/controllers"
	"app-registry/internal/logger"
	"app-registry/internal/metrics"
	"app-registry/internal/shutdown"
	"app-registry/internal/store"
	"app-registry/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Application Manager"
	AppID      = "com.appregistry.manager"
	AppVersion = "1.0.0"
)

// repository is the store handle the application owns
type repository interface {
	controllers.Repository
	shutdown.Component
}

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	repo       repository
	metrics    *metrics.Recorder
	controller *controllers.MainController
	view       *views.MainView
	lifecycle  *Lifecycle
}

// NewApplication opens the store and builds the form. A store that cannot
// be opened is logged and replaced by store.Unavailable; the window still
// comes up.
func NewApplication(ctx context.Context, fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	recorder := metrics.NewRecorder()
	repo := openRepository(ctx, cfg, log, recorder)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	view := views.NewMainView(window)
	view.SetDatabaseInfo(cfg.DatabasePath)

	controller := controllers.NewMainController(repo, log, cfg.ErrorPolicy, recorder)
	controller.SetMainView(view)
	controller.Reload(ctx)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		repo:       repo,
		metrics:    recorder,
		controller: controller,
		view:       view,
	}
	application.lifecycle = NewLifecycle(application)
	application.setupMenus()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":      AppVersion,
		"database":     cfg.DatabasePath,
		"match_mode":   string(cfg.MatchMode),
		"error_policy": string(cfg.ErrorPolicy),
		"entries":      len(controller.Names()),
	})
	return application, nil
}

func openRepository(ctx context.Context, cfg config.Config, log logger.Logger, recorder *metrics.Recorder) repository {
	s, err := store.Open(ctx, cfg.DatabasePath, store.Options{
		MatchMode: cfg.MatchMode,
		Metrics:   recorder,
		Logger:    log,
	})
	if err != nil {
		log.Error("Application", err, map[string]interface{}{
			"database": cfg.DatabasePath,
			"detail":   "failed to open database, entries will not be saved",
		})
		return store.Unavailable{Cause: err}
	}
	return s
}

// Run shows the window and blocks in the fyne event loop. The store is
// released before Run returns.
func (a *Application) Run() error {
	defer a.lifecycle.Shutdown()

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.lifecycle.ListenForSignals(func(sig os.Signal) {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Shutdown releases the store; safe to call more than once
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}
