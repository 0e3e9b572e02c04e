package app

import (
	"os"

	"app-registry/internal/logger"
	"app-registry/internal/shutdown"
)

// Lifecycle owns the ordered release of process-wide resources
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(a *Application) *Lifecycle {
	manager := shutdown.NewManager(a.logger)

	// registered first, released last
	manager.Register("store", a.repo)
	manager.Register("metrics", shutdown.Func(func() error {
		summary, err := a.metrics.Summary()
		if err != nil {
			return err
		}
		a.logger.Info("Lifecycle", "store activity", summary)
		return nil
	}))

	return &Lifecycle{
		manager: manager,
		logger:  a.logger,
	}
}

func (l *Lifecycle) ListenForSignals(onSignal func(os.Signal)) {
	l.manager.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
