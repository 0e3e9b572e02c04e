package cli

import (
	"context"
	"fmt"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"app-registry/internal/app"
	"app-registry/internal/config"
	"app-registry/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath   string
	DatabasePath string
	LogLevel     string
}

// GUIRunner starts the desktop form; replaced in tests
type GUIRunner func(ctx context.Context, cfg config.Config, log logger.Logger) error

// NewRootCommand creates the root command. Without a subcommand it opens
// the registry window.
func NewRootCommand(runGUI GUIRunner) *cobra.Command {
	opts := &RootOptions{}
	if runGUI == nil {
		runGUI = RunGUI
	}

	cmd := &cobra.Command{
		Use:           "app-registry",
		Short:         "Keep a registry of named applications and their paths",
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runGUI(commandContext(cmd), cfg, log)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.DatabasePath, "db", "", "SQLite database file (default "+config.DefaultDatabasePath+")")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error|off)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))

	return cmd
}

// load resolves config from file, environment and flags, in that order
func (o *RootOptions) load(cmd *cobra.Command) (config.Config, logger.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return cfg, nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DatabasePath = o.DatabasePath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger.New(level, cfg.JSONLogs), nil
}

// RunGUI opens the window and blocks until it closes
func RunGUI(ctx context.Context, cfg config.Config, log logger.Logger) error {
	fyneApp := fyneapp.NewWithID(app.AppID)
	application, err := app.NewApplication(ctx, fyneApp, cfg, log)
	if err != nil {
		return err
	}
	return application.Run()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
