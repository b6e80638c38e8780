package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/odysseus0/mailmd/internal/config"
	"github.com/odysseus0/mailmd/internal/markdownify"
)

type App struct {
	cfg config.Config
	log *slog.Logger
}

// NewApp binds the loaded config to a diagnostics logger. A nil writer
// discards engine diagnostics.
func NewApp(cfg config.Config, diag io.Writer) *App {
	if diag == nil {
		diag = io.Discard
	}
	log := slog.New(slog.NewTextHandler(diag, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &App{cfg: cfg, log: log}
}

// options returns the engine options of the config with raw taken from
// the command line.
func (a *App) options(raw bool) markdownify.Options {
	cfg := a.cfg
	cfg.Raw = raw
	opts := cfg.Options()
	opts.Logger = a.log
	return opts
}

func requireApp(getApp func() *App) (*App, error) {
	app := getApp()
	if app == nil {
		return nil, errors.New("app not initialized")
	}
	return app, nil
}
