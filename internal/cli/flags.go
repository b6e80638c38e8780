package cli

import (
	"github.com/spf13/cobra"

	"github.com/odysseus0/mailmd/internal/config"
	"github.com/odysseus0/mailmd/internal/markdownify"
	"github.com/odysseus0/mailmd/internal/render"
)

// engineFlags are the conversion flags shared by every converting command.
// Defaults come from the config.
type engineFlags struct {
	engine  string
	raw     bool
	disable string
}

func (f *engineFlags) bind(cmd *cobra.Command, cfg config.Config) {
	f.engine = string(cfg.Engine)
	f.raw = cfg.Raw
	cmd.Flags().StringVar(&f.engine, "engine", f.engine, "Conversion engine: card, full")
	cmd.Flags().BoolVar(&f.raw, "raw", f.raw, "Plain text output (every feature disabled)")
	cmd.Flags().StringVar(&f.disable, "disable", "", "Comma separated features to disable: bold,italic,underline,strike,h,a,li or tag names")
}

func (f *engineFlags) resolve(app *App) (render.Engine, markdownify.Options, error) {
	return f.resolveRaw(app, f.raw)
}

func (f *engineFlags) resolveRaw(app *App, raw bool) (render.Engine, markdownify.Options, error) {
	engine, err := render.ParseEngine(f.engine)
	if err != nil {
		return "", markdownify.Options{}, err
	}
	opts := app.options(raw)
	if keys := config.SplitList(f.disable); len(keys) > 0 {
		opts.Features = opts.Features.Disable(keys...)
	}
	return engine, opts, nil
}

func (f *engineFlags) disabled() []string {
	return config.SplitList(f.disable)
}
