package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odysseus0/mailmd/internal/config"
	"github.com/odysseus0/mailmd/internal/model"
)

// Execute loads the config and runs the root command on os.Args.
func Execute() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	return NewRootCmd(cfg).Execute()
}

func NewRootCmd(cfg config.Config) *cobra.Command {
	var output string
	var verbose bool
	var outFmt model.OutputFormat
	var app *App

	output = string(model.OutputText)

	getApp := func() *App { return app }
	getOutput := func() model.OutputFormat { return outFmt }

	cmd := &cobra.Command{
		Use:           "mailmd",
		Short:         "Convert email HTML into card-ready Markdown",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			parsedFmt, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			outFmt = parsedFmt
			var diag io.Writer
			if verbose {
				diag = cmd.ErrOrStderr()
			}
			app = NewApp(cfg, diag)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&output, "output", "o", output, "Output format: text, json")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine diagnostics to stderr")

	cmd.AddCommand(newConvertCmd(cfg, getApp, getOutput))
	cmd.AddCommand(newAnchorCmd(getOutput))
	cmd.AddCommand(newCardCmd(cfg, getApp, getOutput))
	cmd.AddCommand(newFeedCmd(cfg, getApp, getOutput))
	cmd.AddCommand(newPreviewCmd(cfg, getApp))

	return cmd
}

func parseOutputFormat(raw string) (model.OutputFormat, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch model.OutputFormat(s) {
	case model.OutputText, model.OutputJSON:
		return model.OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected text|json)", raw)
	}
}
