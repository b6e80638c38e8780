package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odysseus0/mailmd/internal/config"
	"github.com/odysseus0/mailmd/internal/render"
)

func newPreviewCmd(cfg config.Config, getApp func() *App) *cobra.Command {
	var flags engineFlags
	var fromMarkdown bool

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Convert HTML to Markdown and render it back to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			_, data, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			md := string(data)
			if !fromMarkdown {
				engine, opts, err := flags.resolve(app)
				if err != nil {
					return err
				}
				md = render.NewRenderer(engine, opts).HTMLToMarkdown(md)
			}
			out, err := render.Preview(md)
			if err != nil {
				return fmt.Errorf("render preview: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	flags.bind(cmd, cfg)
	cmd.Flags().BoolVar(&fromMarkdown, "markdown", false, "Input is already Markdown")
	return cmd
}
