package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odysseus0/mailmd/internal/config"
	"github.com/odysseus0/mailmd/internal/markdownify"
	"github.com/odysseus0/mailmd/internal/model"
	"github.com/odysseus0/mailmd/internal/render"
)

func newConvertCmd(cfg config.Config, getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	var flags engineFlags
	var seedName, seedEmail string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an HTML file (or stdin) to Markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			engine, opts, err := flags.resolve(app)
			if err != nil {
				return err
			}
			if (seedName == "") != (seedEmail == "") {
				return fmt.Errorf("%w: --seed-name and --seed-email go together", ErrInvalidInput)
			}
			opts.Seed = append(opts.Seed, markdownify.MailtoSeed(strings.TrimSpace(seedName), strings.TrimSpace(seedEmail))...)

			name, data, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			md := render.NewRenderer(engine, opts).HTMLToMarkdown(string(data))

			if getOutput() == model.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), model.Conversion{
					Source:   name,
					Engine:   string(engine),
					Raw:      opts.Features.Off,
					Disabled: flags.disabled(),
					Markdown: md,
				})
			}
			return writeText(cmd.OutOrStdout(), md)
		},
	}
	flags.bind(cmd, cfg)
	cmd.Flags().StringVar(&seedName, "seed-name", "", "Sender name to link wherever it appears with its address")
	cmd.Flags().StringVar(&seedEmail, "seed-email", "", "Sender address paired with --seed-name")
	return cmd
}
