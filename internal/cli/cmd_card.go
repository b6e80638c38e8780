package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odysseus0/mailmd/internal/card"
	"github.com/odysseus0/mailmd/internal/config"
	"github.com/odysseus0/mailmd/internal/model"
	"github.com/odysseus0/mailmd/internal/source"
)

type cardFlags struct {
	engineFlags
	noBackLink bool
	noCC       bool
}

func (f *cardFlags) bind(cmd *cobra.Command, cfg config.Config) {
	f.engineFlags.bind(cmd, cfg)
	cmd.Flags().BoolVar(&f.noBackLink, "no-backlink", false, "Omit the link back to the original message")
	cmd.Flags().BoolVar(&f.noCC, "no-cc", false, "Omit the To: line")
}

// options builds card options. Raw only selects which description is
// printed; both are always composed.
func (f *cardFlags) options(app *App) (card.Options, error) {
	engine, opts, err := f.resolveRaw(app, false)
	if err != nil {
		return card.Options{}, err
	}
	return card.Options{
		Engine:      engine,
		Markdownify: opts,
		BackLink:    !f.noBackLink,
		CC:          !f.noCC,
	}, nil
}

func newCardCmd(cfg config.Config, getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	var flags cardFlags

	cmd := &cobra.Command{
		Use:   "card <file.eml>",
		Short: "Compose a card description from an email message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			opts, err := flags.options(app)
			if err != nil {
				return err
			}
			f, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			msg, err := source.ParseMessage(f)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidInput, args[0], err)
			}
			c := card.Compose(msg, opts)
			if getOutput() == model.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			return writeCards(cmd.OutOrStdout(), []model.Card{c}, flags.raw)
		},
	}
	flags.bind(cmd, cfg)
	return cmd
}

func newFeedCmd(cfg config.Config, getApp func() *App, getOutput func() model.OutputFormat) *cobra.Command {
	var flags cardFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "feed <file.xml>",
		Short: "Compose one card per item of an RSS, Atom or JSON feed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := requireApp(getApp)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("%w: --limit must be >= 0", ErrInvalidInput)
			}
			opts, err := flags.options(app)
			if err != nil {
				return err
			}
			f, err := openInput(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			msgs, err := source.ParseFeed(f)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidInput, args[0], err)
			}
			if limit > 0 && len(msgs) > limit {
				msgs = msgs[:limit]
			}
			cards := make([]model.Card, 0, len(msgs))
			for _, msg := range msgs {
				cards = append(cards, card.Compose(msg, opts))
			}
			if getOutput() == model.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), cards)
			}
			return writeCards(cmd.OutOrStdout(), cards, flags.raw)
		},
	}
	flags.bind(cmd, cfg)
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items (0 = all)")
	return cmd
}
