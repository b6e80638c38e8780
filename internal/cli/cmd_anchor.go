package cli

import (
	"github.com/spf13/cobra"

	"github.com/odysseus0/mailmd/internal/markdownify"
	"github.com/odysseus0/mailmd/internal/model"
)

type anchorResponse struct {
	Text     string `json:"text"`
	Href     string `json:"href"`
	Comment  string `json:"comment,omitempty"`
	Markdown string `json:"markdown"`
}

func newAnchorCmd(getOutput func() model.OutputFormat) *cobra.Command {
	return &cobra.Command{
		Use:   "anchor <text> <href> [comment]",
		Short: "Render one link as Markdown",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			comment := ""
			if len(args) == 3 {
				comment = args[2]
			}
			md := markdownify.AnchorFormat(args[0], args[1], comment)
			if getOutput() == model.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), anchorResponse{
					Text:     args[0],
					Href:     args[1],
					Comment:  comment,
					Markdown: md,
				})
			}
			return writeText(cmd.OutOrStdout(), md)
		},
	}
}
