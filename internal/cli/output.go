package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/odysseus0/mailmd/internal/model"
)

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(out io.Writer, text string) error {
	_, err := fmt.Fprintln(out, strings.TrimRight(text, "\n"))
	return err
}

func writeCards(out io.Writer, cards []model.Card, raw bool) error {
	for i, c := range cards {
		if i > 0 {
			if _, err := fmt.Fprint(out, "\n---\n\n"); err != nil {
				return err
			}
		}
		desc := c.Description
		if raw {
			desc = c.RawDescription
		}
		if _, err := fmt.Fprintf(out, "# %s\n\n", oneLine(c.Title)); err != nil {
			return err
		}
		if err := writeText(out, desc); err != nil {
			return err
		}
	}
	return nil
}

func oneLine(v string) string {
	v = strings.ReplaceAll(v, "\n", " ")
	v = strings.ReplaceAll(v, "\r", " ")
	return strings.TrimSpace(v)
}
