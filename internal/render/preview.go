package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Card Markdown keeps the tags of disabled features, so raw HTML is passed
// through rather than omitted.
var previewer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
)

// Preview renders Markdown to HTML the way a card viewer would.
func Preview(md string) (string, error) {
	var buf bytes.Buffer
	if err := previewer.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
