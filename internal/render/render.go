package render

import (
	"errors"
	"fmt"
	"strings"

	markdown "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/odysseus0/mailmd/internal/markdownify"
)

var ErrUnknownEngine = errors.New("unknown engine")

// Engine names the HTML to Markdown backend.
type Engine string

const (
	// EngineCard is the placeholder-substitution engine tuned for card
	// descriptions.
	EngineCard Engine = "card"
	// EngineFull is a general-purpose DOM converter.
	EngineFull Engine = "full"
)

func ParseEngine(v string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(v))) {
	case "", EngineCard:
		return EngineCard, nil
	case EngineFull:
		return EngineFull, nil
	}
	return "", fmt.Errorf("%w: %q (want card or full)", ErrUnknownEngine, v)
}

type Renderer struct {
	engine    Engine
	opts      markdownify.Options
	converter *markdown.Converter
}

func NewRenderer(engine Engine, opts markdownify.Options) *Renderer {
	r := &Renderer{engine: engine, opts: opts}
	if engine == EngineFull {
		r.converter = markdown.NewConverter("", true, nil)
	}
	return r
}

func (r *Renderer) Engine() Engine { return r.engine }

// HTMLToMarkdown prunes non-content markup and converts the rest. Raw
// options always go through the card engine, which then emits plain text.
func (r *Renderer) HTMLToMarkdown(html string) string {
	html = PruneHTML(html)
	if html == "" {
		r.debug("render: no content after pruning")
		return ""
	}
	if r.converter == nil || r.opts.Features.Off {
		return markdownify.MarkdownifyHTML(html, r.opts)
	}
	out, err := r.converter.ConvertString(html)
	if err != nil {
		r.debug("render: full engine failed, falling back to plain text", "err", err)
		return markdownify.MarkdownifyHTML(html, markdownify.Options{Features: markdownify.NoFeatures()})
	}
	return strings.TrimSpace(out)
}

func (r *Renderer) debug(msg string, args ...any) {
	if r.opts.Logger != nil {
		r.opts.Logger.Debug(msg, args...)
	}
}
