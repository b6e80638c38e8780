package markdownify

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"
)

// DefaultMinTextLength is the shortest element text worth converting.
const DefaultMinTextLength = 4

var errEmptyKey = errors.New("empty key")

// Options configures one conversion. The zero value converts every
// category with the default thresholds.
type Options struct {
	Features Features
	// Seed holds precomputed substitutions merged before harvesting, so
	// harvested elements with the same text override them.
	Seed           []Substitution
	MinTextLength  int
	ExpandPasses   int
	CollapsePasses int
	Codec          EntityCodec
	// MatchTimeout bounds each key match. Zero means no bound. A key whose
	// match times out is skipped, so a positive value makes the output
	// depend on the speed of the machine running the conversion.
	MatchTimeout time.Duration
	Logger       *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MinTextLength < 1 {
		o.MinTextLength = DefaultMinTextLength
	}
	if o.ExpandPasses < 1 {
		o.ExpandPasses = DefaultExpandPasses
	}
	if o.CollapsePasses < 1 {
		o.CollapsePasses = DefaultCollapsePasses
	}
	if o.Codec == nil {
		o.Codec = HTMLCodec{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// conversion is the state of one Markdownify call. It is never shared.
type conversion struct {
	opts  Options
	frag  Fragment
	body  string
	count int
	log   *slog.Logger
}

// Markdownify converts a source fragment into Markdown for a card
// description. It never fails: a nil or empty fragment yields "".
func Markdownify(frag Fragment, opts Options) string {
	opts = opts.withDefaults()
	if frag == nil {
		opts.Logger.Debug("markdownify: require fragment")
		return ""
	}
	markup := frag.HTML()
	if strings.TrimSpace(markup) == "" {
		opts.Logger.Debug("markdownify: empty fragment")
		return ""
	}

	body, tags := shieldTags(Normalize(markup, opts.Features))
	c := &conversion{
		opts: opts,
		frag: frag,
		body: body,
		log:  opts.Logger,
	}

	// Headers first: their expansions may contain emphasis and links that
	// the second pass still needs to find.
	c.pass(true)
	c.pass(false)

	return unshieldTags(cleanup(c.body, opts.Codec, opts.CollapsePasses), tags)
}

// MarkdownifyHTML parses markup with ParseFragment and converts it.
func MarkdownifyHTML(markup string, opts Options) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	frag, err := ParseFragment(markup)
	if err != nil {
		opts.withDefaults().Logger.Debug("markdownify: parse fragment", "err", err)
		return Cleanup(Normalize(markup, NoFeatures()))
	}
	return Markdownify(frag, opts)
}

// pass harvests either the header categories or all the others into a
// fresh pending map, swaps matches for placeholders and expands them.
func (c *conversion) pass(headers bool) {
	pending := newPendingMap()
	pending.seed(c.opts.Seed, c.opts.Features, func(cat string) bool {
		return (cat == FeatureHeaders) == headers
	})
	for _, cat := range categories {
		if cat.kind == KindListItem || (cat.kind == KindHeader) != headers {
			continue
		}
		harvest(c.frag, cat, c.opts.Features, c.opts.MinTextLength, pending)
	}
	table := c.placeholderize(pending)
	if len(table) == 0 {
		return
	}
	c.body = expand(c.body, table, c.opts.ExpandPasses)
}
