package markdownify

import (
	"strings"
	"unicode/utf8"
)

// Kind is the semantic kind of a harvested element.
type Kind int

const (
	KindBold Kind = iota
	KindItalic
	KindUnderline
	KindStrike
	KindHeader
	KindLink
	KindListItem
)

type category struct {
	key      string
	kind     Kind
	tags     []string
	template string
}

// categories in harvesting order. Later entries overwrite earlier ones for
// the same lowercased text, so links win over emphasis.
var categories = []category{
	{key: FeatureHeaders, kind: KindHeader, tags: []string{"h1", "h2", "h3", "h4", "h5", "h6"}},
	{key: FeatureBold, kind: KindBold, tags: []string{"strong", "b"}, template: "**%text%**"},
	{key: FeatureItalic, kind: KindItalic, tags: []string{"em", "i"}, template: "*%text%*"},
	{key: FeatureUnderline, kind: KindUnderline, tags: []string{"u"}, template: "__%text%__"},
	{key: FeatureStrike, kind: KindStrike, tags: []string{"strike", "s", "del"}, template: "~~%text%~~"},
	{key: FeatureLinks, kind: KindLink, tags: []string{"a"}},
	{key: FeatureLists, kind: KindListItem, tags: []string{"li"}},
}

// Span is one matched source element, alive only while its category is
// being harvested.
type Span struct {
	Kind  Kind
	Level int
	Text  string
	Href  string
}

func (s Span) Eligible(minLen int) bool {
	return utf8.RuneCountInString(s.Text) >= minLen
}

// pendingMap maps lowercased source text to its Markdown replacement. A
// repeated key keeps its first position and takes the latest value.
type pendingMap struct {
	keys   []string
	values map[string]string
}

func newPendingMap() *pendingMap {
	return &pendingMap{values: make(map[string]string)}
}

func (p *pendingMap) set(text, replacement string) {
	key := strings.ToLower(text)
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = replacement
}

func (p *pendingMap) len() int { return len(p.keys) }

// seed merges caller-supplied substitutions for the given categories.
func (p *pendingMap) seed(subs []Substitution, feats Features, keep func(category string) bool) {
	for _, s := range subs {
		cat := strings.ToLower(strings.TrimSpace(s.Category))
		if !keep(cat) || !feats.Enabled(cat) {
			continue
		}
		text := collapseSpace(s.Text)
		if text == "" {
			continue
		}
		p.set(text, s.Markdown)
	}
}

// harvest walks the enabled tags of c in document order and records the
// replacement for every eligible element.
func harvest(frag Fragment, c category, feats Features, minLen int, pending *pendingMap) {
	if !feats.Enabled(c.key) {
		return
	}
	selectors := make([]string, 0, len(c.tags))
	for _, tag := range c.tags {
		if feats.tagEnabled(c, tag) {
			selectors = append(selectors, tag)
		}
	}
	if len(selectors) == 0 {
		return
	}

	for _, el := range frag.Select(strings.Join(selectors, ", ")) {
		span := spanOf(c, el)
		if span.Text == "" || !span.Eligible(minLen) {
			continue
		}
		switch c.kind {
		case KindHeader:
			if span.Level < 1 {
				continue
			}
			pending.set(span.Text, "\n\n"+strings.Repeat("#", span.Level)+" "+span.Text+"\n\n")
		case KindLink:
			if span.Href == "" {
				continue
			}
			pending.set(span.Text, AnchorFormat(span.Text, span.Href, ""))
		default:
			pending.set(span.Text, Expand(c.template, map[string]string{"text": span.Text}))
		}
	}
}

func spanOf(c category, el Element) Span {
	s := Span{Kind: c.kind, Text: collapseSpace(el.Text), Href: strings.TrimSpace(el.Href)}
	if c.kind == KindHeader {
		tag := strings.ToLower(el.Tag)
		if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
			s.Level = int(tag[1] - '0')
		}
	}
	return s
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
