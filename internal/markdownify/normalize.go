package markdownify

import (
	"regexp"
	"strings"
)

var (
	lineEndRegexp = regexp.MustCompile(`[ \t]*(?:\r\n|[\r\n\f\v])[ \t]*`)
	ruleRegexp    = regexp.MustCompile(`(?i)\s*(?:<hr\b[^>]*>|[-=_]{4,})\s*`)
	blockRegexp   = regexp.MustCompile(`(?i)\s*<(/?)(p|div|blockquote|ul|ol|table|tr|section|article|header|footer|h[1-6]|li)\b[^>]*>\s*`)
	breakRegexp   = regexp.MustCompile(`(?i)[ \t]*<br\b[^>]*>[ \t]*`)
	tagRegexp     = regexp.MustCompile(`<[^>]*>`)
	tagNameRegexp = regexp.MustCompile(`^</?\s*([A-Za-z][A-Za-z0-9]*)`)
)

// Normalize rewrites block separators of raw markup into line breaks and
// strips the remaining tags, in order: line endings, horizontal rules,
// block boundaries, line breaks, tag stripping. Tags of individually
// disabled categories survive untouched. Entities are left encoded; Cleanup
// decodes them exactly once.
func Normalize(markup string, feats Features) string {
	if markup == "" {
		return ""
	}
	keep := feats.preservedTags()
	lists := feats.Enabled(FeatureLists)

	s := lineEndRegexp.ReplaceAllString(markup, "\n")
	s = ruleRegexp.ReplaceAllString(s, "\n\n---\n\n")
	s = blockRegexp.ReplaceAllStringFunc(s, func(m string) string {
		sub := blockRegexp.FindStringSubmatch(m)
		closing, tag := sub[1] == "/", strings.ToLower(sub[2])
		switch {
		case keep[tag]:
			return m
		case tag == "li" && closing:
			return ""
		case tag == "li" && lists:
			return "\n* "
		case tag == "li":
			return "\n"
		}
		return "\n\n"
	})
	s = breakRegexp.ReplaceAllString(s, "\n")
	s = tagRegexp.ReplaceAllStringFunc(s, func(m string) string {
		if sub := tagNameRegexp.FindStringSubmatch(m); sub != nil && keep[strings.ToLower(sub[1])] {
			return m
		}
		return ""
	})
	return s
}
