package markdownify

import (
	"regexp"
	"strings"
)

// DefaultCollapsePasses caps each repeat-until-stable collapse in Cleanup.
// Chosen empirically; tunable.
const DefaultCollapsePasses = 11

var (
	tabRunRegexp     = regexp.MustCompile(`([^\t\n])\t+`)
	bulletLineRegexp = regexp.MustCompile(`(?:\A|[ \t]*\n+)[ \t]*[·•]+[ \t]*`)
	bulletRegexp     = regexp.MustCompile(`[·•]`)
	trailingRegexp   = regexp.MustCompile(`(?m)[ \t\x{00A0}]+$`)
	newlineRunRegexp = regexp.MustCompile(`\n{3,}`)
	spaceRunRegexp   = regexp.MustCompile(`[ \x{00A0}]{2,}`)
)

// Cleanup is the final pass over converted text using the default codec
// and caps.
func Cleanup(s string) string {
	return cleanup(s, HTMLCodec{}, DefaultCollapsePasses)
}

func cleanup(s string, codec EntityCodec, passes int) string {
	s = decodeText(s, codec)

	// Tabs that open a line are indentation; keep them.
	s = tabRunRegexp.ReplaceAllString(s, "${1} ")

	s = bulletLineRegexp.ReplaceAllString(s, "\n\n* ")
	s = bulletRegexp.ReplaceAllString(s, "*")

	// Also empties whitespace-only lines.
	s = trailingRegexp.ReplaceAllString(s, "")

	s, _ = UntilStable(s, passes, func(v string) string {
		return newlineRunRegexp.ReplaceAllString(v, "\n\n")
	})
	s, _ = UntilStable(s, passes, func(v string) string {
		return spaceRunRegexp.ReplaceAllString(v, " ")
	})

	return strings.TrimSpace(s)
}
