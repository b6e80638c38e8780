package markdownify

import (
	"regexp"
	"strconv"
	"strings"
)

// Preserved tags are swapped for private-use tokens while keys are matched
// and the text is cleaned, then restored byte for byte. Private-use runes
// are neither word characters nor whitespace, so no key or cleanup rule
// can reach into them.
const (
	shieldOpen  = '\uE000'
	shieldClose = '\uE001'
	shieldDigit = '\uE010'
)

var shieldRegexp = regexp.MustCompile(`\x{E000}([\x{E010}-\x{E019}]+)\x{E001}`)

// shieldTags replaces every tag left in s with a token and returns the
// tags in token order.
func shieldTags(s string) (string, []string) {
	var tags []string
	out := tagRegexp.ReplaceAllStringFunc(s, func(m string) string {
		tags = append(tags, m)
		return shieldToken(len(tags) - 1)
	})
	return out, tags
}

func shieldToken(n int) string {
	var b strings.Builder
	b.WriteRune(shieldOpen)
	for _, d := range strconv.Itoa(n) {
		b.WriteRune(shieldDigit + (d - '0'))
	}
	b.WriteRune(shieldClose)
	return b.String()
}

func unshieldTags(s string, tags []string) string {
	if len(tags) == 0 {
		return s
	}
	return shieldRegexp.ReplaceAllStringFunc(s, func(m string) string {
		n := 0
		for _, d := range shieldRegexp.FindStringSubmatch(m)[1] {
			n = n*10 + int(d-shieldDigit)
		}
		if n >= len(tags) {
			return m
		}
		return tags[n]
	})
}
