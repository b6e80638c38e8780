package markdownify

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultExpandPasses caps how many full dictionary passes Expand makes.
// Values may introduce new %key% references; three passes resolve shallow
// nesting and guard against self-referencing templates. Tunable, not a
// correctness bound.
const DefaultExpandPasses = 3

// Expand replaces every %key% in text, case-insensitively, with vars[key].
// The full dictionary is applied repeatedly until the text holds no '%',
// stops changing, or DefaultExpandPasses passes have run.
func Expand(text string, vars map[string]string) string {
	return expand(text, vars, DefaultExpandPasses)
}

func expand(text string, vars map[string]string, passes int) string {
	if text == "" || len(vars) == 0 {
		return text
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	patterns := make([]*regexp.Regexp, len(keys))
	for i, k := range keys {
		patterns[i] = regexp.MustCompile(`(?i)%` + regexp.QuoteMeta(k) + `%`)
	}

	out, _ := UntilStable(text, passes, func(s string) string {
		if !strings.Contains(s, "%") {
			return s
		}
		for i, re := range patterns {
			s = re.ReplaceAllLiteralString(s, vars[keys[i]])
		}
		return s
	})
	return out
}
