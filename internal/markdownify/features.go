package markdownify

import "strings"

// Feature keys. Tag names (b, em, h3, ...) are accepted as keys too and
// disable a single tag of a category.
const (
	FeatureBold      = "bold"
	FeatureItalic    = "italic"
	FeatureUnderline = "underline"
	FeatureStrike    = "strike"
	FeatureHeaders   = "h"
	FeatureLinks     = "a"
	FeatureLists     = "li"
)

// Features selects which tag categories are converted. Unlisted keys are
// enabled; Off disables everything and strips all markup (raw mode).
type Features struct {
	Off   bool
	Flags map[string]bool
}

func AllFeatures() Features { return Features{} }

func NoFeatures() Features { return Features{Off: true} }

// FeaturesFrom copies flags with lowercased keys.
func FeaturesFrom(flags map[string]bool) Features {
	f := Features{Flags: make(map[string]bool, len(flags))}
	for k, v := range flags {
		f.Flags[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return f
}

// Enabled reports whether key is on. An explicit false is the only way to
// switch a single key off.
func (f Features) Enabled(key string) bool {
	if f.Off {
		return false
	}
	v, ok := f.Flags[key]
	return !ok || v
}

// Disable returns a copy of f with keys switched off.
func (f Features) Disable(keys ...string) Features {
	out := Features{Off: f.Off, Flags: make(map[string]bool, len(f.Flags)+len(keys))}
	for k, v := range f.Flags {
		out.Flags[k] = v
	}
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out.Flags[k] = false
		}
	}
	return out
}

func (f Features) tagEnabled(c category, tag string) bool {
	return f.Enabled(c.key) && f.Enabled(tag)
}

// preservedTags lists the tags of individually disabled categories. Their
// markup is left in the output untouched. Raw mode preserves nothing, and
// list items are structural only.
func (f Features) preservedTags() map[string]bool {
	keep := make(map[string]bool)
	if f.Off {
		return keep
	}
	for _, c := range categories {
		if c.kind == KindListItem {
			continue
		}
		for _, tag := range c.tags {
			if !f.tagEnabled(c, tag) {
				keep[tag] = true
			}
		}
	}
	return keep
}
