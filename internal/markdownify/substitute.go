package markdownify

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// PlaceholderPrefix namespaces placeholder tokens. Source text that already
// contains "%g2t_placeholder:N%" is not protected.
const PlaceholderPrefix = "g2t_placeholder:"

// Zero-width boundaries: start of text, whitespace, bracket or word
// boundary before a key; the mirror set after it. Keys that begin or end
// with a non-word character need no boundary on that side.
const (
	keyBegin = `(?:(?<![^\s<\[(])|\b|(?=\W))`
	keyEnd   = `(?:(?![^\s>\])])|\b|(?<=\W))`
)

// placeholderize swaps every key of pending found in body for a fresh
// token, longest key first, and returns the table needed to expand them.
// Keys that never match allocate no token. The body still holds encoded
// entities, so each key is matched in its encoded form too and the
// replacements are encoded for the single decode in cleanup.
func (c *conversion) placeholderize(pending *pendingMap) map[string]string {
	table := make(map[string]string)
	if pending.len() == 0 {
		return table
	}

	keys := append([]string(nil), pending.keys...)
	sort.SliceStable(keys, func(i, j int) bool {
		return utf8.RuneCountInString(keys[i]) > utf8.RuneCountInString(keys[j])
	})

	for _, key := range keys {
		re, err := keyRegexp(key, c.opts.Codec, c.opts.MatchTimeout)
		if err != nil {
			c.log.Debug("markdownify: skipping key", "key", key, "err", err)
			continue
		}
		token := PlaceholderPrefix + strconv.Itoa(c.count)
		replaced, err := re.Replace(c.body, "%"+token+"%", -1, -1)
		if err != nil {
			c.log.Debug("markdownify: key match aborted", "key", key, "err", err)
			continue
		}
		if replaced == c.body {
			continue
		}
		c.body = replaced
		c.count++
		table[token] = c.opts.Codec.Encode(pending.values[key])
	}
	return table
}

func keyRegexp(key string, codec EntityCodec, timeout time.Duration) (*regexp2.Regexp, error) {
	forms := []string{key}
	if enc := codec.Encode(key); enc != key {
		forms = []string{enc, key}
	}
	alts := make([]string, 0, len(forms))
	for _, form := range forms {
		words := strings.Fields(form)
		if len(words) == 0 {
			return nil, errEmptyKey
		}
		for i, w := range words {
			words[i] = regexp2.Escape(w)
		}
		alts = append(alts, strings.Join(words, `\s+`))
	}
	re, err := regexp2.Compile(keyBegin+"(?:"+strings.Join(alts, "|")+")"+keyEnd, regexp2.IgnoreCase)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return re, nil
}
