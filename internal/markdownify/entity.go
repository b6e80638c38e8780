package markdownify

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// EntityCodec converts between HTML character references and plain text.
// The engine never assumes how a host performs the conversion.
type EntityCodec interface {
	Decode(s string) string
	Encode(s string) string
}

// HTMLCodec is the EntityCodec backed by golang.org/x/net/html.
type HTMLCodec struct{}

func (HTMLCodec) Decode(s string) string { return html.UnescapeString(s) }

func (HTMLCodec) Encode(s string) string { return html.EscapeString(s) }

// Entities the host decoder does not map the way cards expect.
var shorthandEntities = strings.NewReplacer(
	"&hellip;", "...",
	"&bullet;", "*",
	"&mdash;", "-",
)

// decodeText is the cleanup decode: shorthand entities, a best-effort
// percent-decode, then the codec.
func decodeText(s string, codec EntityCodec) string {
	s = shorthandEntities.Replace(s)
	s = percentDecode(s)
	return codec.Decode(s)
}

// percentDecode leaves s untouched when it holds a malformed escape or the
// decoded bytes are not valid UTF-8.
func percentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return s
	}
	return decoded
}
