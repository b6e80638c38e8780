package markdownify

import "strings"

// AnchorFormat renders one link as Markdown. A link whose text equals its
// href (or its mailto: target) becomes a bare autolink, since card renderers
// do not support bracket-only links. The href is always angle-bracketed so
// spaces and parentheses in the URL survive. Results carry one space of
// padding on each side.
func AnchorFormat(text, href, comment string) string {
	text = strings.TrimSpace(text)
	href = strings.TrimSpace(href)
	comment = strings.TrimSpace(comment)

	textLC := strings.ToLower(text)
	hrefLC := strings.ToLower(href)

	switch {
	case text == "" && href == "":
		return ""
	case textLC == hrefLC:
		return " <" + href + "> "
	case "mailto:"+textLC == hrefLC:
		return " <" + text + "> "
	}

	title := ""
	if comment != "" {
		title = ` "` + comment + `"`
	}
	return " [" + text + "](<" + href + ">" + title + ") "
}
