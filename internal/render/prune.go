package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Elements whose content never belongs in a description.
var prunedTags = map[string]struct{}{
	"base":     {},
	"embed":    {},
	"head":     {},
	"iframe":   {},
	"link":     {},
	"meta":     {},
	"noscript": {},
	"object":   {},
	"script":   {},
	"style":    {},
	"template": {},
	"title":    {},
}

// PruneHTML returns the inner markup of the document body with non-content
// elements, comments and event-handler attributes removed. Whole documents
// and bare fragments are both accepted.
func PruneHTML(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	body := findBodyNode(doc)
	if body == nil {
		return raw
	}

	var b strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		pruned := pruneNode(c)
		if pruned == nil {
			continue
		}
		_ = html.Render(&b, pruned)
	}
	return strings.TrimSpace(b.String())
}

func findBodyNode(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "body") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBodyNode(c); b != nil {
			return b
		}
	}
	return nil
}

func pruneNode(n *html.Node) *html.Node {
	switch n.Type {
	case html.TextNode:
		return &html.Node{Type: html.TextNode, Data: n.Data}
	case html.CommentNode, html.DoctypeNode:
		return nil
	case html.ElementNode:
		tag := strings.ToLower(strings.TrimSpace(n.Data))
		if _, pruned := prunedTags[tag]; pruned {
			return nil
		}
		clone := &html.Node{Type: html.ElementNode, Data: n.Data, DataAtom: n.DataAtom, Namespace: n.Namespace}
		for _, a := range n.Attr {
			k := strings.ToLower(strings.TrimSpace(a.Key))
			if k == "" || strings.HasPrefix(k, "on") {
				continue
			}
			clone.Attr = append(clone.Attr, a)
		}
		appendPrunedChildren(clone, n)
		return clone
	default:
		clone := &html.Node{Type: n.Type, Data: n.Data, Namespace: n.Namespace}
		appendPrunedChildren(clone, n)
		return clone
	}
}

func appendPrunedChildren(dst, src *html.Node) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if child := pruneNode(c); child != nil {
			dst.AppendChild(child)
		}
	}
}
