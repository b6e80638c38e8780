package markdownify

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fragment is read-only access to a materialized source tree.
type Fragment interface {
	// HTML returns the inner markup of the fragment root.
	HTML() string
	// Select returns the elements matching selector in document order.
	Select(selector string) []Element
}

// Element is one matched element. Text is the trimmed text content.
type Element struct {
	Tag  string
	Text string
	Href string
}

type selectionFragment struct {
	root *goquery.Selection
}

// ParseFragment parses markup as the body of an HTML document.
func ParseFragment(markup string) (Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return NewSelectionFragment(doc.Find("body").First()), nil
}

// NewSelectionFragment wraps an existing goquery selection.
func NewSelectionFragment(sel *goquery.Selection) Fragment {
	return selectionFragment{root: sel}
}

func (f selectionFragment) HTML() string {
	if f.root == nil || f.root.Length() == 0 {
		return ""
	}
	out, err := f.root.Html()
	if err != nil {
		return ""
	}
	return out
}

func (f selectionFragment) Select(selector string) []Element {
	if f.root == nil || f.root.Length() == 0 {
		return nil
	}
	var out []Element
	f.root.Find(selector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		out = append(out, Element{
			Tag:  goquery.NodeName(s),
			Text: strings.TrimSpace(s.Text()),
			Href: strings.TrimSpace(href),
		})
	})
	return out
}
