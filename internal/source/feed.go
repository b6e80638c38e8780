package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/odysseus0/mailmd/internal/model"
)

const maxFeedBytes = 16 << 20

// ParseFeed reads an RSS, Atom or JSON feed document and returns one
// message per item. The feed title stands in for a missing author.
func ParseFeed(r io.Reader) ([]model.Message, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	out := make([]model.Message, 0, len(feed.Items))
	for _, item := range feed.Items {
		contentHTML := strings.TrimSpace(item.Content)
		if contentHTML == "" {
			contentHTML = strings.TrimSpace(item.Description)
		}

		from := model.Person{Name: strings.TrimSpace(feed.Title)}
		if item.Author != nil {
			from = model.Person{
				Name:  fallback(strings.TrimSpace(item.Author.Name), from.Name),
				Email: strings.TrimSpace(item.Author.Email),
			}
		}

		date := item.PublishedParsed
		if date == nil {
			date = item.UpdatedParsed
		}

		out = append(out, model.Message{
			Subject: strings.TrimSpace(item.Title),
			From:    from,
			Date:    date,
			Link:    strings.TrimSpace(item.Link),
			HTML:    contentHTML,
		})
	}
	return out, nil
}

func fallback(v, fb string) string {
	if strings.TrimSpace(v) == "" {
		return fb
	}
	return v
}
