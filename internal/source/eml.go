package source

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/jhillyerd/enmime"

	"github.com/odysseus0/mailmd/internal/model"
)

var ErrNoBody = errors.New("message has no html or text body")

// maxMessageBytes bounds how much of a message is read.
const maxMessageBytes = 32 << 20

// ParseMessage reads an RFC 5322 message and extracts the headers and the
// first text/html and text/plain bodies. enmime walks the MIME tree, skips
// attachments, and decodes transfer encodings and charsets; the returned
// bodies are UTF-8.
func ParseMessage(r io.Reader) (model.Message, error) {
	env, err := enmime.ReadEnvelope(io.LimitReader(r, maxMessageBytes))
	if err != nil {
		return model.Message{}, fmt.Errorf("read message: %w", err)
	}
	if strings.TrimSpace(env.HTML) == "" && strings.TrimSpace(env.Text) == "" {
		return model.Message{}, ErrNoBody
	}

	msg := model.Message{
		Subject: strings.TrimSpace(env.GetHeader("Subject")),
		From:    firstPerson(env, "From"),
		To:      people(env, "To"),
		CC:      people(env, "Cc"),
		Link:    messageLink(env.GetHeader("Message-Id")),
		HTML:    env.HTML,
		Text:    env.Text,
	}
	if date, err := mail.ParseDate(env.GetHeader("Date")); err == nil {
		msg.Date = &date
	}
	return msg, nil
}

func firstPerson(env *enmime.Envelope, key string) model.Person {
	list := people(env, key)
	if len(list) == 0 {
		return model.Person{}
	}
	return list[0]
}

func people(env *enmime.Envelope, key string) []model.Person {
	raw := strings.TrimSpace(env.GetHeader(key))
	if raw == "" {
		return nil
	}
	addrs, err := env.AddressList(key)
	if err != nil || len(addrs) == 0 {
		return []model.Person{{Name: raw}}
	}
	out := make([]model.Person, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, model.Person{Name: strings.TrimSpace(a.Name), Email: strings.TrimSpace(a.Address)})
	}
	return out
}

// messageLink turns a Message-Id into a mid: URI.
func messageLink(id string) string {
	id = strings.Trim(strings.TrimSpace(id), "<>")
	if id == "" {
		return ""
	}
	return "mid:" + id
}
