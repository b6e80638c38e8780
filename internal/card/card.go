package card

import (
	"strings"
	"unicode/utf8"

	"github.com/odysseus0/mailmd/internal/markdownify"
	"github.com/odysseus0/mailmd/internal/model"
	"github.com/odysseus0/mailmd/internal/render"
)

// MaxDescription is the longest description the card API accepts, in
// characters.
const MaxDescription = 16384

const (
	dateLayout  = "Mon, Jan 2, 2006 at 3:04 PM"
	noSubject   = "(no subject)"
	truncMarker = "..."
)

type Options struct {
	Engine      render.Engine
	Markdownify markdownify.Options
	BackLink    bool
	CC          bool
}

func DefaultOptions() Options {
	return Options{Engine: render.EngineCard, BackLink: true, CC: true}
}

// Compose builds the markdown and raw descriptions of one message. The
// sender and every recipient are seeded into the engine so their address
// forms in quoted text become links.
func Compose(msg model.Message, opts Options) model.Card {
	seed := append([]markdownify.Substitution(nil), opts.Markdownify.Seed...)
	seed = append(seed, markdownify.MailtoSeed(msg.From.Name, msg.From.Email)...)
	recipients := append(append([]model.Person(nil), msg.To...), msg.CC...)
	for _, p := range recipients {
		seed = append(seed, markdownify.MailtoSeed(p.Name, p.Email)...)
	}

	mdOpts := opts.Markdownify
	mdOpts.Seed = seed
	rawOpts := mdOpts
	rawOpts.Features = markdownify.NoFeatures()

	var mdBody, rawBody string
	if strings.TrimSpace(msg.HTML) != "" {
		mdBody = render.NewRenderer(opts.Engine, mdOpts).HTMLToMarkdown(msg.HTML)
		rawBody = render.NewRenderer(render.EngineCard, rawOpts).HTMLToMarkdown(msg.HTML)
	} else {
		mdBody = markdownify.Cleanup(msg.Text)
		rawBody = mdBody
	}

	when := ""
	if msg.Date != nil {
		when = msg.Date.Format(dateLayout)
	}
	fromRaw, fromMD := PersonRawMD(msg.From)

	var linkRaw, linkMD, ccRaw, ccMD string
	if opts.BackLink && msg.Link != "" {
		linkRaw = "[<" + msg.Link + ">]\n"
		linkMD = "[" + strings.TrimSpace(markdownify.AnchorFormat("source", msg.Link, "Open original")) + "]\n"
	}
	if opts.CC {
		ccRaw, ccMD = recipientLines(recipients)
	}

	title := strings.TrimSpace(msg.Subject)
	if title == "" {
		title = noSubject
	}
	return model.Card{
		Title:          title,
		Description:    describe(linkMD, ccMD, "From: "+addSpace(fromMD, when)+":\n\n"+mdBody),
		RawDescription: describe(linkRaw, ccRaw, "From: "+addSpace(fromRaw, when)+":\n\n"+rawBody),
		Link:           msg.Link,
		Date:           msg.Date,
	}
}

func describe(link, cc, body string) string {
	room := MaxDescription - utf8.RuneCountInString(link+cc)
	return link + cc + Truncate(body, room, truncMarker)
}

// Truncate cuts text so that, with add appended, it fits in max
// characters. Text that already fits is returned unchanged.
func Truncate(text string, max int, add string) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	keep := max - utf8.RuneCountInString(add)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(text)
	return string(runes[:keep]) + add
}

// PersonRawMD renders a person as "name <email>" and as a Markdown link.
// A missing name, or one that only repeats the address, is replaced by the
// local part of the address.
func PersonRawMD(p model.Person) (raw, md string) {
	name, email := strings.TrimSpace(p.Name), strings.TrimSpace(p.Email)
	if name == "" && email == "" {
		return "", ""
	}
	display := name
	switch {
	case name == "":
		display = localPart(email)
	case strings.EqualFold(name, email):
		display = localPart(name)
	}

	bracketed := ""
	if email != "" {
		bracketed = "<" + email + ">"
	}
	raw = addSpace(display, bracketed)

	switch {
	case display != "" && email != "":
		md = "[" + display + "](" + email + ")"
	case display != "":
		md = display
	default:
		md = email
	}
	return raw, md
}

func recipientLines(people []model.Person) (raw, md string) {
	var raws, mds []string
	for _, p := range people {
		r, m := PersonRawMD(p)
		if r == "" && m == "" {
			continue
		}
		raws = append(raws, r)
		mds = append(mds, m)
	}
	if len(raws) == 0 {
		return "", ""
	}
	return "To: " + strings.Join(raws, ", ") + "\n", "To: " + strings.Join(mds, ", ") + "\n"
}

func localPart(email string) string {
	if i := strings.LastIndex(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

func addSpace(front, back string) string {
	switch {
	case front == "":
		return back
	case back == "":
		return front
	}
	return front + " " + back
}
