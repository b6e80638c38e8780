package card

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/odysseus0/mailmd/internal/markdownify"
	"github.com/odysseus0/mailmd/internal/model"
)

func testMessage() model.Message {
	date := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	return model.Message{
		Subject: "Weekly report",
		From:    model.Person{Name: "Jane Doe", Email: "jane@example.com"},
		To:      []model.Person{{Email: "bob@example.com"}},
		Date:    &date,
		Link:    "mid:abc@example.com",
		HTML:    `<p>Hi <b>team</b></p><p>On Monday Jane Doe &lt;jane@example.com&gt; wrote:</p>`,
	}
}

func TestCompose(t *testing.T) {
	c := Compose(testMessage(), DefaultOptions())

	if c.Title != "Weekly report" {
		t.Fatalf("Title = %q", c.Title)
	}
	wantMD := "[[source](<mid:abc@example.com> \"Open original\")]\n" +
		"To: [bob](bob@example.com)\n" +
		"From: [Jane Doe](jane@example.com) Mon, Mar 2, 2026 at 10:30 AM:\n\n" +
		"Hi **team**\n\nOn Monday [Jane Doe](<jane@example.com>) wrote:"
	if c.Description != wantMD {
		t.Fatalf("Description:\n got %q\nwant %q", c.Description, wantMD)
	}
	wantRaw := "[<mid:abc@example.com>]\n" +
		"To: bob <bob@example.com>\n" +
		"From: Jane Doe <jane@example.com> Mon, Mar 2, 2026 at 10:30 AM:\n\n" +
		"Hi team\n\nOn Monday Jane Doe <jane@example.com> wrote:"
	if c.RawDescription != wantRaw {
		t.Fatalf("RawDescription:\n got %q\nwant %q", c.RawDescription, wantRaw)
	}
}

func TestComposeWithoutBackLinkOrCC(t *testing.T) {
	opts := DefaultOptions()
	opts.BackLink = false
	opts.CC = false
	c := Compose(testMessage(), opts)
	if !strings.HasPrefix(c.Description, "From: ") {
		t.Fatalf("expected description to start with the sender, got %q", c.Description)
	}
}

func TestComposeDisabledFeatures(t *testing.T) {
	opts := DefaultOptions()
	opts.Markdownify.Features = markdownify.AllFeatures().Disable(markdownify.FeatureBold)
	c := Compose(testMessage(), opts)
	if !strings.Contains(c.Description, "Hi <b>team</b>") {
		t.Fatalf("disabled bold should keep markup, got %q", c.Description)
	}
}

func TestComposePlainTextAndNoSubject(t *testing.T) {
	msg := model.Message{From: model.Person{Email: "a@example.com"}, Text: "line one\n\n\n\nline two"}
	c := Compose(msg, DefaultOptions())
	if c.Title != noSubject {
		t.Fatalf("Title = %q", c.Title)
	}
	want := "From: [a](a@example.com):\n\nline one\n\nline two"
	if c.Description != want {
		t.Fatalf("Description = %q, want %q", c.Description, want)
	}
}

func TestComposeTruncatesLongBodies(t *testing.T) {
	msg := testMessage()
	msg.HTML = "<p>" + strings.Repeat("word ", 5000) + "</p>"
	c := Compose(msg, DefaultOptions())
	if n := utf8.RuneCountInString(c.Description); n != MaxDescription {
		t.Fatalf("description length = %d, want %d", n, MaxDescription)
	}
	if !strings.HasSuffix(c.Description, truncMarker) {
		t.Fatalf("expected truncation marker")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abc", 5, "..."); got != "abc" {
		t.Fatalf("fitting text changed: %q", got)
	}
	if got := Truncate("abcdefgh", 5, "..."); got != "ab..." {
		t.Fatalf("unexpected: %q", got)
	}
	if got := Truncate("héllo wörld", 6, "…"); got != "héllo…" {
		t.Fatalf("expected rune-aware cut, got %q", got)
	}
}

func TestPersonRawMD(t *testing.T) {
	cases := []struct {
		p        model.Person
		raw, md string
	}{
		{model.Person{}, "", ""},
		{model.Person{Name: "John Doe", Email: "john@example.com"}, "John Doe <john@example.com>", "[John Doe](john@example.com)"},
		{model.Person{Email: "john@example.com"}, "john <john@example.com>", "[john](john@example.com)"},
		{model.Person{Name: "JOHN@example.com", Email: "john@example.com"}, "JOHN <john@example.com>", "[JOHN](john@example.com)"},
		{model.Person{Name: "Team"}, "Team", "Team"},
	}
	for _, tc := range cases {
		raw, md := PersonRawMD(tc.p)
		if raw != tc.raw || md != tc.md {
			t.Fatalf("PersonRawMD(%+v) = (%q, %q), want (%q, %q)", tc.p, raw, md, tc.raw, tc.md)
		}
	}
}
