package markdownify

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dlclark/regexp2"
)

func convert(t *testing.T, markup string, opts Options) string {
	t.Helper()
	frag, err := ParseFragment(markup)
	if err != nil {
		t.Fatalf("ParseFragment: %v", err)
	}
	return Markdownify(frag, opts)
}

func TestMarkdownifyParagraphs(t *testing.T) {
	got := convert(t, "<p>First paragraph</p><p>Second paragraph</p>", Options{})
	if got != "First paragraph\n\nSecond paragraph" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyHeaders(t *testing.T) {
	got := convert(t, "<h1>Header 1</h1><h2>Header 2</h2>", Options{})
	if got != "# Header 1\n\n## Header 2" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyDisabledCategoryKeepsMarkup(t *testing.T) {
	opts := Options{Features: FeaturesFrom(map[string]bool{"italic": false})}
	got := convert(t, "<strong>bold</strong><em>italic</em>", opts)
	if got != "**bold**<em>italic</em>" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyDisabledCategoryKeepsAttributes(t *testing.T) {
	opts := Options{Features: FeaturesFrom(map[string]bool{"a": false})}
	got := MarkdownifyHTML(`<p><a href="https://ex.com/weekly-report?a=1&amp;b=2">Weekly</a> and <b>report</b></p>`, opts)
	want := `<a href="https://ex.com/weekly-report?a=1&amp;b=2">Weekly</a> and **report**`
	if got != want {
		t.Fatalf("unexpected:\n got %q\nwant %q", got, want)
	}
}

func TestMarkdownifyDisabledTag(t *testing.T) {
	opts := Options{Features: FeaturesFrom(map[string]bool{"B": false})}
	got := convert(t, "<b>one1</b> <strong>two2</strong>", opts)
	if got != "<b>one1</b> **two2**" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyMixedContent(t *testing.T) {
	in := `<p>Hello <b>world</b> and <a href="https://x.com">Example Link</a></p><p>Some <i>quiet</i> <u>under</u> <del>gone</del> text</p>`
	got := convert(t, in, Options{})
	want := "Hello **world** and [Example Link](<https://x.com>)\n\nSome *quiet* __under__ ~~gone~~ text"
	if got != want {
		t.Fatalf("unexpected:\n got %q\nwant %q", got, want)
	}
	if strings.Contains(got, PlaceholderPrefix) {
		t.Fatalf("placeholder leaked: %q", got)
	}
}

func TestMarkdownifyLongestMatchFirst(t *testing.T) {
	in := `<p><a href="https://e.com/l"><b>Example</b> Link</a></p>`
	got := convert(t, in, Options{})
	if got != "[Example Link](<https://e.com/l>)" {
		t.Fatalf("unexpected: %q", got)
	}

	in = `<p><a href="https://e.com/l">Example Link</a> and <b>Example</b></p>`
	got = convert(t, in, Options{})
	if got != "[Example Link](<https://e.com/l>) and **Example**" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyReplacesEveryOccurrence(t *testing.T) {
	got := convert(t, "<p><b>note</b> this note</p>", Options{})
	if got != "**note** this **note**" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyWordBoundaries(t *testing.T) {
	got := convert(t, "<p><b>cat5</b> and cat55</p>", Options{})
	if got != "**cat5** and cat55" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyMinTextLength(t *testing.T) {
	got := convert(t, "<p>an <b>abc</b> here</p>", Options{})
	if got != "an abc here" {
		t.Fatalf("short text should stay plain: %q", got)
	}
	got = convert(t, "<p>an <b>abc</b> here</p>", Options{MinTextLength: 3})
	if got != "an **abc** here" {
		t.Fatalf("lowered threshold should convert: %q", got)
	}
}

func TestMarkdownifyLists(t *testing.T) {
	in := "<ul><li>Alpha</li><li>Beta</li></ul>"
	if got := convert(t, in, Options{}); got != "* Alpha\n* Beta" {
		t.Fatalf("unexpected: %q", got)
	}
	opts := Options{Features: AllFeatures().Disable(FeatureLists)}
	if got := convert(t, in, opts); got != "Alpha\nBeta" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyRawMode(t *testing.T) {
	in := `<p><b>bold</b> and <a href="https://e.com">link text</a></p>`
	got := MarkdownifyHTML(in, Options{Features: NoFeatures()})
	if got != "bold and link text" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyEntities(t *testing.T) {
	got := MarkdownifyHTML("<p><b>Fish &amp; Chips</b> for 5 &lt; 6</p>", Options{})
	if got != "**Fish & Chips** for 5 < 6" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyDecodesEntitiesOnce(t *testing.T) {
	got := MarkdownifyHTML("<p>literal &amp;lt;b&amp;gt; text</p>", Options{})
	if got != "literal &lt;b&gt; text" {
		t.Fatalf("unexpected: %q", got)
	}

	got = MarkdownifyHTML("<p><b>&amp;lt;tag&amp;gt; here</b> and &amp;lt;tag&amp;gt; here</p>", Options{})
	if got != "**&lt;tag&gt; here** and **&lt;tag&gt; here**" {
		t.Fatalf("unexpected: %q", got)
	}

	got = MarkdownifyHTML("<p><b>Don't stop</b> now</p>", Options{})
	if got != "**Don't stop** now" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyMatchTimeout(t *testing.T) {
	in := `<p>See <a href="https://e.com/r">the changelog</a> for <b>breaking</b> changes.</p>`
	want := MarkdownifyHTML(in, Options{})
	if got := MarkdownifyHTML(in, Options{MatchTimeout: time.Minute}); got != want {
		t.Fatalf("bounded match changed output: %q vs %q", got, want)
	}

	re, err := keyRegexp("breaking", HTMLCodec{}, 0)
	if err != nil {
		t.Fatalf("keyRegexp: %v", err)
	}
	if re.MatchTimeout != regexp2.DefaultMatchTimeout {
		t.Fatalf("zero timeout should leave matches unbounded, got %v", re.MatchTimeout)
	}
	re, err = keyRegexp("breaking", HTMLCodec{}, 2*time.Second)
	if err != nil {
		t.Fatalf("keyRegexp: %v", err)
	}
	if re.MatchTimeout != 2*time.Second {
		t.Fatalf("MatchTimeout = %v, want 2s", re.MatchTimeout)
	}
}

func TestMarkdownifySeed(t *testing.T) {
	opts := Options{Seed: MailtoSeed("Jane Doe", "jane@example.com")}
	got := MarkdownifyHTML("<p>From: Jane Doe &lt;jane@example.com&gt;</p>", opts)
	if got != "From: [Jane Doe](<jane@example.com>)" {
		t.Fatalf("unexpected: %q", got)
	}

	opts.Features = AllFeatures().Disable(FeatureLinks)
	got = MarkdownifyHTML("<p>From: Jane Doe &lt;jane@example.com&gt;</p>", opts)
	if got != "From: Jane Doe <jane@example.com>" {
		t.Fatalf("disabled links should skip the seed: %q", got)
	}
}

func TestMarkdownifyHarvestOverridesSeed(t *testing.T) {
	opts := Options{Seed: []Substitution{{Category: FeatureLinks, Text: "Example", Markdown: "SEEDED"}}}
	got := MarkdownifyHTML(`<p><a href="https://e.com">Example</a></p>`, opts)
	if got != "[Example](<https://e.com>)" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyHeaderSeed(t *testing.T) {
	opts := Options{Seed: []Substitution{{Category: FeatureHeaders, Text: "Weekly digest", Markdown: "\n\n# Weekly digest\n\n"}}}
	got := MarkdownifyHTML("<p>Weekly digest</p><p>body text</p>", opts)
	if got != "# Weekly digest\n\nbody text" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestMarkdownifyEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if got := Markdownify(nil, Options{Logger: logger}); got != "" {
		t.Fatalf("nil fragment should yield empty, got %q", got)
	}
	if !strings.Contains(buf.String(), "require fragment") {
		t.Fatalf("expected a debug log, got %q", buf.String())
	}
	if got := MarkdownifyHTML("   ", Options{}); got != "" {
		t.Fatalf("blank markup should yield empty, got %q", got)
	}
	if got := convert(t, "<p></p>", Options{}); got != "" {
		t.Fatalf("empty paragraph should yield empty, got %q", got)
	}
}

func TestMarkdownifyLongText(t *testing.T) {
	text := strings.Repeat("lorem ", 2000)
	got := convert(t, "<p>"+text+"</p>", Options{})
	if got != strings.TrimSpace(text) {
		t.Fatalf("long text changed: %d chars", len(got))
	}
}

func TestMarkdownifyConcurrent(t *testing.T) {
	in := `<h2>Release notes</h2><p>See <a href="https://e.com/r">the changelog</a> for <b>breaking</b> changes.</p>`
	want := convert(t, in, Options{})

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := MarkdownifyHTML(in, Options{}); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent result differs: %q vs %q", got, want)
	}
}
