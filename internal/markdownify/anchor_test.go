package markdownify

import "testing"

func TestAnchorFormat(t *testing.T) {
	cases := []struct {
		text, href, comment string
		want                string
	}{
		{"Click here", "https://example.com", "", " [Click here](<https://example.com>) "},
		{"https://example.com", "https://example.com", "", " <https://example.com> "},
		{"test@example.com", "mailto:test@example.com", "", " <test@example.com> "},
		{"HTTPS://Example.com", "https://example.com", "", " <https://example.com> "},
		{"Docs", "https://example.com/a b", "Open docs", ` [Docs](<https://example.com/a b> "Open docs") `},
		{"  Padded  ", " https://example.com ", "  ", " [Padded](<https://example.com>) "},
		{"", "", "", ""},
	}
	for _, tc := range cases {
		if got := AnchorFormat(tc.text, tc.href, tc.comment); got != tc.want {
			t.Fatalf("AnchorFormat(%q, %q, %q) = %q, want %q", tc.text, tc.href, tc.comment, got, tc.want)
		}
	}
}

func TestMailtoSeed(t *testing.T) {
	subs := MailtoSeed("Jane Doe", "jane@example.com")
	if len(subs) != 6 {
		t.Fatalf("expected 6 forms, got %d", len(subs))
	}
	if subs[0].Text != "Jane Doe <jane@example.com>" {
		t.Fatalf("unexpected first form: %q", subs[0].Text)
	}
	if subs[5].Text != `"Jane Doe" jane@example.com` {
		t.Fatalf("unexpected last form: %q", subs[5].Text)
	}
	for _, s := range subs {
		if s.Category != FeatureLinks {
			t.Fatalf("expected link category, got %q", s.Category)
		}
		if s.Markdown != " [Jane Doe](<jane@example.com>) " {
			t.Fatalf("unexpected markdown: %q", s.Markdown)
		}
	}
	if MailtoSeed("", "jane@example.com") != nil {
		t.Fatalf("expected nil seed without a name")
	}
}
