package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
)

func newProcessor() *TextProcessor {
	return NewTextProcessor(zap.NewNop())
}

func TestTruncateTextKeepsValidUTF8(t *testing.T) {
	tp := newProcessor()
	text := strings.Repeat("é", 10) // 20 bytes

	got := tp.TruncateText(text, 5)
	if !strings.HasSuffix(got, TruncationMarker) {
		t.Fatalf("missing truncation marker: %q", got)
	}
	body := strings.TrimSuffix(got, TruncationMarker)
	if body != "éé" || !utf8.ValidString(body) {
		t.Fatalf("unexpected truncated body %q", body)
	}

	if tp.TruncateText("short", 100) != "short" {
		t.Fatalf("short text should pass through")
	}
	if tp.TruncateText("no limit", 0) != "no limit" {
		t.Fatalf("zero limit should disable truncation")
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tp := newProcessor()
	if got := tp.SanitizeUTF8("ok\xffdone"); got != "okdone" {
		t.Fatalf("SanitizeUTF8 = %q", got)
	}
}

func TestStripHTML(t *testing.T) {
	tp := newProcessor()

	in := `<html><body><p>Verify your account &amp; <a href="http://evil.test">click here</a></p></body></html>`
	got := tp.StripHTML(in)
	if strings.Contains(got, "<") || !strings.Contains(got, "Verify your account & click here") {
		t.Fatalf("StripHTML = %q", got)
	}

	plain := "Meet at 5 <no tags here> & bring snacks"
	if tp.StripHTML(plain) != plain {
		t.Fatalf("plain text should pass through unchanged")
	}
}

func TestProcessText(t *testing.T) {
	tp := newProcessor()
	got := tp.ProcessText("<div>"+strings.Repeat("a", 50)+"</div>", 10)
	if got != strings.Repeat("a", 10)+TruncationMarker {
		t.Fatalf("ProcessText = %q", got)
	}
}

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{`prefix {"a":{"b":2}} suffix`, `{"a":{"b":2}}`, true},
		{"no json", "", false},
		{"} backwards {", "", false},
	}
	for _, c := range cases {
		got, ok := ExtractJSONObject(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ExtractJSONObject(%q) = %q, %v", c.in, got, ok)
		}
	}
}
