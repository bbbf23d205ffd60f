package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mikey/safe-inbox/internal/core"
)

func TestDefaultInbox(t *testing.T) {
	msgs := Default()
	if len(msgs) != 30 {
		t.Fatalf("expected 30 messages, got %d", len(msgs))
	}

	counts := map[core.Category]int{}
	for _, m := range msgs {
		if m.Analysis != nil {
			t.Fatalf("message %s ships with an analysis", m.ID)
		}
		counts[m.InitialCategory]++
	}
	for _, c := range []core.Category{core.CategoryGenuine, core.CategorySpam, core.CategoryPromotions} {
		if counts[c] != 10 {
			t.Fatalf("expected 10 %s messages, got %d", c, counts[c])
		}
	}

	if _, err := core.NewStore(msgs); err != nil {
		t.Fatalf("default inbox is not a valid store: %v", err)
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	a := Default()
	a[0].Subject = "changed"
	if Default()[0].Subject == "changed" {
		t.Fatalf("Default exposed the shared slice")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.yaml")
	content := `messages:
  - id: x1
    sender: Alice
    sender_email: alice@example.com
    subject: Hello
    body: |
      Lunch tomorrow at noon? I booked the usual place near the office.
    date: Oct 1
    initial_category: Genuine
  - id: x2
    sender: Prize Desk
    sender_email: win@prize.test
    subject: You won
    body: Claim now
    preview: Claim now
    date: Oct 2
    initial_category: Spam
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	msgs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].SenderEmail != "alice@example.com" || msgs[1].InitialCategory != core.CategorySpam {
		t.Fatalf("unexpected messages: %+v", msgs)
	}
	if !strings.HasSuffix(msgs[0].Preview, "...") {
		t.Fatalf("expected generated preview, got %q", msgs[0].Preview)
	}
	if msgs[1].Preview != "Claim now" {
		t.Fatalf("explicit preview overwritten: %q", msgs[1].Preview)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":        "messages: []\n",
		"missing id":   "messages:\n  - subject: hi\n    initial_category: Spam\n",
		"bad category": "messages:\n  - id: a\n    initial_category: Junk\n",
		"not yaml":     "messages: [\n",
	}
	for name, in := range cases {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
