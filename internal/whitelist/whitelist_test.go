package whitelist

import (
	"testing"

	"go.uber.org/zap"
)

func TestIsWhitelisted(t *testing.T) {
	c := NewChecker([]string{" Corp.Test ", "", "example.org."}, zap.NewNop())

	cases := []struct {
		from string
		want bool
	}{
		{"ceo@corp.test", true},
		{"CEO@CORP.TEST", true},
		{"alerts@mail.corp.test", true},
		{"Boss <boss@corp.test>", true},
		{"news@example.org", true},
		{"x@corp.test.evil.io", false},
		{"x@notcorp.test", false},
		{"no-at-sign", false},
		{"trailing@", false},
		{"", false},
	}
	for _, c2 := range cases {
		if got := c.IsWhitelisted(c2.from); got != c2.want {
			t.Errorf("IsWhitelisted(%q) = %v, want %v", c2.from, got, c2.want)
		}
	}
}

func TestEmptyWhitelist(t *testing.T) {
	c := NewChecker(nil, nil)
	if c.IsWhitelisted("a@corp.test") {
		t.Fatalf("empty whitelist trusted a sender")
	}
}
