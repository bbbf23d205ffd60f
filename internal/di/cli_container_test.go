package di

import (
	"flag"
	"reflect"
	"testing"
)

func TestCreateConfigFromFlags(t *testing.T) {
	fs := flag.NewFlagSet("inbox-scan", flag.ContinueOnError)
	flags := ParseFlagSet(fs, []string{
		"-provider", "openai",
		"-openai-api-key", "sk-test",
		"-openai-model", "gpt-4o",
		"-whitelist", " example.com, ,bank.test ",
		"-dashboard",
	})

	cfg := createConfigFromFlags(flags)

	if got := cfg.GetString("server.frontend"); got != "cli" {
		t.Fatalf("expected cli frontend, got %q", got)
	}
	if !cfg.GetBool("cli.dashboard") {
		t.Fatalf("dashboard flag not applied")
	}
	openaiCfg := cfg.GetOpenAI()
	if openaiCfg.APIKey != "sk-test" || openaiCfg.ModelName != "gpt-4o" {
		t.Fatalf("unexpected openai config: %+v", openaiCfg)
	}
	if got := cfg.GetStringSlice("analysis.trusted_domains"); !reflect.DeepEqual(got, []string{"example.com", "bank.test"}) {
		t.Fatalf("unexpected trusted domains: %v", got)
	}
	if cfg.GetLLM().RateLimit != 0 {
		t.Fatalf("cli scans should not be throttled")
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList(""); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
	if got := splitList("a,b"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected split: %v", got)
	}
}
