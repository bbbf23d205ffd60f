package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/utils"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const reply = `{"category":"Spam","risk_score":91,"risk_level":"High Risk","confidence":"High",` +
	`"reasons":["Lottery bait"],"detected_threats":["Scam"],"suggested_action":"Delete it.",` +
	`"emotional_triggers":{"urgency":8,"fear":2,"greed":10,"authority":1},` +
	`"link_analysis":[],"simplified_explanation":"It is a trick."}`

func newTestClient(t *testing.T, model string, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	logger := zap.NewNop()
	return NewOpenAIClientWithConfig(cfg, model, 512, 0.2, 0.9, 1024, logger, utils.NewTextProcessor(logger))
}

func completion(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID: "chatcmpl-1",
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

func TestAnalyzeEmail(t *testing.T) {
	var got openai.ChatCompletionRequest
	client := newTestClient(t, "gpt-4o-mini", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion(reply))
	})

	result, err := client.AnalyzeEmail(context.Background(), &core.AnalysisRequest{
		Email:        core.EmailPayload{Sender: "Prize Desk", SenderEmail: "win@prize.test", Subject: "Winner", Body: "<p>Claim your prize</p>"},
		PastPatterns: []string{"Lottery bait"},
	})
	if err != nil {
		t.Fatalf("AnalyzeEmail: %v", err)
	}
	if result.Category != core.CategorySpam || result.RiskScore != 91 {
		t.Fatalf("unexpected result: %+v", result)
	}

	if got.ResponseFormat == nil || got.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
		t.Fatalf("JSON response format not requested")
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("unexpected messages: %+v", got.Messages)
	}
	user := got.Messages[1].Content
	if !strings.Contains(user, "BODY: Claim your prize") || !strings.Contains(user, "Lottery bait") {
		t.Fatalf("user prompt missing content:\n%s", user)
	}
	if got.MaxTokens != 512 || got.MaxCompletionTokens != 0 {
		t.Fatalf("token limits = %d/%d", got.MaxTokens, got.MaxCompletionTokens)
	}
}

func TestAnalyzeEmailReasoningModel(t *testing.T) {
	var got openai.ChatCompletionRequest
	client := newTestClient(t, "o3-mini", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion(reply))
	})

	if _, err := client.AnalyzeEmail(context.Background(), &core.AnalysisRequest{Email: core.EmailPayload{Body: "hi"}}); err != nil {
		t.Fatalf("AnalyzeEmail: %v", err)
	}
	if got.MaxCompletionTokens != 512 || got.MaxTokens != 0 {
		t.Fatalf("token limits = %d/%d", got.MaxTokens, got.MaxCompletionTokens)
	}
}

func TestAnalyzeEmailErrors(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
		},
		"no choices": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{ID: "x"})
		},
		"bad content": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(completion(`{"category":"Spam"}`))
		},
	}
	for name, h := range cases {
		client := newTestClient(t, "gpt-4o-mini", h)
		if _, err := client.AnalyzeEmail(context.Background(), &core.AnalysisRequest{Email: core.EmailPayload{Body: "hi"}}); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
