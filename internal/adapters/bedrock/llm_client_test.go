package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/utils"
	"go.uber.org/zap"
)

const verdict = `{"category":"Promotions","risk_score":12,"risk_level":"Safe","confidence":"Medium",` +
	`"reasons":["Retail offer"],"detected_threats":[],"suggested_action":"Ignore or read later.",` +
	`"emotional_triggers":{"urgency":3,"fear":0,"greed":4,"authority":0},` +
	`"link_analysis":[],"simplified_explanation":"A shop wants you to buy things."}`

type fakeInvoker struct {
	input *bedrockruntime.InvokeModelInput
	body  []byte
	err   error
}

func (f *fakeInvoker) InvokeModel(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: f.body}, nil
}

func newClient(modelID string, inv ModelInvoker) *BedrockClient {
	logger := zap.NewNop()
	return NewBedrockClient(inv, modelID, 1024, 0.2, 0.9, 4096, logger, utils.NewTextProcessor(logger))
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestAnthropicMessagesModel(t *testing.T) {
	inv := &fakeInvoker{body: mustJSON(t, map[string]interface{}{
		"content": []map[string]string{{"type": "text", "text": verdict}},
	})}
	c := newClient("anthropic.claude-3-haiku-20240307-v1:0", inv)

	result, err := c.AnalyzeEmail(context.Background(), &core.AnalysisRequest{Email: core.EmailPayload{Subject: "Sale", Body: "50% off"}})
	if err != nil {
		t.Fatalf("AnalyzeEmail: %v", err)
	}
	if result.Category != core.CategoryPromotions {
		t.Fatalf("unexpected result: %+v", result)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(inv.input.Body, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload["anthropic_version"] != anthropicVersion {
		t.Fatalf("anthropic_version = %v", payload["anthropic_version"])
	}
	if _, ok := payload["system"].(string); !ok {
		t.Fatalf("system prompt missing")
	}
	if *inv.input.ModelId != "anthropic.claude-3-haiku-20240307-v1:0" {
		t.Fatalf("model id = %s", *inv.input.ModelId)
	}
}

func TestLegacyClaudeModel(t *testing.T) {
	inv := &fakeInvoker{body: mustJSON(t, map[string]string{"completion": " Sure. " + verdict})}
	c := newClient("anthropic.claude-v2", inv)

	if _, err := c.AnalyzeEmail(context.Background(), &core.AnalysisRequest{Email: core.EmailPayload{Body: "x"}}); err != nil {
		t.Fatalf("AnalyzeEmail: %v", err)
	}
	var payload map[string]interface{}
	_ = json.Unmarshal(inv.input.Body, &payload)
	if _, ok := payload["max_tokens_to_sample"]; !ok {
		t.Fatalf("legacy payload not used: %v", payload)
	}
}

func TestTitanModel(t *testing.T) {
	inv := &fakeInvoker{body: mustJSON(t, map[string]interface{}{
		"results": []map[string]string{{"outputText": verdict}},
	})}
	c := newClient("amazon.titan-text-express-v1", inv)

	if _, err := c.AnalyzeEmail(context.Background(), &core.AnalysisRequest{Email: core.EmailPayload{Body: "x"}}); err != nil {
		t.Fatalf("AnalyzeEmail: %v", err)
	}
	var payload map[string]interface{}
	_ = json.Unmarshal(inv.input.Body, &payload)
	if _, ok := payload["textGenerationConfig"]; !ok {
		t.Fatalf("titan payload not used: %v", payload)
	}
}

func TestGenericModelAndErrors(t *testing.T) {
	inv := &fakeInvoker{body: mustJSON(t, map[string]string{"output": verdict})}
	if _, err := newClient("meta.llama3", inv).AnalyzeEmail(context.Background(), &core.AnalysisRequest{}); err != nil {
		t.Fatalf("generic model: %v", err)
	}

	failing := &fakeInvoker{err: errors.New("throttled")}
	if _, err := newClient("meta.llama3", failing).AnalyzeEmail(context.Background(), &core.AnalysisRequest{}); err == nil {
		t.Fatalf("expected invoke error")
	}

	empty := &fakeInvoker{body: mustJSON(t, map[string]interface{}{"results": []interface{}{}})}
	if _, err := newClient("amazon.titan-text-lite-v1", empty).AnalyzeEmail(context.Background(), &core.AnalysisRequest{}); err == nil {
		t.Fatalf("expected error for empty Titan response")
	}
}
