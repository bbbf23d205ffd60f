package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/prompt"
	"github.com/mikey/safe-inbox/internal/utils"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiClient is an implementation of the LLMClient interface using Google Gemini
type GeminiClient struct {
	client        *genai.Client
	model         *genai.GenerativeModel
	modelName     string
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(
	ctx context.Context,
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt.SystemInstruction())},
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema()

	return &GeminiClient{
		client:        client,
		model:         model,
		modelName:     modelName,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}, nil
}

// Close closes the Gemini client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// AnalyzeEmail returns a structured risk assessment of req.Email
func (c *GeminiClient) AnalyzeEmail(ctx context.Context, req *core.AnalysisRequest) (*core.AnalysisResult, error) {
	email := req.Email
	email.Body = c.textProcessor.ProcessText(email.Body, c.maxBodySize)
	userPrompt := prompt.BuildUserPrompt(email, req.PastPatterns)

	resp, err := c.model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	result, err := prompt.DecodeResult(sb.String())
	if err != nil {
		return nil, fmt.Errorf("failed to decode Gemini response: %w", err)
	}

	c.logger.Debug("Gemini analysis complete",
		zap.String("model", c.modelName),
		zap.String("category", string(result.Category)),
		zap.Int("risk_score", result.RiskScore))

	return result, nil
}

// responseSchema constrains Gemini to the AnalysisResult wire shape
func responseSchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	num := &genai.Schema{Type: genai.TypeNumber}
	strList := &genai.Schema{Type: genai.TypeArray, Items: str}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category":             {Type: genai.TypeString, Enum: []string{"Genuine", "Spam", "Promotions"}},
			"risk_score":           num,
			"risk_level":           {Type: genai.TypeString, Enum: []string{"Safe", "Medium Risk", "High Risk"}},
			"confidence":           str,
			"reasons":              strList,
			"detected_threats":     strList,
			"suggested_action":     str,
			"impersonation_target": str,
			"emotional_triggers": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"urgency":   num,
					"fear":      num,
					"greed":     num,
					"authority": num,
				},
				Required: []string{"urgency", "fear", "greed", "authority"},
			},
			"link_analysis": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"url":    str,
						"risk":   {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
						"reason": str,
					},
					Required: []string{"url", "risk", "reason"},
				},
			},
			"simplified_explanation": str,
		},
		Required: []string{
			"category", "risk_score", "risk_level", "confidence", "reasons", "detected_threats",
			"suggested_action", "emotional_triggers", "link_analysis", "simplified_explanation",
		},
	}
}
