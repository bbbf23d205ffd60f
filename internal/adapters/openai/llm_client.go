package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/prompt"
	"github.com/mikey/safe-inbox/internal/utils"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIClient is an implementation of the LLMClient interface using OpenAI
type OpenAIClient struct {
	client        *openai.Client
	modelName     string
	maxTokens     int
	temperature   float32
	topP          float32
	maxBodySize   int
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *OpenAIClient {
	return NewOpenAIClientWithConfig(openai.DefaultConfig(apiKey), modelName, maxTokens, temperature, topP, maxBodySize, logger, textProcessor)
}

// NewOpenAIClientWithConfig creates a client against a custom endpoint, such
// as an OpenAI compatible gateway
func NewOpenAIClientWithConfig(
	clientConfig openai.ClientConfig,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	maxBodySize int,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
) *OpenAIClient {
	return &OpenAIClient{
		client:        openai.NewClientWithConfig(clientConfig),
		modelName:     modelName,
		maxTokens:     maxTokens,
		temperature:   temperature,
		topP:          topP,
		maxBodySize:   maxBodySize,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// AnalyzeEmail returns a structured risk assessment of req.Email
func (c *OpenAIClient) AnalyzeEmail(ctx context.Context, req *core.AnalysisRequest) (*core.AnalysisResult, error) {
	email := req.Email
	email.Body = c.textProcessor.ProcessText(email.Body, c.maxBodySize)

	chatReq := openai.ChatCompletionRequest{
		Model: c.modelName,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.SystemInstruction()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.BuildUserPrompt(email, req.PastPatterns)},
		},
	}
	// Reasoning models take MaxCompletionTokens and reject sampling parameters
	if isReasoningModel(c.modelName) {
		chatReq.MaxCompletionTokens = c.maxTokens
	} else {
		chatReq.MaxTokens = c.maxTokens
		chatReq.Temperature = c.temperature
		chatReq.TopP = c.topP
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion with OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	result, err := prompt.DecodeResult(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode OpenAI response: %w", err)
	}

	c.logger.Debug("OpenAI analysis complete",
		zap.String("model", c.modelName),
		zap.String("completion_id", resp.ID),
		zap.String("category", string(result.Category)),
		zap.Int("risk_score", result.RiskScore))

	return result, nil
}

func isReasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
