package factory

import (
	"fmt"

	"github.com/mikey/safe-inbox/internal/adapters/throttle"
	"github.com/mikey/safe-inbox/internal/config"
	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/utils"
	"go.uber.org/zap"
)

// LLMFactory creates LLM clients
type LLMFactory struct {
	cfg           *config.Config
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
}

// NewLLMFactory creates a new LLM factory
func NewLLMFactory(cfg *config.Config, logger *zap.Logger, textProcessor *utils.TextProcessor) *LLMFactory {
	return &LLMFactory{
		cfg:           cfg,
		logger:        logger,
		textProcessor: textProcessor,
	}
}

// CreateLLMClient creates a new LLM client based on the configuration,
// throttled by llm.rate_limit and llm.burst
func (f *LLMFactory) CreateLLMClient() (core.LLMClient, error) {
	llmConfig := f.cfg.GetLLM()

	var (
		client core.LLMClient
		err    error
	)
	switch llmConfig.Provider {
	case "bedrock":
		client, err = NewBedrockFactory(f.cfg, f.logger, f.textProcessor).CreateLLMClient()
	case "gemini":
		client, err = NewGeminiFactory(f.cfg, f.logger, f.textProcessor).CreateLLMClient()
	case "openai":
		client, err = NewOpenAIFactory(f.cfg, f.logger, f.textProcessor).CreateLLMClient()
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", llmConfig.Provider)
	}
	if err != nil {
		return nil, err
	}

	return throttle.New(client, llmConfig.RateLimit, llmConfig.Burst, f.logger), nil
}
