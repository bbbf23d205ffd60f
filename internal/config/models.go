package config

import (
	"fmt"
	"time"
)

// LLMConfig represents the configuration for the LLM provider
type LLMConfig struct {
	Provider  string
	RateLimit float64
	Burst     int
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
	MaxBodySize int
}

// AnalysisConfig tunes the analysis workflow
type AnalysisConfig struct {
	Timeout        time.Duration
	PatternLimit   int
	TrustedDomains []string
}

// ServerConfig selects and configures the frontend
type ServerConfig struct {
	Frontend      string
	ListenAddress string
	CORSOrigins   []string
}

// JournalConfig represents the configuration for the analysis journal
type JournalConfig struct {
	Type             string
	Enabled          bool
	TTL              time.Duration
	CleanupFrequency time.Duration
	SQLitePath       string
	MySQLDSN         string
	PostgresDSN      string
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider:  c.GetString("llm.provider"),
		RateLimit: c.GetFloat64("llm.rate_limit"),
		Burst:     c.GetInt("llm.burst"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
		MaxBodySize: c.GetInt("bedrock.max_body_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
		MaxBodySize: c.GetInt("gemini.max_body_size"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		BaseURL:     c.GetString("openai.base_url"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
		MaxBodySize: c.GetInt("openai.max_body_size"),
	}
}

// GetAnalysis returns the analysis configuration
func (c *Config) GetAnalysis() (AnalysisConfig, error) {
	timeout, err := c.GetDuration("analysis.timeout")
	if err != nil {
		return AnalysisConfig{}, err
	}
	return AnalysisConfig{
		Timeout:        timeout,
		PatternLimit:   c.GetInt("analysis.pattern_limit"),
		TrustedDomains: c.GetStringSlice("analysis.trusted_domains"),
	}, nil
}

// GetServer returns the frontend configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		Frontend:      c.GetString("server.frontend"),
		ListenAddress: c.GetString("server.listen_address"),
		CORSOrigins:   c.GetStringSlice("server.cors_origins"),
	}
}

// GetJournal returns the journal configuration
func (c *Config) GetJournal() (JournalConfig, error) {
	ttl, err := c.GetDuration("journal.ttl")
	if err != nil {
		return JournalConfig{}, err
	}
	cleanup, err := c.GetDuration("journal.cleanup_frequency")
	if err != nil {
		return JournalConfig{}, err
	}
	if cleanup <= 0 {
		return JournalConfig{}, fmt.Errorf("journal.cleanup_frequency must be positive")
	}
	return JournalConfig{
		Type:             c.GetString("journal.type"),
		Enabled:          c.GetBool("journal.enabled"),
		TTL:              ttl,
		CleanupFrequency: cleanup,
		SQLitePath:       c.GetString("journal.sqlite_path"),
		MySQLDSN:         c.GetString("journal.mysql_dsn"),
		PostgresDSN:      c.GetString("journal.postgres_dsn"),
	}, nil
}

// GetSeedFile returns the optional inbox seed file path
func (c *Config) GetSeedFile() string {
	return c.GetString("inbox.seed_file")
}
