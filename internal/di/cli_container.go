package di

import (
	"flag"
	"io"
	"os"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/safe-inbox/internal/config"
	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/factory"
	"github.com/mikey/safe-inbox/internal/logging"
	"github.com/mikey/safe-inbox/internal/ports"
	"github.com/mikey/safe-inbox/internal/utils"
	"github.com/spf13/viper"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// LLM provider flags
	Provider    string
	MaxTokens   int
	Temperature float64
	TopP        float64
	MaxBodySize int

	// Bedrock flags
	BedrockRegion  string
	BedrockModelID string

	// Gemini flags
	GeminiAPIKey    string
	GeminiModelName string

	// OpenAI flags
	OpenAIAPIKey    string
	OpenAIModelName string
	OpenAIBaseURL   string

	// Analysis flags
	TrustedDomains string
	SeedFile       string

	// Input flags
	InputFile  string
	Dashboard  bool
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	return ParseFlagSet(flag.CommandLine, os.Args[1:])
}

// ParseFlagSet parses args into a CLIFlags struct using fs
func ParseFlagSet(fs *flag.FlagSet, args []string) *CLIFlags {
	flags := &CLIFlags{}

	// LLM provider flags
	fs.StringVar(&flags.Provider, "provider", "gemini", "LLM provider (gemini, openai, bedrock)")
	fs.IntVar(&flags.MaxTokens, "max-tokens", 2048, "Maximum tokens for LLM response")
	fs.Float64Var(&flags.Temperature, "temperature", 0.2, "Temperature for LLM generation")
	fs.Float64Var(&flags.TopP, "top-p", 0.9, "Top-p for LLM generation")
	fs.IntVar(&flags.MaxBodySize, "max-body-size", 8192, "Maximum email body size to send to LLM")

	// Bedrock flags
	fs.StringVar(&flags.BedrockRegion, "bedrock-region", "us-east-1", "AWS region for Bedrock")
	fs.StringVar(&flags.BedrockModelID, "bedrock-model", "anthropic.claude-3-haiku-20240307-v1:0", "Bedrock model ID")

	// Gemini flags
	fs.StringVar(&flags.GeminiAPIKey, "gemini-api-key", os.Getenv("GEMINI_API_KEY"), "API key for Google Gemini")
	fs.StringVar(&flags.GeminiModelName, "gemini-model", "gemini-flash-latest", "Gemini model name")

	// OpenAI flags
	fs.StringVar(&flags.OpenAIAPIKey, "openai-api-key", os.Getenv("OPENAI_API_KEY"), "API key for OpenAI")
	fs.StringVar(&flags.OpenAIModelName, "openai-model", "gpt-4o-mini", "OpenAI model name")
	fs.StringVar(&flags.OpenAIBaseURL, "openai-base-url", "", "Base URL of an OpenAI compatible endpoint")

	// Analysis flags
	fs.StringVar(&flags.TrustedDomains, "whitelist", "", "Comma separated sender domains trusted without analysis")
	fs.StringVar(&flags.SeedFile, "seed", "", "YAML file replacing the preloaded inbox")

	// Input flags
	fs.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	fs.BoolVar(&flags.Dashboard, "dashboard", false, "Print inbox statistics instead of scanning a message")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	fs.Parse(args)
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags, in io.Reader, out io.Writer) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register streams
	if err := container.Provide(func() Streams {
		return Streams{In: in, Out: out}
	}); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.Load(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			applyCLIMode(cfg.GetViper(), flags)
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register LLM client; the dashboard never calls the analyzer
	if err := container.Provide(func(f *factory.LLMFactory, flags *CLIFlags) (core.LLMClient, error) {
		if flags.Dashboard {
			return nil, nil
		}
		return f.CreateLLMClient()
	}); err != nil {
		return nil, err
	}

	if err := provideInbox(container); err != nil {
		return nil, err
	}

	// Register inbox service with no journal
	if err := container.Provide(func(
		llmClient core.LLMClient,
		store *core.Store,
		senderWhitelist core.SenderWhitelist,
		logger *zap.Logger,
		cfg *config.Config,
	) (*core.InboxService, error) {
		analysisCfg, err := cfg.GetAnalysis()
		if err != nil {
			return nil, err
		}
		return core.NewInboxService(
			llmClient,
			nil, // No journal for CLI
			store,
			senderWhitelist,
			logger,
			core.ServiceOptions{
				PatternLimit:    analysisCfg.PatternLimit,
				AnalysisTimeout: analysisCfg.Timeout,
			},
		), nil
	}); err != nil {
		return nil, err
	}

	// Register frontend
	if err := container.Provide(func(f *factory.FrontendFactory, streams Streams) (ports.Frontend, error) {
		return f.CreateFrontend(streams.In, streams.Out)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// applyCLIMode sets the cli specific settings
func applyCLIMode(v *viper.Viper, flags *CLIFlags) {
	v.Set("server.frontend", "cli")
	v.Set("cli.verbose", flags.Verbose)
	v.Set("cli.dashboard", flags.Dashboard)
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	applyCLIMode(v, flags)

	// Set LLM provider; a one-shot scan is never throttled
	v.Set("llm.provider", flags.Provider)
	v.Set("llm.rate_limit", 0)

	// Set provider-specific configuration
	switch flags.Provider {
	case "bedrock":
		v.Set("bedrock.region", flags.BedrockRegion)
		v.Set("bedrock.model_id", flags.BedrockModelID)
		v.Set("bedrock.max_tokens", flags.MaxTokens)
		v.Set("bedrock.temperature", flags.Temperature)
		v.Set("bedrock.top_p", flags.TopP)
		v.Set("bedrock.max_body_size", flags.MaxBodySize)
	case "gemini":
		v.Set("gemini.api_key", flags.GeminiAPIKey)
		v.Set("gemini.model_name", flags.GeminiModelName)
		v.Set("gemini.max_tokens", flags.MaxTokens)
		v.Set("gemini.temperature", flags.Temperature)
		v.Set("gemini.top_p", flags.TopP)
		v.Set("gemini.max_body_size", flags.MaxBodySize)
	case "openai":
		v.Set("openai.api_key", flags.OpenAIAPIKey)
		v.Set("openai.base_url", flags.OpenAIBaseURL)
		v.Set("openai.model_name", flags.OpenAIModelName)
		v.Set("openai.max_tokens", flags.MaxTokens)
		v.Set("openai.temperature", flags.Temperature)
		v.Set("openai.top_p", flags.TopP)
		v.Set("openai.max_body_size", flags.MaxBodySize)
	}

	// Set analysis configuration
	v.Set("analysis.trusted_domains", splitList(flags.TrustedDomains))
	v.Set("inbox.seed_file", flags.SeedFile)

	return config.NewFromViper(v)
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
