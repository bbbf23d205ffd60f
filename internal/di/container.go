package di

import (
	"io"
	"os"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/safe-inbox/internal/config"
	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/factory"
	"github.com/mikey/safe-inbox/internal/logging"
	"github.com/mikey/safe-inbox/internal/ports"
	"github.com/mikey/safe-inbox/internal/seed"
	"github.com/mikey/safe-inbox/internal/utils"
	"github.com/mikey/safe-inbox/internal/whitelist"
)

// Streams are the reader and writer handed to the frontend
type Streams struct {
	In  io.Reader
	Out io.Writer
}

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register streams
	if err := container.Provide(func() Streams {
		return Streams{In: os.Stdin, Out: os.Stdout}
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewLLMFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewJournalFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register LLM client
	if err := container.Provide(func(f *factory.LLMFactory) (core.LLMClient, error) {
		return f.CreateLLMClient()
	}); err != nil {
		return nil, err
	}

	// Register analysis journal
	if err := container.Provide(func(f *factory.JournalFactory) (core.AnalysisJournal, error) {
		return f.CreateJournal()
	}); err != nil {
		return nil, err
	}

	// Register service options
	if err := container.Provide(func(f *factory.JournalFactory) (core.ServiceOptions, error) {
		return f.ServiceOptions()
	}); err != nil {
		return nil, err
	}

	if err := provideInbox(container); err != nil {
		return nil, err
	}

	// Register inbox service
	if err := container.Provide(core.NewInboxService); err != nil {
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

// provideInbox registers the sender whitelist and the seeded message store
func provideInbox(container *dig.Container) error {
	// Register sender whitelist
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.SenderWhitelist {
		domains := cfg.GetStringSlice("analysis.trusted_domains")
		if len(domains) > 0 {
			logger.Info("Loaded trusted domains", zap.Strings("domains", domains))
		}
		return whitelist.NewChecker(domains, logger)
	}); err != nil {
		return err
	}

	// Register message store
	return container.Provide(func(cfg *config.Config, logger *zap.Logger) (*core.Store, error) {
		msgs := seed.Default()
		if path := cfg.GetSeedFile(); path != "" {
			loaded, err := seed.LoadFile(path)
			if err != nil {
				return nil, err
			}
			msgs = loaded
			logger.Info("Loaded inbox seed file",
				zap.String("file", path),
				zap.Int("messages", len(msgs)))
		}
		return core.NewStore(msgs)
	})
}
