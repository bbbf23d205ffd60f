package factory

import (
	"fmt"
	"io"

	"github.com/mikey/safe-inbox/internal/adapters/cli"
	"github.com/mikey/safe-inbox/internal/adapters/httpapi"
	"github.com/mikey/safe-inbox/internal/config"
	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/ports"
	"go.uber.org/zap"
)

// FrontendFactory creates frontends based on configuration
type FrontendFactory struct {
	cfg          *config.Config
	logger       *zap.Logger
	inboxService *core.InboxService
}

// NewFrontendFactory creates a new frontend factory
func NewFrontendFactory(cfg *config.Config, logger *zap.Logger, inboxService *core.InboxService) *FrontendFactory {
	return &FrontendFactory{
		cfg:          cfg,
		logger:       logger,
		inboxService: inboxService,
	}
}

// CreateFrontend creates a frontend based on the configuration
func (f *FrontendFactory) CreateFrontend(in io.Reader, out io.Writer) (ports.Frontend, error) {
	serverCfg := f.cfg.GetServer()

	switch serverCfg.Frontend {
	case "http":
		return httpapi.NewServer(
			f.inboxService,
			f.logger,
			serverCfg.ListenAddress,
			serverCfg.CORSOrigins,
		), nil
	case "cli":
		mode := cli.ModeScan
		if f.cfg.GetBool("cli.dashboard") {
			mode = cli.ModeDashboard
		}
		return cli.NewScanner(
			f.inboxService,
			f.logger,
			in,
			out,
			mode,
			f.cfg.GetBool("cli.verbose"),
		)
	default:
		return nil, fmt.Errorf("unsupported frontend: %s", serverCfg.Frontend)
	}
}
