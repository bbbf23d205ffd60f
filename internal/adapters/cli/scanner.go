package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
)

const (
	// ModeScan scans one message read from the input as a draft
	ModeScan = "scan"
	// ModeDashboard prints the dashboard of the loaded inbox
	ModeDashboard = "dashboard"
)

// Scanner is the command line frontend. It runs a single operation on
// Start and signals completion through Done.
type Scanner struct {
	service *core.InboxService
	logger  *zap.Logger
	in      io.Reader
	out     io.Writer
	mode    string
	verbose bool

	err  error
	done chan struct{}
}

// NewScanner creates a new command line frontend
func NewScanner(service *core.InboxService, logger *zap.Logger, in io.Reader, out io.Writer, mode string, verbose bool) (*Scanner, error) {
	switch mode {
	case ModeScan, ModeDashboard:
	default:
		return nil, fmt.Errorf("unsupported cli mode: %s", mode)
	}
	return &Scanner{
		service: service,
		logger:  logger,
		in:      in,
		out:     out,
		mode:    mode,
		verbose: verbose,
		done:    make(chan struct{}),
	}, nil
}

// Start runs the configured operation to completion
func (s *Scanner) Start() error {
	defer close(s.done)

	switch s.mode {
	case ModeDashboard:
		PrintDashboard(s.out, s.service.Dashboard(), s.service.Patterns())
	default:
		s.err = s.scan(context.Background())
	}
	return s.err
}

// Stop is a no-op for the command line frontend
func (s *Scanner) Stop() error {
	return nil
}

// Done is closed once Start has finished
func (s *Scanner) Done() <-chan struct{} {
	return s.done
}

// Err returns the error of the finished operation
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) scan(ctx context.Context) error {
	email, err := ParseMessage(s.in)
	if err != nil {
		return err
	}
	s.logger.Debug("Scanning message", zap.String("sender", email.SenderEmail))

	PrintEmailSummary(s.out, email, s.verbose)
	fmt.Fprintf(s.out, "\n=== Analysis ===\n")

	start := time.Now()
	result, err := s.service.ScanDraft(ctx, core.NewSession(), email)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return err
	}

	PrintAnalysis(s.out, result, time.Since(start))
	return nil
}
