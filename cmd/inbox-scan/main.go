package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/di"
	"github.com/mikey/safe-inbox/internal/ports"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	// Read the message from file or stdin
	var in io.Reader = os.Stdin
	if flags.InputFile != "" && !flags.Dashboard {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			fmt.Printf("Failed to open input file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		in = file
	}

	container, err := di.BuildCLIContainer(flags, in, os.Stdout)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the scan or dashboard once
func run(logger *zap.Logger, frontend ports.Frontend, llmClient core.LLMClient, flags *di.CLIFlags) error {
	defer logger.Sync()

	if flags.InputFile != "" {
		logger.Info("Reading email from file", zap.String("file", flags.InputFile))
	} else if !flags.Dashboard {
		logger.Info("Reading email from stdin")
	}

	err := frontend.Start()

	// Close any resources that need closing
	if closer, ok := llmClient.(interface{ Close() error }); ok {
		if cerr := closer.Close(); cerr != nil {
			logger.Error("Failed to close LLM client", zap.Error(cerr))
		}
	}
	return err
}
