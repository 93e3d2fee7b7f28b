// SPDX-License-Identifier: MIT

// Command citymst loads a city road network and prints its minimum spanning tree.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/citymst/internal/cli"
	"github.com/katalvlaran/citymst/internal/config"
	"github.com/katalvlaran/citymst/internal/logutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := cli.NewRootCommand()
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		fatal(err)
	}
}

// fatal logs err with the default profile's logger and exits.
func fatal(err error) {
	logger, _, lerr := logutil.New(config.Default().Log)
	if lerr != nil {
		logger = zap.NewExample()
	}
	logger.Error("citymst failed", zap.Error(err))
	_ = logger.Sync()
	os.Exit(1)
}
