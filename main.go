// Package main implements the main entry point for a CHIP-8 ROM disassembler
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/c8dc/internal/cli"
	"github.com/retroenv/c8dc/internal/config"
	"github.com/retroenv/c8dc/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// exitFailure is the exit code for runs that could not produce a listing.
const exitFailure = 1

func main() {
	ctx := app.Context()
	logger := config.CreateLogger()

	opts, err := cli.ParseFlags()
	if err != nil {
		cli.ShowUsage(os.Stdout, buildinfo.Version(version, commit, date))
		return
	}

	if _, err := pipeline.New(logger).Execute(ctx, opts, os.Stdout); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
		} else {
			logger.Error("Disassembling failed", log.Err(err))
		}
		os.Exit(exitFailure)
	}
}
