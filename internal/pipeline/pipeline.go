// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/c8dc/internal/detector"
	"github.com/retroenv/c8dc/internal/disasm"
	"github.com/retroenv/c8dc/internal/loader"
	"github.com/retroenv/c8dc/internal/options"
	"github.com/retroenv/c8dc/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
	disasm *disasm.Disasm
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(detector.New(logger)),
		disasm: disasm.New(logger),
	}
}

// Execute loads the ROM file and writes its listing to the writer.
// Nothing is written when loading fails.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (disasm.Result, error) {
	img, err := p.loader.Load(opts.Input)
	if err != nil {
		return disasm.Result{}, fmt.Errorf("loading rom: %w", err)
	}
	defer img.Release()

	p.printInfo(opts, img)

	return p.ExecuteWithImage(ctx, img, writer)
}

// ExecuteWithImage runs the disassembly pipeline with a pre-loaded image.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithImage(ctx context.Context, img *program.Image, writer io.Writer) (disasm.Result, error) {
	result, err := p.disasm.Process(ctx, img, writer)
	if err != nil {
		return result, fmt.Errorf("disassembling: %w", err)
	}
	return result, nil
}

// printInfo logs information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, img *program.Image) {
	p.logger.Debug("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", img.Size()),
		log.Stringer("layout", img.Layout()),
		log.Hex("end", img.End()),
	)
}
