// Package disasm implements the CHIP-8 disassembly driver that turns a loaded
// ROM image into an instruction listing.
package disasm

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/retroenv/c8dc/internal/arch/chip8"
	"github.com/retroenv/c8dc/internal/program"
	"github.com/retroenv/retrogolib/log"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger *log.Logger
}

// Result contains statistics of a disassembly pass.
type Result struct {
	Lines   int // number of emitted lines
	Unknown int // number of words that did not decode to an instruction
}

// New creates a new disassembler.
func New(logger *log.Logger) *Disasm {
	return &Disasm{
		logger: logger,
	}
}

// Process disassembles the image and writes one formatted line per instruction.
func (dis *Disasm) Process(ctx context.Context, img *program.Image, writer io.Writer) (Result, error) {
	var result Result
	buf := bufio.NewWriter(writer)

	err := dis.walk(ctx, img, func(line chip8.Line) error {
		if _, err := fmt.Fprintln(buf, line.String()); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		result.Lines++
		if line.Instruction.IsUnknown() {
			result.Unknown++
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	if err := buf.Flush(); err != nil {
		return result, fmt.Errorf("flushing output: %w", err)
	}

	dis.logger.Debug("Disassembly finished",
		log.Int("lines", result.Lines),
		log.Int("unknown", result.Unknown))
	return result, nil
}

// walk calls the handler for every decoded line of the image.
func (dis *Disasm) walk(ctx context.Context, img *program.Image, handle func(chip8.Line) error) error {
	for address := program.LoadAddress; address+chip8.OpcodeSize <= img.End(); address += chip8.OpcodeSize {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("disassembling at 0x%04X: %w", address, err)
		}

		pc := uint16(address)
		word, err := img.Word(pc)
		if err != nil {
			return fmt.Errorf("reading instruction: %w", err)
		}

		if err := handle(chip8.NewLine(pc, word)); err != nil {
			return err
		}
	}
	return nil
}
