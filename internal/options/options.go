// Package options contains the program options.
package options

// Program options of the disassembler.
type Program struct {
	Input string // ROM file to disassemble
}
