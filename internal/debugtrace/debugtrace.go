// Package debugtrace is the debug-mode disassembler and line-metadata
// pretty-printer named as an external collaborator in the core spec: it
// consumes vm.Chunk's exported disassembly but is never imported by the
// compiler or VM themselves.
package debugtrace

import (
	"fmt"
	"io"

	"thornvm/vm"
)

// PrintChunk writes a full disassembly of c to w, headed by name.
func PrintChunk(w io.Writer, c *vm.Chunk, name string) {
	fmt.Fprint(w, vm.DisassembleChunk(c, name))
}

// PrintInstruction writes the single instruction at offset to w and
// returns the offset of the next instruction, for callers stepping
// through a chunk interactively.
func PrintInstruction(w io.Writer, c *vm.Chunk, offset int) int {
	line, next := vm.DisassembleInstruction(c, offset)
	fmt.Fprintln(w, line)
	return next
}
