// Package disassemble formats 65C02 instructions for listing tools.
// It intentionally does not carry its own opcode matrix: cpu.Disassemble
// already knows every addressing mode's syntax, since it's the same table
// the dispatcher executes from, so duplicating it here (the way the
// teacher's disassemble package hand-duplicated its cpu package's NMOS
// opcode switch) would just be a second place for the 65C02 table to drift
// out of sync with the one that actually runs.
package disassemble

import (
	"fmt"

	"github.com/wdcworks/go65c02/cpu"
	"github.com/wdcworks/go65c02/memory"
)

// Step disassembles the instruction at pc and returns a fixed-width
// listing line (address, raw bytes, mnemonic + operand) plus the byte
// count the caller should advance pc by to reach the next instruction.
// This does not interpret control flow, so a JMP/LDA/LDA sequence in
// memory disassembles as written rather than following the jump.
func Step(pc uint16, mem memory.Bank) (string, int) {
	text, length := cpu.Disassemble(mem, pc)

	raw := ""
	for i := 0; i < length; i++ {
		raw += fmt.Sprintf("%02X ", mem.Read(pc+uint16(i)))
	}
	for i := length; i < 3; i++ {
		raw += "   "
	}
	return fmt.Sprintf("%04X  %s  %s", pc, raw, text), length
}
