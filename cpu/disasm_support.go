package cpu

import (
	"fmt"

	"github.com/wdcworks/go65c02/memory"
)

// Disassemble renders the instruction at pc as 65C02 assembly syntax and
// returns it along with the instruction's byte length. It does not
// interpret control flow -- a JMP/LDA/LDA sequence in memory disassembles
// as written rather than following the jump. This is the DEC component's
// addressing-mode knowledge reused for debugging/tooling instead of
// duplicated in a second opcode table, the way the teacher's disassemble
// package duplicated its cpu package's NMOS opcode matrix by hand.
func Disassemble(mem memory.Bank, pc uint16) (string, int) {
	op := mem.Read(pc)
	entry := opcodes[op]
	length := modeLength[entry.Mode]

	var operand string
	switch entry.Mode {
	case modeImplied, modeAccumulator:
		operand = ""
	case modeImmediate:
		operand = fmt.Sprintf(" #$%02X", mem.Read(pc+1))
	case modeZeroPage:
		operand = fmt.Sprintf(" $%02X", mem.Read(pc+1))
	case modeZeroPageX:
		operand = fmt.Sprintf(" $%02X,X", mem.Read(pc+1))
	case modeZeroPageY:
		operand = fmt.Sprintf(" $%02X,Y", mem.Read(pc+1))
	case modeZeroPageIndirect:
		operand = fmt.Sprintf(" ($%02X)", mem.Read(pc+1))
	case modeZeroPageIndexedIndirect:
		operand = fmt.Sprintf(" ($%02X,X)", mem.Read(pc+1))
	case modeZeroPageIndirectIndexed:
		operand = fmt.Sprintf(" ($%02X),Y", mem.Read(pc+1))
	case modeAbsolute:
		operand = fmt.Sprintf(" $%04X", word(mem, pc+1))
	case modeAbsoluteX:
		operand = fmt.Sprintf(" $%04X,X", word(mem, pc+1))
	case modeAbsoluteY:
		operand = fmt.Sprintf(" $%04X,Y", word(mem, pc+1))
	case modeAbsoluteIndirect:
		operand = fmt.Sprintf(" ($%04X)", word(mem, pc+1))
	case modeAbsoluteIndexedIndirect:
		operand = fmt.Sprintf(" ($%04X,X)", word(mem, pc+1))
	case modeRelative:
		off := int8(mem.Read(pc + 1))
		target := pc + 2 + uint16(int16(off))
		operand = fmt.Sprintf(" $%04X", target)
	case modeZeroPageRelative:
		zp := mem.Read(pc + 1)
		off := int8(mem.Read(pc + 2))
		target := pc + 3 + uint16(int16(off))
		operand = fmt.Sprintf(" $%02X,$%04X", zp, target)
	}
	return entry.Mnemonic + operand, length
}

func word(mem memory.Bank, addr uint16) uint16 {
	return uint16(mem.Read(addr)) | uint16(mem.Read(addr+1))<<8
}
