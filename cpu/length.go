package cpu

// modeLength is the total instruction byte length (opcode included) for
// each addressing mode, used by the disassembler and by hosts that want to
// know how far to advance PC without executing.
var modeLength = map[addrMode]int{
	modeAbsolute:                3,
	modeAbsoluteX:               3,
	modeAbsoluteY:               3,
	modeAbsoluteIndirect:        3,
	modeAbsoluteIndexedIndirect: 3,
	modeAccumulator:             1,
	modeImmediate:               2,
	modeImplied:                 1,
	modeRelative:                2,
	modeZeroPage:                2,
	modeZeroPageX:               2,
	modeZeroPageY:               2,
	modeZeroPageIndirect:        2,
	modeZeroPageIndexedIndirect: 2,
	modeZeroPageIndirectIndexed: 2,
	modeZeroPageRelative:        3,
}

// Length returns the byte length (including the opcode byte) of the
// instruction encoded by opcode.
func Length(opcode uint8) int {
	return modeLength[opcodes[opcode].Mode]
}
