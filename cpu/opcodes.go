package cpu

// handlerFunc is the signature every instruction handler implements.
type handlerFunc func(*Chip, Operand)

// opcodeEntry is one row of the dense 256-entry dispatch table: the
// mnemonic (for disassembly/debugging), its addressing mode, and the
// handler to invoke once the operand is resolved.
type opcodeEntry struct {
	Mnemonic string
	Mode     addrMode
	Handler  handlerFunc
}

// Mnemonic returns the dispatch table's name for opcode, mainly for
// disassembly and diagnostics.
func Mnemonic(opcode uint8) string {
	return opcodes[opcode].Mnemonic
}

// opcodes is the authoritative 256-entry WDC 65C02 opcode matrix. Unknown
// slots default to the zero value, which (Mnemonic == "") init() below
// replaces with a 1-byte implied NOP, matching spec's conservative policy
// for undefined opcodes. The BBRn/BBSn/RMBn/SMBn rows are filled in by
// init() below from a single parameterized handler rather than being
// spelled out 32 times here.
var opcodes = [256]opcodeEntry{
	0x00: {"BRK", modeImplied, (*Chip).iBRK},
	0x01: {"ORA", modeZeroPageIndexedIndirect, (*Chip).iORA},
	0x02: {"NOP", modeImmediate, (*Chip).iNOP},
	0x03: {"NOP", modeImplied, (*Chip).iNOP},
	0x04: {"TSB", modeZeroPage, (*Chip).iTSB},
	0x05: {"ORA", modeZeroPage, (*Chip).iORA},
	0x06: {"ASL", modeZeroPage, (*Chip).iASL},
	0x08: {"PHP", modeImplied, (*Chip).iPHP},
	0x09: {"ORA", modeImmediate, (*Chip).iORA},
	0x0A: {"ASL", modeAccumulator, (*Chip).iASL},
	0x0B: {"NOP", modeImplied, (*Chip).iNOP},
	0x0C: {"TSB", modeAbsolute, (*Chip).iTSB},
	0x0D: {"ORA", modeAbsolute, (*Chip).iORA},
	0x0E: {"ASL", modeAbsolute, (*Chip).iASL},

	0x10: {"BPL", modeRelative, (*Chip).iBPL},
	0x11: {"ORA", modeZeroPageIndirectIndexed, (*Chip).iORA},
	0x12: {"ORA", modeZeroPageIndirect, (*Chip).iORA},
	0x13: {"NOP", modeImplied, (*Chip).iNOP},
	0x14: {"TRB", modeZeroPage, (*Chip).iTRB},
	0x15: {"ORA", modeZeroPageX, (*Chip).iORA},
	0x16: {"ASL", modeZeroPageX, (*Chip).iASL},
	0x18: {"CLC", modeImplied, (*Chip).iCLC},
	0x19: {"ORA", modeAbsoluteY, (*Chip).iORA},
	0x1A: {"INC", modeAccumulator, (*Chip).iINC},
	0x1B: {"NOP", modeImplied, (*Chip).iNOP},
	0x1C: {"TRB", modeAbsolute, (*Chip).iTRB},
	0x1D: {"ORA", modeAbsoluteX, (*Chip).iORA},
	0x1E: {"ASL", modeAbsoluteX, (*Chip).iASL},

	0x20: {"JSR", modeAbsolute, (*Chip).iJSR},
	0x21: {"AND", modeZeroPageIndexedIndirect, (*Chip).iAND},
	0x22: {"NOP", modeImmediate, (*Chip).iNOP},
	0x23: {"NOP", modeImplied, (*Chip).iNOP},
	0x24: {"BIT", modeZeroPage, (*Chip).iBIT},
	0x25: {"AND", modeZeroPage, (*Chip).iAND},
	0x26: {"ROL", modeZeroPage, (*Chip).iROL},
	0x28: {"PLP", modeImplied, (*Chip).iPLP},
	0x29: {"AND", modeImmediate, (*Chip).iAND},
	0x2A: {"ROL", modeAccumulator, (*Chip).iROL},
	0x2B: {"NOP", modeImplied, (*Chip).iNOP},
	0x2C: {"BIT", modeAbsolute, (*Chip).iBIT},
	0x2D: {"AND", modeAbsolute, (*Chip).iAND},
	0x2E: {"ROL", modeAbsolute, (*Chip).iROL},

	0x30: {"BMI", modeRelative, (*Chip).iBMI},
	0x31: {"AND", modeZeroPageIndirectIndexed, (*Chip).iAND},
	0x32: {"AND", modeZeroPageIndirect, (*Chip).iAND},
	0x33: {"NOP", modeImplied, (*Chip).iNOP},
	0x34: {"BIT", modeZeroPageX, (*Chip).iBIT},
	0x35: {"AND", modeZeroPageX, (*Chip).iAND},
	0x36: {"ROL", modeZeroPageX, (*Chip).iROL},
	0x38: {"SEC", modeImplied, (*Chip).iSEC},
	0x39: {"AND", modeAbsoluteY, (*Chip).iAND},
	0x3A: {"DEC", modeAccumulator, (*Chip).iDEC},
	0x3B: {"NOP", modeImplied, (*Chip).iNOP},
	0x3C: {"BIT", modeAbsoluteX, (*Chip).iBIT},
	0x3D: {"AND", modeAbsoluteX, (*Chip).iAND},
	0x3E: {"ROL", modeAbsoluteX, (*Chip).iROL},

	0x40: {"RTI", modeImplied, (*Chip).iRTI},
	0x41: {"EOR", modeZeroPageIndexedIndirect, (*Chip).iEOR},
	0x42: {"NOP", modeImmediate, (*Chip).iNOP},
	0x43: {"NOP", modeImplied, (*Chip).iNOP},
	0x44: {"NOP", modeZeroPage, (*Chip).iNOP},
	0x45: {"EOR", modeZeroPage, (*Chip).iEOR},
	0x46: {"LSR", modeZeroPage, (*Chip).iLSR},
	0x48: {"PHA", modeImplied, (*Chip).iPHA},
	0x49: {"EOR", modeImmediate, (*Chip).iEOR},
	0x4A: {"LSR", modeAccumulator, (*Chip).iLSR},
	0x4B: {"NOP", modeImplied, (*Chip).iNOP},
	0x4C: {"JMP", modeAbsolute, (*Chip).iJMP},
	0x4D: {"EOR", modeAbsolute, (*Chip).iEOR},
	0x4E: {"LSR", modeAbsolute, (*Chip).iLSR},

	0x50: {"BVC", modeRelative, (*Chip).iBVC},
	0x51: {"EOR", modeZeroPageIndirectIndexed, (*Chip).iEOR},
	0x52: {"EOR", modeZeroPageIndirect, (*Chip).iEOR},
	0x53: {"NOP", modeImplied, (*Chip).iNOP},
	0x54: {"NOP", modeZeroPageX, (*Chip).iNOP},
	0x55: {"EOR", modeZeroPageX, (*Chip).iEOR},
	0x56: {"LSR", modeZeroPageX, (*Chip).iLSR},
	0x58: {"CLI", modeImplied, (*Chip).iCLI},
	0x59: {"EOR", modeAbsoluteY, (*Chip).iEOR},
	0x5A: {"PHY", modeImplied, (*Chip).iPHY},
	0x5B: {"NOP", modeImplied, (*Chip).iNOP},
	0x5C: {"NOP", modeAbsolute, (*Chip).iNOP},
	0x5D: {"EOR", modeAbsoluteX, (*Chip).iEOR},
	0x5E: {"LSR", modeAbsoluteX, (*Chip).iLSR},

	0x60: {"RTS", modeImplied, (*Chip).iRTS},
	0x61: {"ADC", modeZeroPageIndexedIndirect, (*Chip).iADC},
	0x62: {"NOP", modeImmediate, (*Chip).iNOP},
	0x63: {"NOP", modeImplied, (*Chip).iNOP},
	0x64: {"STZ", modeZeroPage, (*Chip).iSTZ},
	0x65: {"ADC", modeZeroPage, (*Chip).iADC},
	0x66: {"ROR", modeZeroPage, (*Chip).iROR},
	0x68: {"PLA", modeImplied, (*Chip).iPLA},
	0x69: {"ADC", modeImmediate, (*Chip).iADC},
	0x6A: {"ROR", modeAccumulator, (*Chip).iROR},
	0x6B: {"NOP", modeImplied, (*Chip).iNOP},
	0x6C: {"JMP", modeAbsoluteIndirect, (*Chip).iJMP},
	0x6D: {"ADC", modeAbsolute, (*Chip).iADC},
	0x6E: {"ROR", modeAbsolute, (*Chip).iROR},

	0x70: {"BVS", modeRelative, (*Chip).iBVS},
	0x71: {"ADC", modeZeroPageIndirectIndexed, (*Chip).iADC},
	0x72: {"ADC", modeZeroPageIndirect, (*Chip).iADC},
	0x73: {"NOP", modeImplied, (*Chip).iNOP},
	0x74: {"STZ", modeZeroPageX, (*Chip).iSTZ},
	0x75: {"ADC", modeZeroPageX, (*Chip).iADC},
	0x76: {"ROR", modeZeroPageX, (*Chip).iROR},
	0x78: {"SEI", modeImplied, (*Chip).iSEI},
	0x79: {"ADC", modeAbsoluteY, (*Chip).iADC},
	0x7A: {"PLY", modeImplied, (*Chip).iPLY},
	0x7B: {"NOP", modeImplied, (*Chip).iNOP},
	0x7C: {"JMP", modeAbsoluteIndexedIndirect, (*Chip).iJMP},
	0x7D: {"ADC", modeAbsoluteX, (*Chip).iADC},
	0x7E: {"ROR", modeAbsoluteX, (*Chip).iROR},

	0x80: {"BRA", modeRelative, (*Chip).iBRA},
	0x81: {"STA", modeZeroPageIndexedIndirect, (*Chip).iSTA},
	0x82: {"NOP", modeImmediate, (*Chip).iNOP},
	0x83: {"NOP", modeImplied, (*Chip).iNOP},
	0x84: {"STY", modeZeroPage, (*Chip).iSTY},
	0x85: {"STA", modeZeroPage, (*Chip).iSTA},
	0x86: {"STX", modeZeroPage, (*Chip).iSTX},
	0x88: {"DEY", modeImplied, (*Chip).iDEY},
	0x89: {"BIT", modeImmediate, (*Chip).iBIT},
	0x8A: {"TXA", modeImplied, (*Chip).iTXA},
	0x8B: {"NOP", modeImplied, (*Chip).iNOP},
	0x8C: {"STY", modeAbsolute, (*Chip).iSTY},
	0x8D: {"STA", modeAbsolute, (*Chip).iSTA},
	0x8E: {"STX", modeAbsolute, (*Chip).iSTX},

	0x90: {"BCC", modeRelative, (*Chip).iBCC},
	0x91: {"STA", modeZeroPageIndirectIndexed, (*Chip).iSTA},
	0x92: {"STA", modeZeroPageIndirect, (*Chip).iSTA},
	0x93: {"NOP", modeImplied, (*Chip).iNOP},
	0x94: {"STY", modeZeroPageX, (*Chip).iSTY},
	0x95: {"STA", modeZeroPageX, (*Chip).iSTA},
	0x96: {"STX", modeZeroPageY, (*Chip).iSTX},
	0x98: {"TYA", modeImplied, (*Chip).iTYA},
	0x99: {"STA", modeAbsoluteY, (*Chip).iSTA},
	0x9A: {"TXS", modeImplied, (*Chip).iTXS},
	0x9B: {"NOP", modeImplied, (*Chip).iNOP},
	0x9C: {"STZ", modeAbsolute, (*Chip).iSTZ},
	0x9D: {"STA", modeAbsoluteX, (*Chip).iSTA},
	0x9E: {"STZ", modeAbsoluteX, (*Chip).iSTZ},

	0xA0: {"LDY", modeImmediate, (*Chip).iLDY},
	0xA1: {"LDA", modeZeroPageIndexedIndirect, (*Chip).iLDA},
	0xA2: {"LDX", modeImmediate, (*Chip).iLDX},
	0xA3: {"NOP", modeImplied, (*Chip).iNOP},
	0xA4: {"LDY", modeZeroPage, (*Chip).iLDY},
	0xA5: {"LDA", modeZeroPage, (*Chip).iLDA},
	0xA6: {"LDX", modeZeroPage, (*Chip).iLDX},
	0xA8: {"TAY", modeImplied, (*Chip).iTAY},
	0xA9: {"LDA", modeImmediate, (*Chip).iLDA},
	0xAA: {"TAX", modeImplied, (*Chip).iTAX},
	0xAB: {"NOP", modeImplied, (*Chip).iNOP},
	0xAC: {"LDY", modeAbsolute, (*Chip).iLDY},
	0xAD: {"LDA", modeAbsolute, (*Chip).iLDA},
	0xAE: {"LDX", modeAbsolute, (*Chip).iLDX},

	0xB0: {"BCS", modeRelative, (*Chip).iBCS},
	0xB1: {"LDA", modeZeroPageIndirectIndexed, (*Chip).iLDA},
	0xB2: {"LDA", modeZeroPageIndirect, (*Chip).iLDA},
	0xB3: {"NOP", modeImplied, (*Chip).iNOP},
	0xB4: {"LDY", modeZeroPageX, (*Chip).iLDY},
	0xB5: {"LDA", modeZeroPageX, (*Chip).iLDA},
	0xB6: {"LDX", modeZeroPageY, (*Chip).iLDX},
	0xB8: {"CLV", modeImplied, (*Chip).iCLV},
	0xB9: {"LDA", modeAbsoluteY, (*Chip).iLDA},
	0xBA: {"TSX", modeImplied, (*Chip).iTSX},
	0xBB: {"NOP", modeImplied, (*Chip).iNOP},
	0xBC: {"LDY", modeAbsoluteX, (*Chip).iLDY},
	0xBD: {"LDA", modeAbsoluteX, (*Chip).iLDA},
	0xBE: {"LDX", modeAbsoluteY, (*Chip).iLDX},

	0xC0: {"CPY", modeImmediate, (*Chip).iCPY},
	0xC1: {"CMP", modeZeroPageIndexedIndirect, (*Chip).iCMP},
	0xC2: {"NOP", modeImmediate, (*Chip).iNOP},
	0xC3: {"NOP", modeImplied, (*Chip).iNOP},
	0xC4: {"CPY", modeZeroPage, (*Chip).iCPY},
	0xC5: {"CMP", modeZeroPage, (*Chip).iCMP},
	0xC6: {"DEC", modeZeroPage, (*Chip).iDEC},
	0xC8: {"INY", modeImplied, (*Chip).iINY},
	0xC9: {"CMP", modeImmediate, (*Chip).iCMP},
	0xCA: {"DEX", modeImplied, (*Chip).iDEX},
	0xCB: {"WAI", modeImplied, (*Chip).iWAI},
	0xCC: {"CPY", modeAbsolute, (*Chip).iCPY},
	0xCD: {"CMP", modeAbsolute, (*Chip).iCMP},
	0xCE: {"DEC", modeAbsolute, (*Chip).iDEC},

	0xD0: {"BNE", modeRelative, (*Chip).iBNE},
	0xD1: {"CMP", modeZeroPageIndirectIndexed, (*Chip).iCMP},
	0xD2: {"CMP", modeZeroPageIndirect, (*Chip).iCMP},
	0xD3: {"NOP", modeImplied, (*Chip).iNOP},
	0xD4: {"NOP", modeZeroPageX, (*Chip).iNOP},
	0xD5: {"CMP", modeZeroPageX, (*Chip).iCMP},
	0xD6: {"DEC", modeZeroPageX, (*Chip).iDEC},
	0xD8: {"CLD", modeImplied, (*Chip).iCLD},
	0xD9: {"CMP", modeAbsoluteY, (*Chip).iCMP},
	0xDA: {"PHX", modeImplied, (*Chip).iPHX},
	0xDB: {"STP", modeImplied, (*Chip).iSTP},
	0xDC: {"NOP", modeAbsoluteX, (*Chip).iNOP},
	0xDD: {"CMP", modeAbsoluteX, (*Chip).iCMP},
	0xDE: {"DEC", modeAbsoluteX, (*Chip).iDEC},

	0xE0: {"CPX", modeImmediate, (*Chip).iCPX},
	0xE1: {"SBC", modeZeroPageIndexedIndirect, (*Chip).iSBC},
	0xE2: {"NOP", modeImmediate, (*Chip).iNOP},
	0xE3: {"NOP", modeImplied, (*Chip).iNOP},
	0xE4: {"CPX", modeZeroPage, (*Chip).iCPX},
	0xE5: {"SBC", modeZeroPage, (*Chip).iSBC},
	0xE6: {"INC", modeZeroPage, (*Chip).iINC},
	0xE8: {"INX", modeImplied, (*Chip).iINX},
	0xE9: {"SBC", modeImmediate, (*Chip).iSBC},
	0xEA: {"NOP", modeImplied, (*Chip).iNOP},
	0xEB: {"NOP", modeImplied, (*Chip).iNOP},
	0xEC: {"CPX", modeAbsolute, (*Chip).iCPX},
	0xED: {"SBC", modeAbsolute, (*Chip).iSBC},
	0xEE: {"INC", modeAbsolute, (*Chip).iINC},

	0xF0: {"BEQ", modeRelative, (*Chip).iBEQ},
	0xF1: {"SBC", modeZeroPageIndirectIndexed, (*Chip).iSBC},
	0xF2: {"SBC", modeZeroPageIndirect, (*Chip).iSBC},
	0xF3: {"NOP", modeImplied, (*Chip).iNOP},
	0xF4: {"NOP", modeZeroPageX, (*Chip).iNOP},
	0xF5: {"SBC", modeZeroPageX, (*Chip).iSBC},
	0xF6: {"INC", modeZeroPageX, (*Chip).iINC},
	0xF8: {"SED", modeImplied, (*Chip).iSED},
	0xF9: {"SBC", modeAbsoluteY, (*Chip).iSBC},
	0xFA: {"PLX", modeImplied, (*Chip).iPLX},
	0xFB: {"NOP", modeImplied, (*Chip).iNOP},
	0xFC: {"NOP", modeAbsoluteX, (*Chip).iNOP},
	0xFD: {"SBC", modeAbsoluteX, (*Chip).iSBC},
	0xFE: {"INC", modeAbsoluteX, (*Chip).iINC},
}

func init() {
	// BBRn/BBSn/RMBn/SMBn for n in 0..7: a 4x8 lookup (4 mnemonic
	// families x 8 bit indices) generated from rmbHandler/smbHandler/
	// bbrHandler/bbsHandler instead of being spelled out by hand.
	for n := uint(0); n < 8; n++ {
		row := uint8(n) * 0x10
		rmb, smb, bbr, bbs := rmbHandler(n), smbHandler(n), bbrHandler(n), bbsHandler(n)
		opcodes[0x07+row] = opcodeEntry{mnemonicFor("RMB", n), modeZeroPage, wrapHandler(rmb)}
		opcodes[0x87+row] = opcodeEntry{mnemonicFor("SMB", n), modeZeroPage, wrapHandler(smb)}
		opcodes[0x0F+row] = opcodeEntry{mnemonicFor("BBR", n), modeZeroPageRelative, wrapHandler(bbr)}
		opcodes[0x8F+row] = opcodeEntry{mnemonicFor("BBS", n), modeZeroPageRelative, wrapHandler(bbs)}
	}
	// Any opcode byte left with a zero-value entry (Mnemonic == "") is an
	// undefined 65C02 opcode; wire it to a 1-byte implied NOP per spec's
	// conservative policy rather than leaving a nil Handler.
	for i := range opcodes {
		if opcodes[i].Mnemonic == "" {
			opcodes[i] = opcodeEntry{"NOP", modeImplied, (*Chip).iNOP}
		}
	}
	cycleCounts = buildCycleCounts()
}

// mnemonicFor renders e.g. "RMB" + 3 -> "RMB3".
func mnemonicFor(base string, n uint) string {
	return base + string(rune('0'+n))
}

// wrapHandler adapts a closure captured by bit index into the handlerFunc
// shape the table stores, so (*Chip).iXXX-style method values and
// generated closures can share one entry type.
func wrapHandler(f func(*Chip, Operand)) handlerFunc {
	return f
}
