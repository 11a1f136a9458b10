package cpu

// addrMode enumerates the 16 65C02 addressing modes named in the spec.
// The dispatch table (opcodes.go) maps each opcode to exactly one of
// these; resolveOperand below does the actual byte consumption.
type addrMode int

const (
	modeAbsolute addrMode = iota
	modeAbsoluteX
	modeAbsoluteY
	modeAbsoluteIndirect
	modeAbsoluteIndexedIndirect
	modeAccumulator
	modeImmediate
	modeImplied
	modeRelative
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeZeroPageIndirect
	modeZeroPageIndexedIndirect
	modeZeroPageIndirectIndexed
	modeZeroPageRelative
)

// fetch reads the byte at PC and advances PC by one, wrapping modulo 64K.
func (c *Chip) fetch() uint8 {
	v := c.ram.Read(c.PC)
	c.PC++
	return v
}

// fetch16 reads a little-endian word starting at PC, advancing PC by two.
func (c *Chip) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// read16LE reads a little-endian word at addr/addr+1 with ordinary 16-bit
// wraparound. This is also how the 65C02 resolves absolute indirect JMP:
// unlike the original NMOS 6502, the high byte is read from addr+1 without
// clamping to the same page, so normal unsigned addition already gives the
// corrected behavior.
func (c *Chip) read16LE(addr uint16) uint16 {
	lo := c.ram.Read(addr)
	hi := c.ram.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16ZP reads a little-endian pointer stored at zero-page address z,
// where the high byte wraps within page zero: z=0xFF reads its high byte
// from 0x00, never 0x100. This is the documented 6502/65C02 zero-page
// pointer wrap.
func (c *Chip) read16ZP(z uint8) uint16 {
	lo := c.ram.Read(uint16(z))
	hi := c.ram.Read(uint16(z + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// resolveOperand consumes the bytes following the opcode according to mode
// and produces the Operand the instruction handler will load/store/branch
// through. PC has already been advanced past the opcode byte itself.
func (c *Chip) resolveOperand(mode addrMode) Operand {
	switch mode {
	case modeAbsolute:
		return Operand{Kind: OperandAddress, Addr: c.fetch16()}
	case modeAbsoluteX:
		return Operand{Kind: OperandAddress, Addr: c.fetch16() + uint16(c.X)}
	case modeAbsoluteY:
		return Operand{Kind: OperandAddress, Addr: c.fetch16() + uint16(c.Y)}
	case modeAbsoluteIndirect:
		p := c.fetch16()
		return Operand{Kind: OperandAddress, Addr: c.read16LE(p)}
	case modeAbsoluteIndexedIndirect:
		p := c.fetch16() + uint16(c.X)
		return Operand{Kind: OperandAddress, Addr: c.read16LE(p)}
	case modeAccumulator:
		return Operand{Kind: OperandAccumulator}
	case modeImmediate:
		return Operand{Kind: OperandImmediate, Imm: c.fetch()}
	case modeImplied:
		return Operand{Kind: OperandNone}
	case modeRelative:
		off := int8(c.fetch())
		target := c.PC + uint16(int16(off))
		return Operand{Kind: OperandAddress, Addr: target}
	case modeZeroPage:
		return Operand{Kind: OperandAddress, Addr: uint16(c.fetch())}
	case modeZeroPageX:
		return Operand{Kind: OperandAddress, Addr: uint16(c.fetch() + c.X)}
	case modeZeroPageY:
		return Operand{Kind: OperandAddress, Addr: uint16(c.fetch() + c.Y)}
	case modeZeroPageIndirect:
		z := c.fetch()
		return Operand{Kind: OperandAddress, Addr: c.read16ZP(z)}
	case modeZeroPageIndexedIndirect:
		z := c.fetch() + c.X
		return Operand{Kind: OperandAddress, Addr: c.read16ZP(z)}
	case modeZeroPageIndirectIndexed:
		z := c.fetch()
		ptr := c.read16ZP(z)
		return Operand{Kind: OperandAddress, Addr: ptr + uint16(c.Y)}
	case modeZeroPageRelative:
		z := c.fetch()
		off := int8(c.fetch())
		target := c.PC + uint16(int16(off))
		return Operand{Kind: OperandWordAndAddress, TestAddr: uint16(z), Addr: target}
	default:
		invalidOperand("resolveOperand", Operand{})
		return Operand{}
	}
}
