package cpu

import "fmt"

// OperandKind distinguishes the variants an addressing mode can produce.
type OperandKind int

const (
	// OperandNone carries no data: implied instructions, or accumulator
	// mode instructions that don't otherwise need an address.
	OperandNone OperandKind = iota
	// OperandImmediate carries a literal byte fetched from the instruction stream.
	OperandImmediate
	// OperandAddress carries an effective memory address to load/store through.
	OperandAddress
	// OperandAccumulator marks that the operand is register A itself.
	OperandAccumulator
	// OperandWordAndAddress carries both a zero-page test address (for
	// BBRn/BBSn's bit test) and a branch target address.
	OperandWordAndAddress
)

// Operand is the resolved result of decoding an instruction's addressing
// mode: a tagged union where each variant only ever populates the fields it
// needs. Unlike original_source's C struct (which populates "word" and
// "addr" unconditionally and relies on an abort() at use time to catch
// misuse) the Kind tag plus the load/store/effAddr methods below make every
// valid access path exhaustive; a mismatched Kind can only be reached by an
// incorrectly wired opcode table entry.
type Operand struct {
	Kind     OperandKind
	Imm      uint8  // valid for OperandImmediate
	Addr     uint16 // effective address (OperandAddress) or branch target (OperandWordAndAddress)
	TestAddr uint16 // zero-page address to test a bit against (OperandWordAndAddress only)
}

// invalidOperand panics with a diagnostic. Per spec this path is a
// programmer/implementation bug -- an opcode table entry invoking an
// addressing mode its handler can't consume -- and should be unreachable
// for any opcode actually present in the dispatch table. Step() recovers
// this into a returned error at the instruction boundary.
func invalidOperand(op string, o Operand) {
	panic(InvalidState{fmt.Sprintf("%s: operand kind %d not valid here", op, o.Kind)})
}

// load reads the value an operand refers to: the literal immediate byte,
// the memory cell at its effective address, the accumulator, or (for
// BBRn/BBSn) the byte at the tested zero-page address.
func (c *Chip) load(o Operand) uint8 {
	switch o.Kind {
	case OperandImmediate:
		return o.Imm
	case OperandAddress:
		return c.ram.Read(o.Addr)
	case OperandAccumulator:
		return c.A
	case OperandWordAndAddress:
		return c.ram.Read(o.TestAddr)
	default:
		invalidOperand("load", o)
		return 0
	}
}

// store writes val to wherever an operand refers to: memory at its
// effective address, or the accumulator. Immediate, implied, and
// word-and-address operands can never be store targets.
func (c *Chip) store(o Operand, val uint8) {
	switch o.Kind {
	case OperandAddress:
		c.ram.Write(o.Addr, val)
	case OperandAccumulator:
		c.A = val
	default:
		invalidOperand("store", o)
	}
}

// effAddr returns the address field of an operand: the effective address
// for OperandAddress, or the branch target for OperandWordAndAddress.
func effAddr(o Operand) uint16 {
	switch o.Kind {
	case OperandAddress, OperandWordAndAddress:
		return o.Addr
	default:
		invalidOperand("effAddr", o)
		return 0
	}
}
