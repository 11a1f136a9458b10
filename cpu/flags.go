package cpu

// Flags models the 65C02 processor status register P as seven named
// booleans rather than a raw packed byte. The teacher's C ancestor
// (original_source/cpu/cpu.h) uses a compiler bitfield whose in-memory
// layout is implementation-defined; this type makes the bit layout
// explicit only at the pack/unpack boundary (Pack/UnpackFlags below) and
// never relies on struct layout to match hardware.
//
// Bit layout (MSB -> LSB), per the 65C02 datasheet:
//
//	7 6 5 4 3 2 1 0
//	N V 1 B D I Z C
type Flags struct {
	C bool // Carry
	Z bool // Zero
	I bool // IRQ disable
	D bool // Decimal mode (tracked, does not affect ADC/SBC arithmetic)
	B bool // Break (synthesized on push; not a live hardware flip-flop)
	V bool // Overflow
	N bool // Negative
}

const (
	flagC = uint8(1) << 0
	flagZ = uint8(1) << 1
	flagI = uint8(1) << 2
	flagD = uint8(1) << 3
	flagB = uint8(1) << 4
	flagS1 = uint8(1) << 5 // always reads 1 when pushed; not stored
	flagV = uint8(1) << 6
	flagN = uint8(1) << 7
)

// Pack encodes the flags into a single status byte the way PHP/BRK push it:
// bit 5 is always set, bit 4 (B) reflects the live B field.
func (p Flags) Pack() uint8 {
	var b uint8
	if p.C {
		b |= flagC
	}
	if p.Z {
		b |= flagZ
	}
	if p.I {
		b |= flagI
	}
	if p.D {
		b |= flagD
	}
	if p.B {
		b |= flagB
	}
	b |= flagS1
	if p.V {
		b |= flagV
	}
	if p.N {
		b |= flagN
	}
	return b
}

// UnpackFlags decodes a status byte into Flags. Bit 5 is ignored (there is
// nowhere to store it) and bit 4 decodes into B for round-trip purposes
// only; callers restoring live CPU state (PLP, RTI) must decide separately
// whether to adopt the decoded B, per the 65C02 convention that B is not a
// real, persistent flag.
func UnpackFlags(b uint8) Flags {
	return Flags{
		C: b&flagC != 0,
		Z: b&flagZ != 0,
		I: b&flagI != 0,
		D: b&flagD != 0,
		B: b&flagB != 0,
		V: b&flagV != 0,
		N: b&flagN != 0,
	}
}

// restoreFromPull copies the six real flags (C Z I D V N) from decoded into
// p, leaving B untouched -- this is the PLP/RTI convention: bits 4 and 5 of
// the pulled byte are discarded rather than adopted live.
func (p *Flags) restoreFromPull(decoded Flags) {
	p.C = decoded.C
	p.Z = decoded.Z
	p.I = decoded.I
	p.D = decoded.D
	p.V = decoded.V
	p.N = decoded.N
}

// setNZ sets Z/N from the given result byte, the common tail of almost
// every arithmetic, logical, load, and increment/decrement instruction.
func (p *Flags) setNZ(result uint8) {
	p.Z = result == 0
	p.N = result&0x80 != 0
}
