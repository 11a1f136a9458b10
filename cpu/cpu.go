// Package cpu implements the WDC 65C02 instruction execution engine: the
// register file, the operand resolver, the 256-entry opcode dispatch
// table, and the fetch/decode/execute run loop. Program loading, a
// command-line front end, and any bus/pin electrical simulation are
// external collaborators and live outside this package.
package cpu

import (
	"fmt"

	"github.com/wdcworks/go65c02/irq"
	"github.com/wdcworks/go65c02/memory"
)

// Vectors: fixed memory locations holding 16-bit little-endian pointers.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

const stackPage = uint16(0x0100)

// InvalidState represents a programmer/implementation bug: an operand
// access a handler made that its Kind doesn't support, or a decode state
// that should be unreachable given a correctly wired opcode table.
type InvalidState struct {
	Reason string
}

// Error implements error.
func (e InvalidState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// Halted indicates STP was executed. The dispatcher surfaces this as a
// normal terminal state to the host, not a failure.
type Halted struct {
	Opcode uint8
}

// Error implements error.
func (e Halted) Error() string {
	return fmt.Sprintf("halted on opcode 0x%02X", e.Opcode)
}

// Chip is a WDC 65C02 register file plus the memory/interrupt wiring
// needed to execute instructions out of it.
type Chip struct {
	A, X, Y uint8
	S       uint8
	PC      uint16
	P       Flags

	ram memory.Bank
	irq irq.Sender
	nmi irq.Sender

	halted    bool
	haltedOn  uint8
	waiting   bool

	// TickFunc, if set, is called once for each Step() that executes an
	// instruction or services an interrupt, with an approximate cycle count
	// (see cycles.go; not cycle-exact). Cycle-exact pipelining is an
	// explicit non-goal; this hook exists only so a host or test harness
	// can observe approximate timing.
	TickFunc func(cycles int)
}

// ChipDef configures a new Chip.
type ChipDef struct {
	Ram memory.Bank
	Irq irq.Sender
	Nmi irq.Sender
}

// Init constructs a Chip over the given memory and performs a reset,
// loading PC from the reset vector.
func Init(def ChipDef) (*Chip, error) {
	if def.Ram == nil {
		return nil, InvalidState{"ChipDef.Ram must not be nil"}
	}
	c := &Chip{
		ram: def.Ram,
		irq: def.Irq,
		nmi: def.Nmi,
	}
	c.Reset()
	return c, nil
}

// Reset performs a 65C02 reset: S <- 0xFD (conventional, not hardware
// guaranteed), interrupts disabled, PC loaded from the reset vector.
// Other registers and flags are left as-is -- real hardware leaves them
// unconstrained on reset and this engine doesn't pretend otherwise.
func (c *Chip) Reset() {
	c.S = 0xFD
	c.P.I = true
	c.halted = false
	c.waiting = false
	c.PC = c.read16LE(ResetVector)
}

// push writes val at the current stack location then decrements S,
// wrapping modulo 256 (stack overflow silently wraps, as on hardware).
func (c *Chip) push(val uint8) {
	c.ram.Write(stackPage|uint16(c.S), val)
	c.S--
}

// push16 pushes w as two bytes, high byte first then low byte, so that a
// matching pop16 reads low first then high. This ordering is mandated by
// hardware convention (matches JSR/BRK's use on real silicon).
func (c *Chip) push16(w uint16) {
	c.push(uint8(w >> 8))
	c.push(uint8(w))
}

// pop increments S then reads the byte now at the top of stack.
func (c *Chip) pop() uint8 {
	c.S++
	return c.ram.Read(stackPage | uint16(c.S))
}

// pop16 reads the low byte via pop() then the high byte via pop(),
// reconstructing the word pushed by push16.
func (c *Chip) pop16() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// StepResult reports what a single Step() call did.
type StepResult struct {
	Opcode  uint8
	Cycles  int
	Halted  bool
	Waiting bool
}

// cycleCounts holds the approximate, addressing-mode-derived cycle cost
// for each opcode (see buildCycleCounts), used only to drive TickFunc --
// cycle-exact pipelining itself is a non-goal. It is filled by init() in
// opcodes.go once every table row has its final mode.
var cycleCounts [256]int

// Step executes exactly one instruction (or services one pending
// interrupt) starting at PC, resolving its operand per its addressing
// mode and invoking its handler. A programmer-error panic from an
// incorrectly accessed Operand is recovered here and turned into an
// InvalidState error; any other panic propagates.
func (c *Chip) Step() (res StepResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if is, ok := r.(InvalidState); ok {
				err = is
				return
			}
			panic(r)
		}
	}()

	if c.halted {
		return StepResult{Halted: true}, Halted{c.haltedOn}
	}

	if c.serviceInterrupt() {
		res = StepResult{Cycles: 7}
		if c.TickFunc != nil {
			c.TickFunc(res.Cycles)
		}
		return res, nil
	}

	if c.waiting {
		return StepResult{Waiting: true}, nil
	}

	op := c.fetch()
	entry := opcodes[op]
	operand := c.resolveOperand(entry.Mode)
	entry.Handler(c, operand)

	res = StepResult{
		Opcode:  op,
		Cycles:  cycleCounts[op],
		Halted:  c.halted,
		Waiting: c.waiting,
	}
	if c.TickFunc != nil {
		c.TickFunc(res.Cycles)
	}
	if c.halted {
		c.haltedOn = op
		return res, Halted{op}
	}
	return res, nil
}

// serviceInterrupt checks the pending IRQ/NMI latches and, if one should
// fire, performs the interrupt sequence described in spec section 5: push
// PC, push P with B clear, set I, vector through the appropriate address.
// NMI is edge-triggered and always wins over a pending IRQ; IRQ is masked
// by the I flag. Returns true if an interrupt was serviced this Step.
func (c *Chip) serviceInterrupt() bool {
	nmiRaised := c.nmi != nil && c.nmi.Raised()
	irqRaised := c.irq != nil && c.irq.Raised() && !c.P.I

	if !nmiRaised && !irqRaised {
		return false
	}

	c.waiting = false
	c.push16(c.PC)
	c.P.B = false
	c.push(c.P.Pack())
	c.P.I = true

	vector := IRQVector
	if nmiRaised {
		vector = NMIVector
	}
	c.PC = c.read16LE(vector)

	if latch, ok := c.nmi.(*irq.Latch); nmiRaised && ok {
		latch.Clear()
	}
	if latch, ok := c.irq.(*irq.Latch); irqRaised && ok {
		latch.Clear()
	}
	return true
}

// RunResult reports the outcome of Run.
type RunResult struct {
	StepsExecuted int
	Halted        bool
}

// Run repeatedly Steps until the CPU halts (STP) or maxSteps is reached
// (0 means unbounded). Any non-Halted error aborts the run and is
// returned.
func (c *Chip) Run(maxSteps int) (RunResult, error) {
	res := RunResult{}
	for maxSteps <= 0 || res.StepsExecuted < maxSteps {
		step, err := c.Step()
		res.StepsExecuted++
		if err != nil {
			if _, ok := err.(Halted); ok {
				res.Halted = true
				return res, nil
			}
			return res, err
		}
		if step.Halted {
			res.Halted = true
			return res, nil
		}
	}
	return res, nil
}

// InjectIRQ schedules a maskable interrupt for the next instruction
// boundary. The host is expected to have wired an *irq.Latch as this
// Chip's Irq source; if not (a custom irq.Sender was supplied instead)
// this is a no-op and the host must manage its own signal.
func (c *Chip) InjectIRQ() {
	if latch, ok := c.irq.(*irq.Latch); ok {
		latch.Set()
	}
}

// InjectNMI schedules a non-maskable interrupt for the next instruction
// boundary, same caveat as InjectIRQ.
func (c *Chip) InjectNMI() {
	if latch, ok := c.nmi.(*irq.Latch); ok {
		latch.Set()
	}
}

// ClearWait releases a CPU halted on WAI, as an external interrupt would.
func (c *Chip) ClearWait() {
	c.waiting = false
}

// Halted reports whether STP has been executed.
func (c *Chip) Halted() bool {
	return c.halted
}

// Read is host-side memory access, for loading programs and inspecting state.
func (c *Chip) Read(addr uint16) uint8 {
	return c.ram.Read(addr)
}

// Write is host-side memory access, for loading programs and poking state.
func (c *Chip) Write(addr uint16, val uint8) {
	c.ram.Write(addr, val)
}

// Registers is a read-only snapshot of A/X/Y/S/PC/P for test assertions
// and debugging, decoupled from the live Chip so callers can't mutate
// CPU state by holding a reference to it.
type Registers struct {
	A, X, Y, S uint8
	PC         uint16
	P          Flags
}

// Registers returns a snapshot of the current register file.
func (c *Chip) Registers() Registers {
	return Registers{A: c.A, X: c.X, Y: c.Y, S: c.S, PC: c.PC, P: c.P}
}
