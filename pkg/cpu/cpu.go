// Package cpu implements the interpreter core of an Intel 8080
// (KR580VM80A): register file and flags, ALU primitives, and the
// opcode decoder/dispatcher. It owns only its own register state —
// all memory and I/O are supplied by a hal.Bus — and is not safe for
// concurrent use: Step runs a single instruction to completion on the
// calling goroutine and must not be reentered from a Bus callback.
package cpu

import (
	"fmt"

	"github.com/retrogo/i8080/pkg/hal"
)

// CPU is one emulated 8080: its register file plus the bus it talks
// to. Unlike the teacher's single file-scope cpu global, every CPU is
// an independent instance — multiple cores, one per emulated machine,
// coexist without any shared state.
type CPU struct {
	State

	bus hal.Bus

	// The decoder's register and pair families dispatch through
	// readReg/writeReg and readPair/writePair below: one read and one
	// write function per table, switching on the index rather than
	// holding pointers aliased into State, so index 6 (the HL
	// pseudo-register) goes through the bus the same way.
}

// New returns a CPU wired to bus, already reset per Init.
func New(bus hal.Bus) *CPU {
	c := &CPU{bus: bus}
	c.Init()
	return c
}

// Init resets all registers and flags to zero, clears IFF, and sets PC
// to ResetVector. It is safe to call again on a running CPU to
// simulate a hardware reset.
func (c *CPU) Init() {
	c.State.reset()
}

// Jump sets PC directly; it is the host's only sanctioned way to steer
// execution outside of the documented CALL/RET/RST/conditional-branch
// instructions (e.g. to pick a non-default boot address, or to inject
// an interrupt by pushing a return address and jumping to a vector).
func (c *CPU) Jump(addr uint16) {
	c.PC = addr
}

func (c *CPU) readReg(idx uint8) uint8 {
	switch idx {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.bus.ReadByte(c.HL())
	case 7:
		return c.A
	}
	panic(fmt.Sprintf("cpu: invalid register index %d", idx))
}

func (c *CPU) writeReg(idx uint8, v uint8) {
	switch idx {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.bus.WriteByte(c.HL(), v)
	case 7:
		c.A = v
	default:
		panic(fmt.Sprintf("cpu: invalid register index %d", idx))
	}
}

// readPair/writePair implement the BC,DE,HL,SP pair table used by
// every family except PUSH/POP, which substitute AF for SP (see
// readPairPSW/writePairPSW).
func (c *CPU) readPair(idx uint8) uint16 {
	switch idx {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	case 3:
		return c.SP
	}
	panic(fmt.Sprintf("cpu: invalid pair index %d", idx))
}

func (c *CPU) writePair(idx uint8, v uint16) {
	switch idx {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	case 3:
		c.SP = v
	default:
		panic(fmt.Sprintf("cpu: invalid pair index %d", idx))
	}
}

func (c *CPU) readPairPSW(idx uint8) uint16 {
	if idx == 3 {
		return c.AF()
	}
	return c.readPair(idx)
}

func (c *CPU) writePairPSW(idx uint8, v uint16) {
	if idx == 3 {
		c.SetAF(v)
		return
	}
	c.writePair(idx, v)
}
