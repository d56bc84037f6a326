package cpu

// Flag bit positions of the packed status byte. Bits 1, 3 and 5 are
// not real flags: 1 is always set, 3 and 5 are always clear. PUSH PSW
// must materialize them this way; POP PSW must discard whatever was
// popped into those positions.
const (
	FlagC = 1 << 0
	flag1 = 1 << 1
	FlagP = 1 << 2
	flag3 = 1 << 3
	FlagH = 1 << 4
	flag5 = 1 << 5
	FlagZ = 1 << 6
	FlagS = 1 << 7
)

// ResetVector is the platform-conventional PC value Init leaves the
// core at. Hosts wanting a different boot address call Jump after
// Init.
const ResetVector uint16 = 0xF800

// State is the architectural register file: seven 8-bit registers
// arranged as three 16-bit pairs plus the accumulator, the stack
// pointer, the program counter, and the interrupt-enable latch. The
// status flags are kept as five booleans rather than a packed byte —
// PUSH PSW materializes them into a byte, POP PSW extracts them back
// out, and no other instruction touches F directly. This mirrors the
// Z80 superoptimizer's standalone State type (a plain, comparable
// struct cheap to copy and snapshot) rather than the teacher's fused
// cpu+flags layout.
type State struct {
	A, B, C, D, E, H, L uint8
	SP, PC              uint16
	IFF                 bool

	Sign, Zero, HalfCarry, Parity, Carry bool
}

// Equal reports whether two states are identical.
func (s State) Equal(o State) bool { return s == o }

func (s *State) reset() {
	*s = State{PC: ResetVector}
}

// F packs the five logical flags into the 8080 status byte, forcing
// the three fixed bits to their documented values.
func (s State) F() uint8 {
	f := uint8(flag1)
	if s.Sign {
		f |= FlagS
	}
	if s.Zero {
		f |= FlagZ
	}
	if s.HalfCarry {
		f |= FlagH
	}
	if s.Parity {
		f |= FlagP
	}
	if s.Carry {
		f |= FlagC
	}
	return f
}

// setF unpacks a status byte into the five logical flags, discarding
// the fixed bits (POP PSW never trusts what was popped there).
func (s *State) setF(f uint8) {
	s.Sign = f&FlagS != 0
	s.Zero = f&FlagZ != 0
	s.HalfCarry = f&FlagH != 0
	s.Parity = f&FlagP != 0
	s.Carry = f&FlagC != 0
}

func (s State) BC() uint16 { return uint16(s.B)<<8 | uint16(s.C) }
func (s State) DE() uint16 { return uint16(s.D)<<8 | uint16(s.E) }
func (s State) HL() uint16 { return uint16(s.H)<<8 | uint16(s.L) }
func (s State) AF() uint16 { return uint16(s.A)<<8 | uint16(s.F()) }

func (s *State) SetBC(v uint16) { s.B, s.C = uint8(v>>8), uint8(v) }
func (s *State) SetDE(v uint16) { s.D, s.E = uint8(v>>8), uint8(v) }
func (s *State) SetHL(v uint16) { s.H, s.L = uint8(v>>8), uint8(v) }
func (s *State) SetAF(v uint16) {
	s.A = uint8(v >> 8)
	s.setF(uint8(v))
}
