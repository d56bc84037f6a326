package cpu

// halfCarryAddTable and halfCarrySubTable are indexed by the bit-3
// concatenation of (A, operand, result): bit 2 is A's bit 3, bit 1 is
// the operand's bit 3, bit 0 is the result's bit 3. For ADD/ADC the
// table value is half-carry directly; for SUB/SBB/CMP the 8080
// convention inverts it (H is set iff there was NO borrow out of bit
// 3), which is why sub complements the lookup.
var halfCarryAddTable = [8]bool{false, false, true, false, true, false, true, true}
var halfCarrySubTable = [8]bool{false, true, true, true, false, false, false, true}

func halfCarryIndex(a, operand, result uint8) int {
	return int(((a & 0x08) >> 1) | ((operand & 0x08) >> 2) | ((result & 0x08) >> 3))
}

// parity reports whether v's population count is even.
func parity(v uint8) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

// setSZP sets Sign, Zero and Parity from v; every ALU primitive that
// touches those three flags routes through here so the three always
// move together.
func (c *CPU) setSZP(v uint8) {
	c.Sign = v&0x80 != 0
	c.Zero = v == 0
	c.Parity = parity(v)
}
