package cpu

// This file is the ALU kernel: every primitive reads/writes A and the
// logical flags directly on the CPU, factored the way the Design
// Notes ask — an inline function over (state, operand), rather than
// the macro-shared body the C original uses to the same end.

func (c *CPU) add(v, carryIn uint8) {
	a := c.A
	sum := uint16(a) + uint16(v) + uint16(carryIn)
	res := uint8(sum)
	c.A = res
	c.setSZP(res)
	c.HalfCarry = halfCarryAddTable[halfCarryIndex(a, v, res)]
	c.Carry = sum >= 0x100
}

// ADD adds v into A.
func (c *CPU) ADD(v uint8) { c.add(v, 0) }

// ADC adds v and the incoming carry into A.
func (c *CPU) ADC(v uint8) {
	var carryIn uint8
	if c.Carry {
		carryIn = 1
	}
	c.add(v, carryIn)
}

func (c *CPU) sub(v, borrowIn uint8, store bool) {
	a := c.A
	diff := int(a) - int(v) - int(borrowIn)
	res := uint8(diff)
	if store {
		c.A = res
	}
	c.setSZP(res)
	c.HalfCarry = !halfCarrySubTable[halfCarryIndex(a, v, res)]
	c.Carry = diff < 0
}

// SUB subtracts v from A.
func (c *CPU) SUB(v uint8) { c.sub(v, 0, true) }

// SBB subtracts v and the incoming borrow from A.
func (c *CPU) SBB(v uint8) {
	var borrowIn uint8
	if c.Carry {
		borrowIn = 1
	}
	c.sub(v, borrowIn, true)
}

// CMP behaves like SUB but leaves A unchanged; only the flags reflect
// the hypothetical A-v.
func (c *CPU) CMP(v uint8) { c.sub(v, 0, false) }

// ANA ANDs v into A. The half-carry quirk (set iff (A|v) has bit 3
// set, not forced to 1) is a documented 8080 oddity, not an omission.
func (c *CPU) ANA(v uint8) {
	c.HalfCarry = (c.A|v)&0x08 != 0
	c.A &= v
	c.setSZP(c.A)
	c.Carry = false
}

// XRA XORs v into A.
func (c *CPU) XRA(v uint8) {
	c.A ^= v
	c.setSZP(c.A)
	c.HalfCarry = false
	c.Carry = false
}

// ORA ORs v into A.
func (c *CPU) ORA(v uint8) {
	c.A |= v
	c.setSZP(c.A)
	c.HalfCarry = false
	c.Carry = false
}

// inr increments v, a register or the HL-indirect byte. Carry is
// unaffected — the caller retains it.
func (c *CPU) inr(v uint8) uint8 {
	res := v + 1
	c.setSZP(res)
	c.HalfCarry = res&0x0F == 0
	return res
}

// dcr decrements v. Carry is unaffected.
func (c *CPU) dcr(v uint8) uint8 {
	res := v - 1
	c.setSZP(res)
	c.HalfCarry = res&0x0F != 0x0F
	return res
}

// DAD adds v to HL. Only Carry is affected.
func (c *CPU) DAD(v uint16) {
	sum := uint32(c.HL()) + uint32(v)
	c.SetHL(uint16(sum))
	c.Carry = sum >= 0x10000
}

// DAA decimal-adjusts A after a BCD addition.
func (c *CPU) DAA() {
	a := c.A
	var adjust uint8
	carry := c.Carry
	if c.HalfCarry || (a&0x0F) > 9 {
		adjust |= 0x06
	}
	if c.Carry || (a>>4) > 9 || ((a>>4) >= 9 && (a&0x0F) > 9) {
		adjust |= 0x60
		carry = true
	}
	c.ADD(adjust) // updates S,Z,H,P; its own Carry is overwritten below.
	c.Carry = carry
}

// RLC rotates A left by one bit; the outgoing bit 7 becomes both the
// new bit 0 and the new Carry.
func (c *CPU) RLC() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.Carry = carry
}

// RRC rotates A right by one bit; the outgoing bit 0 becomes both the
// new bit 7 and the new Carry.
func (c *CPU) RRC() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.Carry = carry
}

// RAL rotates A left through Carry (a 9-bit rotate).
func (c *CPU) RAL() {
	var carryIn uint8
	if c.Carry {
		carryIn = 1
	}
	carryOut := c.A&0x80 != 0
	c.A = c.A<<1 | carryIn
	c.Carry = carryOut
}

// RAR rotates A right through Carry (a 9-bit rotate).
func (c *CPU) RAR() {
	var carryIn uint8
	if c.Carry {
		carryIn = 1
	}
	carryOut := c.A&0x01 != 0
	c.A = c.A>>1 | carryIn<<7
	c.Carry = carryOut
}
