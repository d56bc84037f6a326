package cpu

import "fmt"

// Step fetches, decodes, and executes one instruction and returns the
// machine cycles it consumed. It runs to completion without
// suspension; the bus calls it makes are synchronous and must not
// reenter Step.
func (c *CPU) Step() int {
	op := c.fetchByte()
	return c.execute(op)
}

// execute dispatches opcode op in the fixed priority order the 8080's
// encoding demands: an exact-match table for irregular opcodes first,
// then successively coarser masked families. All 256 opcode values
// are covered by documented behavior (including the undocumented
// aliases); the final panic is defense in depth, not a reachable path.
func (c *CPU) execute(op uint8) int {
	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38: // nop (+ 7 undocumented aliases)
		return 4

	case 0x07: // rlc
		c.RLC()
		return 4
	case 0x0F: // rrc
		c.RRC()
		return 4
	case 0x17: // ral
		c.RAL()
		return 4
	case 0x1F: // rar
		c.RAR()
		return 4

	case 0x22: // shld addr
		addr := c.bus.ReadWord(c.PC)
		c.PC += 2
		c.bus.WriteWord(addr, c.HL())
		return 16
	case 0x27: // daa
		c.DAA()
		return 4
	case 0x2A: // lhld addr
		addr := c.bus.ReadWord(c.PC)
		c.PC += 2
		c.SetHL(c.bus.ReadWord(addr))
		return 16
	case 0x2F: // cma
		c.A = ^c.A
		return 4
	case 0x32: // sta addr
		addr := c.bus.ReadWord(c.PC)
		c.PC += 2
		c.bus.WriteByte(addr, c.A)
		return 13
	case 0x34: // inr m
		c.bus.WriteByte(c.HL(), c.inr(c.bus.ReadByte(c.HL())))
		return 10
	case 0x35: // dcr m
		c.bus.WriteByte(c.HL(), c.dcr(c.bus.ReadByte(c.HL())))
		return 10
	case 0x36: // mvi m,d8
		c.bus.WriteByte(c.HL(), c.fetchByte())
		return 10
	case 0x37: // stc
		c.Carry = true
		return 4
	case 0x3A: // lda addr
		addr := c.bus.ReadWord(c.PC)
		c.PC += 2
		c.A = c.bus.ReadByte(addr)
		return 13
	case 0x3F: // cmc
		c.Carry = !c.Carry
		return 4

	case 0x76: // hlt: rewind PC so the next Step refetches it
		c.PC--
		return 4

	case 0x86: // add m
		c.ADD(c.bus.ReadByte(c.HL()))
		return 7
	case 0x8E: // adc m
		c.ADC(c.bus.ReadByte(c.HL()))
		return 7
	case 0x96: // sub m
		c.SUB(c.bus.ReadByte(c.HL()))
		return 7
	case 0x9E: // sbb m
		c.SBB(c.bus.ReadByte(c.HL()))
		return 7
	case 0xA6: // ana m
		c.ANA(c.bus.ReadByte(c.HL()))
		return 7
	case 0xAE: // xra m
		c.XRA(c.bus.ReadByte(c.HL()))
		return 7
	case 0xB6: // ora m
		c.ORA(c.bus.ReadByte(c.HL()))
		return 7
	case 0xBE: // cmp m
		c.CMP(c.bus.ReadByte(c.HL()))
		return 7

	case 0xC3, 0xCB: // jmp addr (+ undocumented alias)
		c.PC = c.bus.ReadWord(c.PC)
		return 10
	case 0xC6: // adi d8
		c.ADD(c.fetchByte())
		return 7
	case 0xC9, 0xD9: // ret (+ undocumented alias)
		c.ret()
		return 10
	case 0xCD, 0xDD, 0xED, 0xFD: // call addr (+ 3 undocumented aliases)
		target := c.bus.ReadWord(c.PC)
		returnAddr := c.PC + 2
		c.PC = target
		c.push(returnAddr)
		return 17
	case 0xCE: // aci d8
		c.ADC(c.fetchByte())
		return 7
	case 0xD3: // out port8
		c.bus.Out(c.fetchByte(), c.A)
		return 10
	case 0xD6: // sui d8
		c.SUB(c.fetchByte())
		return 7
	case 0xDB: // in port8
		c.A = c.bus.In(c.fetchByte())
		return 10
	case 0xDE: // sbi d8
		c.SBB(c.fetchByte())
		return 7
	case 0xE3: // xthl
		word := c.bus.ReadWord(c.SP)
		c.bus.WriteWord(c.SP, c.HL())
		c.SetHL(word)
		return 18
	case 0xE6: // ani d8
		c.ANA(c.fetchByte())
		return 7
	case 0xE9: // pchl
		c.PC = c.HL()
		return 5
	case 0xEB: // xchg
		c.D, c.H = c.H, c.D
		c.E, c.L = c.L, c.E
		return 4
	case 0xEE: // xri d8
		c.XRA(c.fetchByte())
		return 7
	case 0xF1: // pop psw
		c.SetAF(c.pop())
		return 10
	case 0xF3: // di
		c.di()
		return 4
	case 0xF5: // push psw
		c.push(c.AF())
		return 11
	case 0xF6: // ori d8
		c.ORA(c.fetchByte())
		return 7
	case 0xF9: // sphl
		c.SP = c.HL()
		return 5
	case 0xFB: // ei
		c.ei()
		return 4
	case 0xFE: // cpi d8
		c.CMP(c.fetchByte())
		return 7
	}

	if cycles, ok := c.execAluFamily(op); ok {
		return cycles
	}
	if cycles, ok := c.execCondFamily(op); ok {
		return cycles
	}
	if cycles, ok := c.execPairFamily(op); ok {
		return cycles
	}
	if cycles, ok := c.execMovFamily(op); ok {
		return cycles
	}

	panic(fmt.Sprintf("cpu: unreachable opcode 0x%02X", op))
}

// execAluFamily handles ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP against a
// register (opcode & 0b11111000). The HL-indirect forms (src==6) are
// always intercepted by the exact-match table above, so every opcode
// reaching here costs 4 cycles.
func (c *CPU) execAluFamily(op uint8) (int, bool) {
	src := op & 0x07
	switch op & 0xF8 {
	case 0x80:
		c.ADD(c.readReg(src))
	case 0x88:
		c.ADC(c.readReg(src))
	case 0x90:
		c.SUB(c.readReg(src))
	case 0x98:
		c.SBB(c.readReg(src))
	case 0xA0:
		c.ANA(c.readReg(src))
	case 0xA8:
		c.XRA(c.readReg(src))
	case 0xB0:
		c.ORA(c.readReg(src))
	case 0xB8:
		c.CMP(c.readReg(src))
	default:
		return 0, false
	}
	return 4, true
}

// execCondFamily handles RST, conditional CALL/JMP/RET, and the
// single-register MVI/DCR/INR (opcode & 0b11000111). The
// HL-indirect forms of MVI/DCR/INR (0x36/0x35/0x34) are always
// intercepted by the exact-match table, so dest here is never 6.
func (c *CPU) execCondFamily(op uint8) (int, bool) {
	switch op & 0xC7 {
	case 0xC7: // rst n
		c.rst((op >> 3) & 0x07)
		return 11, true
	case 0xC4: // Ccc addr
		target := c.bus.ReadWord(c.PC)
		if c.condition((op >> 3) & 0x07) {
			returnAddr := c.PC + 2
			c.PC = target
			c.push(returnAddr)
			return 17, true
		}
		c.PC += 2
		return 11, true
	case 0xC2: // Jcc addr
		target := c.bus.ReadWord(c.PC)
		c.PC += 2
		if c.condition((op >> 3) & 0x07) {
			c.PC = target
		}
		return 10, true
	case 0xC0: // Rcc
		if c.condition((op >> 3) & 0x07) {
			c.ret()
			return 11, true
		}
		return 5, true
	case 0x06: // mvi r,d8
		dest := (op >> 3) & 0x07
		c.writeReg(dest, c.fetchByte())
		return 7, true
	case 0x05: // dcr r
		dest := (op >> 3) & 0x07
		c.writeReg(dest, c.dcr(c.readReg(dest)))
		return 5, true
	case 0x04: // inr r
		dest := (op >> 3) & 0x07
		c.writeReg(dest, c.inr(c.readReg(dest)))
		return 5, true
	}
	return 0, false
}

// execPairFamily handles PUSH/POP/DCX/LDAX/DAD/INX/STAX/LXI (opcode &
// 0b11001111). PUSH PSW and POP PSW (rp would be 3) are always
// intercepted by the exact-match table, as are the rp=2,3 aliases of
// LDAX/STAX (0x2A/0x3A and 0x22/0x32 decode as LHLD/LDA/SHLD/STA
// instead) — only rp∈{BC,DE} ever reaches LDAX/STAX here.
func (c *CPU) execPairFamily(op uint8) (int, bool) {
	rp := (op >> 4) & 0x03
	switch op & 0xCF {
	case 0xC5: // push rp
		c.push(c.readPairPSW(rp))
		return 11, true
	case 0xC1: // pop rp
		c.writePairPSW(rp, c.pop())
		return 11, true
	case 0x0B: // dcx rp
		c.writePair(rp, c.readPair(rp)-1)
		return 5, true
	case 0x0A: // ldax rp
		c.A = c.bus.ReadByte(c.readPair(rp))
		return 7, true
	case 0x09: // dad rp
		c.DAD(c.readPair(rp))
		return 10, true
	case 0x03: // inx rp
		c.writePair(rp, c.readPair(rp)+1)
		return 5, true
	case 0x02: // stax rp
		c.bus.WriteByte(c.readPair(rp), c.A)
		return 7, true
	case 0x01: // lxi rp,d16
		c.writePair(rp, c.bus.ReadWord(c.PC))
		c.PC += 2
		return 10, true
	}
	return 0, false
}

// execMovFamily handles MOV d,s (opcode & 0b11000000 == 0b01000000).
// MOV M,M (0x76) is HLT and is always intercepted by the exact-match
// table, so it never reaches here.
func (c *CPU) execMovFamily(op uint8) (int, bool) {
	if op&0xC0 != 0x40 {
		return 0, false
	}
	dest := (op >> 3) & 0x07
	src := op & 0x07
	c.writeReg(dest, c.readReg(src))
	if dest == 6 || src == 6 {
		return 7, true
	}
	return 5, true
}
