package cpu

// https://www.nesdev.org/obelisk-6502-guide/reference.html

// branch is the shared body of all eight conditional branches: if take,
// jump to the address decode already resolved into c.AbsAddress and
// charge 1 cycle, plus 1 more if that target crossed a page boundary.
func (c *Cpu) branch(take bool) byte {
	if !take {
		return 0
	}
	extra := byte(1)
	if c.PageCrossed {
		extra++
	}
	c.ProgramCounter = c.AbsAddress
	return extra
}

// ADC - Add with Carry
func (c *Cpu) ADC() byte {
	a := c.Accumulator
	m := c.M
	var carry byte
	if c.Flags.Carry {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + uint16(carry)

	c.Flags.Carry = sum > 0xff
	result := byte(sum)
	// overflow: operands share a sign and the result's sign differs from it
	c.Flags.Overflow = (a^result)&(m^result)&0x80 != 0
	c.Accumulator = result
	c.setNZ(result)
	return 0
}

// AND - Logical AND
func (c *Cpu) AND() byte {
	c.Accumulator &= c.M
	c.setNZ(c.Accumulator)
	return 0
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL() byte {
	c.Flags.Carry = c.M&0x80 != 0
	c.M <<= 1
	c.setNZ(c.M)
	c.writeBack()
	return 0
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC() byte { return c.branch(!c.Flags.Carry) }

// BCS - Branch if Carry Set
func (c *Cpu) BCS() byte { return c.branch(c.Flags.Carry) }

// BEQ - Branch if Equal
func (c *Cpu) BEQ() byte { return c.branch(c.Flags.Zero) }

// BIT - Bit Test
func (c *Cpu) BIT() byte {
	c.Flags.Zero = c.Accumulator&c.M == 0
	c.Flags.Overflow = c.M&0x40 != 0
	c.Flags.Negative = c.M&0x80 != 0
	return 0
}

// BMI - Branch if Minus
func (c *Cpu) BMI() byte { return c.branch(c.Flags.Negative) }

// BNE - Branch if Not Equal
func (c *Cpu) BNE() byte { return c.branch(!c.Flags.Zero) }

// BPL - Branch if Positive
func (c *Cpu) BPL() byte { return c.branch(!c.Flags.Negative) }

// BRK - Force Interrupt
//
// BRK is a 2-byte instruction: the byte after the opcode is a padding byte
// skipped by the return address RTI will later pop. The pushed status byte
// has B forced on, distinguishing a software break from a hardware IRQ in
// the handler; the live Flags.B is never touched.
func (c *Cpu) BRK() byte {
	c.ProgramCounter++ // skip the padding byte
	c.pushWord(c.ProgramCounter)
	c.push(c.flagsByte(true))
	c.Flags.DisableInterrupt = true
	c.ProgramCounter = c.Bus.ReadWord(vectorIRQ)
	return 0
}

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC() byte { return c.branch(!c.Flags.Overflow) }

// BVS - Branch if Overflow Set
func (c *Cpu) BVS() byte { return c.branch(c.Flags.Overflow) }

// CLC - Clear Carry Flag
func (c *Cpu) CLC() byte { c.Flags.Carry = false; return 0 }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD() byte { c.Flags.Decimal = false; return 0 }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI() byte { c.Flags.DisableInterrupt = false; return 0 }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV() byte { c.Flags.Overflow = false; return 0 }

func (c *Cpu) compare(reg byte) {
	c.Flags.Carry = reg >= c.M
	c.Flags.Zero = reg == c.M
	c.Flags.Negative = (reg-c.M)&0x80 != 0
}

// CMP - Compare Accumulator
func (c *Cpu) CMP() byte { c.compare(c.Accumulator); return 0 }

// CPX - Compare X Register
func (c *Cpu) CPX() byte { c.compare(c.X); return 0 }

// CPY - Compare Y Register
func (c *Cpu) CPY() byte { c.compare(c.Y); return 0 }

// DEC - Decrement Memory
func (c *Cpu) DEC() byte {
	c.M--
	c.setNZ(c.M)
	c.writeBack()
	return 0
}

// DEX - Decrement X Register
func (c *Cpu) DEX() byte { c.X--; c.setNZ(c.X); return 0 }

// DEY - Decrement Y Register
func (c *Cpu) DEY() byte { c.Y--; c.setNZ(c.Y); return 0 }

// EOR - Exclusive OR
func (c *Cpu) EOR() byte {
	c.Accumulator ^= c.M
	c.setNZ(c.Accumulator)
	return 0
}

// INC - Increment Memory
func (c *Cpu) INC() byte {
	c.M++
	c.setNZ(c.M)
	c.writeBack()
	return 0
}

// INX - Increment X Register
func (c *Cpu) INX() byte { c.X++; c.setNZ(c.X); return 0 }

// INY - Increment Y Register
func (c *Cpu) INY() byte { c.Y++; c.setNZ(c.Y); return 0 }

// JMP - Jump
func (c *Cpu) JMP() byte {
	c.ProgramCounter = c.AbsAddress
	return 0
}

// JSR - Jump to Subroutine
//
// JSR pushes the address of its own last byte (not the address of the next
// instruction); RTS corrects for this by adding 1 after popping.
func (c *Cpu) JSR() byte {
	c.pushWord(c.ProgramCounter - 1)
	c.ProgramCounter = c.AbsAddress
	return 0
}

// LDA - Load Accumulator
func (c *Cpu) LDA() byte {
	c.Accumulator = c.M
	c.setNZ(c.Accumulator)
	return 0
}

// LDX - Load X Register
func (c *Cpu) LDX() byte {
	c.X = c.M
	c.setNZ(c.X)
	return 0
}

// LDY - Load Y Register
func (c *Cpu) LDY() byte {
	c.Y = c.M
	c.setNZ(c.Y)
	return 0
}

// LSR - Logical Shift Right
func (c *Cpu) LSR() byte {
	c.Flags.Carry = c.M&0x01 != 0
	c.M >>= 1
	c.setNZ(c.M)
	c.writeBack()
	return 0
}

// NOP - No Operation
func (c *Cpu) NOP() byte { return 0 }

// ORA - Logical Inclusive OR
func (c *Cpu) ORA() byte {
	c.Accumulator |= c.M
	c.setNZ(c.Accumulator)
	return 0
}

// PHA - Push Accumulator
func (c *Cpu) PHA() byte { c.push(c.Accumulator); return 0 }

// PHP - Push Processor Status
//
// The byte PHP pushes always has B and Unused set, regardless of live
// Cpu state; this never mutates Flags.B itself.
func (c *Cpu) PHP() byte { c.push(c.flagsByte(true)); return 0 }

// PLA - Pull Accumulator
func (c *Cpu) PLA() byte {
	c.Accumulator = c.pop()
	c.setNZ(c.Accumulator)
	return 0
}

// PLP - Pull Processor Status
func (c *Cpu) PLP() byte {
	c.setFlagsFromByte(c.pop())
	return 0
}

// ROL - Rotate Left
func (c *Cpu) ROL() byte {
	oldCarry := c.Flags.Carry
	c.Flags.Carry = c.M&0x80 != 0
	c.M <<= 1
	if oldCarry {
		c.M |= 0x01
	}
	c.setNZ(c.M)
	c.writeBack()
	return 0
}

// ROR - Rotate Right
func (c *Cpu) ROR() byte {
	oldCarry := c.Flags.Carry
	c.Flags.Carry = c.M&0x01 != 0
	c.M >>= 1
	if oldCarry {
		c.M |= 0x80
	}
	c.setNZ(c.M)
	c.writeBack()
	return 0
}

// RTI - Return from Interrupt
func (c *Cpu) RTI() byte {
	c.setFlagsFromByte(c.pop())
	c.ProgramCounter = c.popWord()
	return 0
}

// RTS - Return from Subroutine
func (c *Cpu) RTS() byte {
	c.ProgramCounter = c.popWord() + 1
	return 0
}

// SBC - Subtract with Carry
//
// Implemented as ADC of the one's complement of the operand, which is the
// standard way to get borrow/overflow right without a second code path.
func (c *Cpu) SBC() byte {
	c.M = ^c.M
	return c.ADC()
}

// SEC - Set Carry Flag
func (c *Cpu) SEC() byte { c.Flags.Carry = true; return 0 }

// SED - Set Decimal Flag
func (c *Cpu) SED() byte { c.Flags.Decimal = true; return 0 }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI() byte { c.Flags.DisableInterrupt = true; return 0 }

// STA - Store Accumulator
func (c *Cpu) STA() byte { c.Write(c.AbsAddress, c.Accumulator); return 0 }

// STX - Store X Register
func (c *Cpu) STX() byte { c.Write(c.AbsAddress, c.X); return 0 }

// STY - Store Y Register
func (c *Cpu) STY() byte { c.Write(c.AbsAddress, c.Y); return 0 }

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX() byte { c.X = c.Accumulator; c.setNZ(c.X); return 0 }

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY() byte { c.Y = c.Accumulator; c.setNZ(c.Y); return 0 }

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX() byte { c.X = c.Stack; c.setNZ(c.X); return 0 }

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA() byte { c.Accumulator = c.X; c.setNZ(c.Accumulator); return 0 }

// TXS - Transfer X to Stack Pointer
//
// Unlike the other transfers, TXS does not touch Zero or Negative: the
// stack pointer isn't a value-bearing register.
func (c *Cpu) TXS() byte { c.Stack = c.X; return 0 }

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA() byte { c.Accumulator = c.Y; c.setNZ(c.Accumulator); return 0 }
