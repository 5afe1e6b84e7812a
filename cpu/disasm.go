package cpu

import "fmt"

// disassemble peeks the instruction at pc (without advancing ProgramCounter
// or mutating any Cpu state) and returns its raw operand bytes and a
// formatted disassembly string in the style of nestest's reference log,
// e.g. "JMP $C5F5", "LDA $00,X", "BEQ $C6A2", "LDA $10 = F0".
//
// ZeroPage, Absolute, IndirectX and IndirectY append the current value at
// the effective address, and Indirect (JMP's only mode) appends the
// resolved jump target, honoring the page-wrap bug. The indexed modes
// (ZeroPageX/Y, AbsoluteX/Y) print only the operand, with no value suffix.
// Absolute JMP/JSR don't read the address as data, so they get no suffix.
func (c *Cpu) disassemble(pc uint16) (raw []byte, text string) {
	opByte := c.Read(pc)
	op, ok := Opcodes[opByte]
	if !ok {
		return []byte{opByte}, fmt.Sprintf(".byte $%02X", opByte)
	}

	length := 1 + op.AddressingMode.OperandLen()
	raw = make([]byte, length)
	raw[0] = opByte
	for i := byte(1); i < length; i++ {
		raw[i] = c.Read(pc + uint16(i))
	}

	controlTransfer := op.Name == "JMP" || op.Name == "JSR"

	var operand string
	switch op.AddressingMode {
	case None, Implied:
		operand = ""
	case Accumulator:
		operand = "A"
	case Immediate:
		operand = fmt.Sprintf("#$%02X", raw[1])
	case ZeroPage:
		addr := uint16(raw[1])
		operand = fmt.Sprintf("$%02X = %02X", raw[1], c.Read(addr))
	case ZeroPageX:
		operand = fmt.Sprintf("$%02X,X", raw[1])
	case ZeroPageY:
		operand = fmt.Sprintf("$%02X,Y", raw[1])
	case IndirectX:
		ptr := raw[1] + c.X
		addr := c.Bus.ReadWordZeroPage(ptr)
		operand = fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", raw[1], ptr, addr, c.Read(addr))
	case IndirectY:
		base := c.Bus.ReadWordZeroPage(raw[1])
		addr := base + uint16(c.Y)
		operand = fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", raw[1], base, addr, c.Read(addr))
	case Relative:
		target := pc + 2 + uint16(int8(raw[1]))
		operand = fmt.Sprintf("$%04X", target)
	case Absolute:
		addr := uint16(raw[2])<<8 | uint16(raw[1])
		if controlTransfer {
			operand = fmt.Sprintf("$%04X", addr)
		} else {
			operand = fmt.Sprintf("$%04X = %02X", addr, c.Read(addr))
		}
	case AbsoluteX:
		operand = fmt.Sprintf("$%04X,X", uint16(raw[2])<<8|uint16(raw[1]))
	case AbsoluteY:
		operand = fmt.Sprintf("$%04X,Y", uint16(raw[2])<<8|uint16(raw[1]))
	case Indirect:
		ptr := uint16(raw[2])<<8 | uint16(raw[1])
		lo := c.Read(ptr)
		var hi byte
		if raw[1] == 0xff {
			hi = c.Read(ptr & 0xff00)
		} else {
			hi = c.Read(ptr + 1)
		}
		target := uint16(hi)<<8 | uint16(lo)
		operand = fmt.Sprintf("($%04X) = %04X", ptr, target)
	}

	if operand == "" {
		text = op.Name
	} else {
		text = op.Name + " " + operand
	}
	return raw, text
}
