package cpu

// An Opcode is associated with a unique byte Value (0x00-0xff). There are
// 256 possible opcodes, but only 151 correspond to a legal Cpu instruction;
// the rest are illegal and cause Step to halt with ErrIllegalOpcode.
//
// Importantly, the Opcode carries with it information on the
// AddressingMode and number of Cycles that should elapse before the
// corresponding Instruction completes.
//
// Multiple Opcodes may execute the same Instruction, differing only in how
// the data is to be retrieved; this is handled by the Cpu, not the
// Instruction itself.
type Opcode struct {
	AddressingMode AddressingMode

	// Clock cycles required; typically 2 to 7. Longer instructions
	// require more cycles to fetch and decode memory.
	//
	// https://www.nesdev.org/wiki/Cycle_counting#Instruction_timings
	Cycles byte

	// PageCrossPenalty charges one extra cycle when the addressing mode
	// crossed a page boundary while indexing. It only applies to the
	// read-only indexed opcodes (LDA/LDX/LDY/ADC/SBC/AND/ORA/EOR/CMP in
	// AbsoluteX, AbsoluteY, IndirectY); store and read-modify-write
	// opcodes already charge the worst case unconditionally in Cycles.
	PageCrossPenalty bool

	// An Instruction usually modifies or copies register(s). Its operand
	// is passed implicitly via the M/AbsAddress fields of c, not via
	// explicit func args. With the exception of control-transfer
	// instructions, Instructions never touch ProgramCounter directly.
	//
	// The byte returned is not memory data; it's the number of extra
	// cycles beyond Cycles the instruction incurred (e.g. a branch that
	// was taken).
	Instruction func(c *Cpu) byte

	Name string // for the disassembler and debugger
}

func op(mode AddressingMode, cycles byte, penalty bool, name string, fn func(c *Cpu) byte) Opcode {
	return Opcode{AddressingMode: mode, Cycles: cycles, PageCrossPenalty: penalty, Name: name, Instruction: fn}
}

// Opcodes lists every byte value the Cpu recognizes, mapped to a legal
// instruction. Generated against http://www.6502.org/tutorials/6502opcodes.html.
var Opcodes = map[byte]Opcode{
	0x69: op(Immediate, 2, false, "ADC", (*Cpu).ADC),
	0x65: op(ZeroPage, 3, false, "ADC", (*Cpu).ADC),
	0x75: op(ZeroPageX, 4, false, "ADC", (*Cpu).ADC),
	0x6D: op(Absolute, 4, false, "ADC", (*Cpu).ADC),
	0x7D: op(AbsoluteX, 4, true, "ADC", (*Cpu).ADC),
	0x79: op(AbsoluteY, 4, true, "ADC", (*Cpu).ADC),
	0x61: op(IndirectX, 6, false, "ADC", (*Cpu).ADC),
	0x71: op(IndirectY, 5, true, "ADC", (*Cpu).ADC),

	0x29: op(Immediate, 2, false, "AND", (*Cpu).AND),
	0x25: op(ZeroPage, 3, false, "AND", (*Cpu).AND),
	0x35: op(ZeroPageX, 4, false, "AND", (*Cpu).AND),
	0x2D: op(Absolute, 4, false, "AND", (*Cpu).AND),
	0x3D: op(AbsoluteX, 4, true, "AND", (*Cpu).AND),
	0x39: op(AbsoluteY, 4, true, "AND", (*Cpu).AND),
	0x21: op(IndirectX, 6, false, "AND", (*Cpu).AND),
	0x31: op(IndirectY, 5, true, "AND", (*Cpu).AND),

	0x0A: op(Accumulator, 2, false, "ASL", (*Cpu).ASL),
	0x06: op(ZeroPage, 5, false, "ASL", (*Cpu).ASL),
	0x16: op(ZeroPageX, 6, false, "ASL", (*Cpu).ASL),
	0x0E: op(Absolute, 6, false, "ASL", (*Cpu).ASL),
	0x1E: op(AbsoluteX, 7, false, "ASL", (*Cpu).ASL),

	0x24: op(ZeroPage, 3, false, "BIT", (*Cpu).BIT),
	0x2C: op(Absolute, 4, false, "BIT", (*Cpu).BIT),

	0x00: op(Implied, 7, false, "BRK", (*Cpu).BRK),

	0xC9: op(Immediate, 2, false, "CMP", (*Cpu).CMP),
	0xC5: op(ZeroPage, 3, false, "CMP", (*Cpu).CMP),
	0xD5: op(ZeroPageX, 4, false, "CMP", (*Cpu).CMP),
	0xCD: op(Absolute, 4, false, "CMP", (*Cpu).CMP),
	0xDD: op(AbsoluteX, 4, true, "CMP", (*Cpu).CMP),
	0xD9: op(AbsoluteY, 4, true, "CMP", (*Cpu).CMP),
	0xC1: op(IndirectX, 6, false, "CMP", (*Cpu).CMP),
	0xD1: op(IndirectY, 5, true, "CMP", (*Cpu).CMP),

	0xE0: op(Immediate, 2, false, "CPX", (*Cpu).CPX),
	0xE4: op(ZeroPage, 3, false, "CPX", (*Cpu).CPX),
	0xEC: op(Absolute, 4, false, "CPX", (*Cpu).CPX),

	0xC0: op(Immediate, 2, false, "CPY", (*Cpu).CPY),
	0xC4: op(ZeroPage, 3, false, "CPY", (*Cpu).CPY),
	0xCC: op(Absolute, 4, false, "CPY", (*Cpu).CPY),

	0xC6: op(ZeroPage, 5, false, "DEC", (*Cpu).DEC),
	0xD6: op(ZeroPageX, 6, false, "DEC", (*Cpu).DEC),
	0xCE: op(Absolute, 6, false, "DEC", (*Cpu).DEC),
	0xDE: op(AbsoluteX, 7, false, "DEC", (*Cpu).DEC),

	0x49: op(Immediate, 2, false, "EOR", (*Cpu).EOR),
	0x45: op(ZeroPage, 3, false, "EOR", (*Cpu).EOR),
	0x55: op(ZeroPageX, 4, false, "EOR", (*Cpu).EOR),
	0x4D: op(Absolute, 4, false, "EOR", (*Cpu).EOR),
	0x5D: op(AbsoluteX, 4, true, "EOR", (*Cpu).EOR),
	0x59: op(AbsoluteY, 4, true, "EOR", (*Cpu).EOR),
	0x41: op(IndirectX, 6, false, "EOR", (*Cpu).EOR),
	0x51: op(IndirectY, 5, true, "EOR", (*Cpu).EOR),

	0xE6: op(ZeroPage, 5, false, "INC", (*Cpu).INC),
	0xF6: op(ZeroPageX, 6, false, "INC", (*Cpu).INC),
	0xEE: op(Absolute, 6, false, "INC", (*Cpu).INC),
	0xFE: op(AbsoluteX, 7, false, "INC", (*Cpu).INC),

	0x4C: op(Absolute, 3, false, "JMP", (*Cpu).JMP),
	0x6C: op(Indirect, 5, false, "JMP", (*Cpu).JMP),
	0x20: op(Absolute, 6, false, "JSR", (*Cpu).JSR),

	0xA9: op(Immediate, 2, false, "LDA", (*Cpu).LDA),
	0xA5: op(ZeroPage, 3, false, "LDA", (*Cpu).LDA),
	0xB5: op(ZeroPageX, 4, false, "LDA", (*Cpu).LDA),
	0xAD: op(Absolute, 4, false, "LDA", (*Cpu).LDA),
	0xBD: op(AbsoluteX, 4, true, "LDA", (*Cpu).LDA),
	0xB9: op(AbsoluteY, 4, true, "LDA", (*Cpu).LDA),
	0xA1: op(IndirectX, 6, false, "LDA", (*Cpu).LDA),
	0xB1: op(IndirectY, 5, true, "LDA", (*Cpu).LDA),

	0xA2: op(Immediate, 2, false, "LDX", (*Cpu).LDX),
	0xA6: op(ZeroPage, 3, false, "LDX", (*Cpu).LDX),
	0xB6: op(ZeroPageY, 4, false, "LDX", (*Cpu).LDX),
	0xAE: op(Absolute, 4, false, "LDX", (*Cpu).LDX),
	0xBE: op(AbsoluteY, 4, true, "LDX", (*Cpu).LDX),

	0xA0: op(Immediate, 2, false, "LDY", (*Cpu).LDY),
	0xA4: op(ZeroPage, 3, false, "LDY", (*Cpu).LDY),
	0xB4: op(ZeroPageX, 4, false, "LDY", (*Cpu).LDY),
	0xAC: op(Absolute, 4, false, "LDY", (*Cpu).LDY),
	0xBC: op(AbsoluteX, 4, true, "LDY", (*Cpu).LDY),

	0x4A: op(Accumulator, 2, false, "LSR", (*Cpu).LSR),
	0x46: op(ZeroPage, 5, false, "LSR", (*Cpu).LSR),
	0x56: op(ZeroPageX, 6, false, "LSR", (*Cpu).LSR),
	0x4E: op(Absolute, 6, false, "LSR", (*Cpu).LSR),
	0x5E: op(AbsoluteX, 7, false, "LSR", (*Cpu).LSR),

	0xEA: op(Implied, 2, false, "NOP", (*Cpu).NOP),

	0x09: op(Immediate, 2, false, "ORA", (*Cpu).ORA),
	0x05: op(ZeroPage, 3, false, "ORA", (*Cpu).ORA),
	0x15: op(ZeroPageX, 4, false, "ORA", (*Cpu).ORA),
	0x0D: op(Absolute, 4, false, "ORA", (*Cpu).ORA),
	0x1D: op(AbsoluteX, 4, true, "ORA", (*Cpu).ORA),
	0x19: op(AbsoluteY, 4, true, "ORA", (*Cpu).ORA),
	0x01: op(IndirectX, 6, false, "ORA", (*Cpu).ORA),
	0x11: op(IndirectY, 5, true, "ORA", (*Cpu).ORA),

	0x2A: op(Accumulator, 2, false, "ROL", (*Cpu).ROL),
	0x26: op(ZeroPage, 5, false, "ROL", (*Cpu).ROL),
	0x36: op(ZeroPageX, 6, false, "ROL", (*Cpu).ROL),
	0x2E: op(Absolute, 6, false, "ROL", (*Cpu).ROL),
	0x3E: op(AbsoluteX, 7, false, "ROL", (*Cpu).ROL),

	0x6A: op(Accumulator, 2, false, "ROR", (*Cpu).ROR),
	0x66: op(ZeroPage, 5, false, "ROR", (*Cpu).ROR),
	0x76: op(ZeroPageX, 6, false, "ROR", (*Cpu).ROR),
	0x6E: op(Absolute, 6, false, "ROR", (*Cpu).ROR),
	0x7E: op(AbsoluteX, 7, false, "ROR", (*Cpu).ROR),

	0x40: op(Implied, 6, false, "RTI", (*Cpu).RTI),
	0x60: op(Implied, 6, false, "RTS", (*Cpu).RTS),

	0xE9: op(Immediate, 2, false, "SBC", (*Cpu).SBC),
	0xE5: op(ZeroPage, 3, false, "SBC", (*Cpu).SBC),
	0xF5: op(ZeroPageX, 4, false, "SBC", (*Cpu).SBC),
	0xED: op(Absolute, 4, false, "SBC", (*Cpu).SBC),
	0xFD: op(AbsoluteX, 4, true, "SBC", (*Cpu).SBC),
	0xF9: op(AbsoluteY, 4, true, "SBC", (*Cpu).SBC),
	0xE1: op(IndirectX, 6, false, "SBC", (*Cpu).SBC),
	0xF1: op(IndirectY, 5, true, "SBC", (*Cpu).SBC),

	0x85: op(ZeroPage, 3, false, "STA", (*Cpu).STA),
	0x95: op(ZeroPageX, 4, false, "STA", (*Cpu).STA),
	0x8D: op(Absolute, 4, false, "STA", (*Cpu).STA),
	0x9D: op(AbsoluteX, 5, false, "STA", (*Cpu).STA),
	0x99: op(AbsoluteY, 5, false, "STA", (*Cpu).STA),
	0x81: op(IndirectX, 6, false, "STA", (*Cpu).STA),
	0x91: op(IndirectY, 6, false, "STA", (*Cpu).STA),

	0x86: op(ZeroPage, 3, false, "STX", (*Cpu).STX),
	0x96: op(ZeroPageY, 4, false, "STX", (*Cpu).STX),
	0x8E: op(Absolute, 4, false, "STX", (*Cpu).STX),

	0x84: op(ZeroPage, 3, false, "STY", (*Cpu).STY),
	0x94: op(ZeroPageX, 4, false, "STY", (*Cpu).STY),
	0x8C: op(Absolute, 4, false, "STY", (*Cpu).STY),

	0x18: op(Implied, 2, false, "CLC", (*Cpu).CLC),
	0x38: op(Implied, 2, false, "SEC", (*Cpu).SEC),
	0x58: op(Implied, 2, false, "CLI", (*Cpu).CLI),
	0x78: op(Implied, 2, false, "SEI", (*Cpu).SEI),
	0xB8: op(Implied, 2, false, "CLV", (*Cpu).CLV),
	0xD8: op(Implied, 2, false, "CLD", (*Cpu).CLD),
	0xF8: op(Implied, 2, false, "SED", (*Cpu).SED),

	0xAA: op(Implied, 2, false, "TAX", (*Cpu).TAX),
	0x8A: op(Implied, 2, false, "TXA", (*Cpu).TXA),
	0xCA: op(Implied, 2, false, "DEX", (*Cpu).DEX),
	0xE8: op(Implied, 2, false, "INX", (*Cpu).INX),
	0xA8: op(Implied, 2, false, "TAY", (*Cpu).TAY),
	0x98: op(Implied, 2, false, "TYA", (*Cpu).TYA),
	0x88: op(Implied, 2, false, "DEY", (*Cpu).DEY),
	0xC8: op(Implied, 2, false, "INY", (*Cpu).INY),

	0x10: op(Relative, 2, false, "BPL", (*Cpu).BPL),
	0x30: op(Relative, 2, false, "BMI", (*Cpu).BMI),
	0x50: op(Relative, 2, false, "BVC", (*Cpu).BVC),
	0x70: op(Relative, 2, false, "BVS", (*Cpu).BVS),
	0x90: op(Relative, 2, false, "BCC", (*Cpu).BCC),
	0xB0: op(Relative, 2, false, "BCS", (*Cpu).BCS),
	0xD0: op(Relative, 2, false, "BNE", (*Cpu).BNE),
	0xF0: op(Relative, 2, false, "BEQ", (*Cpu).BEQ),

	0x9A: op(Implied, 2, false, "TXS", (*Cpu).TXS),
	0xBA: op(Implied, 2, false, "TSX", (*Cpu).TSX),
	0x48: op(Implied, 3, false, "PHA", (*Cpu).PHA),
	0x68: op(Implied, 4, false, "PLA", (*Cpu).PLA),
	0x08: op(Implied, 3, false, "PHP", (*Cpu).PHP),
	0x28: op(Implied, 4, false, "PLP", (*Cpu).PLP),
}
