// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES.
package cpu

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"nescore/mem"
)

// https://www.nesdev.org/wiki/CPU#Frequencies
// https://www.nesdev.org/wiki/Cycle_reference_chart#Clock_rates

// The Cpu has no memory of its own (aside from a number of small registers
// which amount to about 7 bytes). Instead, the Cpu interfaces with a Bus
// that provides memory.
type Cpu struct {
	Bus *mem.Bus

	// https://problemkaputt.de/everynes.htm#cpuregistersandflags
	// https://www.nesdev.org/wiki/CPU_ALL#CPU_2
	// https://www.nesdev.org/wiki/Status_flags#Flags

	// Flags are 8 bits that make up the status register (aka P register).
	// Unused always reads 1; B only exists in the byte a push instruction
	// assembles, never as live Cpu state.
	//
	// 7654 3210
	// NV1B DIZC
	Flags struct {
		Negative         bool // bit 7
		Overflow         bool // bit 6
		Unused           bool // bit 5; always 1
		B                bool // bit 4; only meaningful in a pushed byte
		Decimal          bool // bit 3; present but never consulted (2A03)
		DisableInterrupt bool // bit 2
		Zero             bool // bit 1
		Carry            bool // bit 0
	}

	Accumulator byte
	X           byte
	Y           byte

	// Stack instructions (PHA, PLA, PHP, PLP, JSR, RTS, BRK, RTI) always
	// access the 01 page (0x0100-0x01ff). Stack holds the low byte of
	// that address.
	Stack byte

	// ProgramCounter is a 2-byte (word) memory address that increments
	// (almost) continuously. The byte located at this address should
	// provide the Cpu with an Opcode that specifies the next instruction
	// to execute.
	ProgramCounter uint16

	M           byte   // decoded operand byte, after AddressingMode
	AbsAddress  uint16 // decoded operand address, after AddressingMode
	RelAddress  int8   // decoded branch offset, Relative mode only
	PageCrossed bool   // set by decode; consumed by the branch instructions and Step
	Cycles      byte   // total cycles charged for the most recently executed instruction

	mode      AddressingMode // addressing mode of the instruction currently executing
	opPC      uint16         // PC at which the current instruction's opcode was fetched
	halted    bool
	haltedErr error
}

// New builds a Cpu wired to bus. Callers run Reset before the first Step to
// perform the power-on sequence.
func New(bus *mem.Bus) *Cpu {
	return &Cpu{Bus: bus}
}

// Read reads one byte from addr via the Bus.
func (c *Cpu) Read(addr uint16) byte {
	return c.Bus.Read(addr)
}

// Write passes data to the Bus, which performs the write.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Bus.Write(addr, data)
}

// An AddressingMode tells the Cpu where to access (look for) a given byte of
// memory. There are 13 possible modes, plus a 14th (None) used by opcodes
// whose operand is never dereferenced, such as register transfers.
//
// Most Instructions can index the full 64 kB range of memory, that is, 256
// pages of 256 bytes. The exception is ZeroPage, which is confined to the
// first page of 256 bytes.
type AddressingMode int

// https://problemkaputt.de/everynes.htm#cpumemoryaddressing
// https://www.nesdev.org/wiki/CPU_addressing_modes

const (
	None AddressingMode = iota // no operand; e.g. TAX, INX

	Implied     // does not touch memory; e.g. CLC
	Accumulator // use Cpu.Accumulator

	Immediate // use the ProgramCounter itself
	ZeroPage  // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY // LDX, STX

	IndirectX // rarely used
	IndirectY // 3 reads, may involve page crossing
	Relative  // 3 reads

	Absolute
	AbsoluteX // may involve page crossing
	AbsoluteY // may involve page crossing

	Indirect // JMP only
)

// OperandLen reports how many bytes follow the opcode byte for this mode:
// 0 for None/Implied/Accumulator, 1 for zero-page/immediate/relative and
// IndirectX/IndirectY, 2 for the absolute forms and Indirect.
func (a AddressingMode) OperandLen() byte {
	switch a {
	case None, Implied, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}

// decode fetches a byte (or word) of data from memory, accounting for the
// addressing mode. c.ProgramCounter is advanced past the opcode's operand
// bytes. The retrieved byte is stored in c.M, and the address it came from
// in c.AbsAddress, so that the following Instruction can use either.
//
// c.PageCrossed is set if AbsoluteX, AbsoluteY, or IndirectY crossed a page
// boundary while indexing; the extra cycle this costs is applied by Step,
// except for the write/RMW opcodes that always pay it (handled by Opcode's
// Cycles, not by this flag).
func (c *Cpu) decode(a AddressingMode) {
	c.mode = a
	c.PageCrossed = false

	switch a {

	case None, Implied:
		return

	case Accumulator:
		c.M = c.Accumulator
		return

	case Immediate:
		c.AbsAddress = c.ProgramCounter
		c.ProgramCounter++

	case ZeroPage:
		c.AbsAddress = uint16(c.Read(c.ProgramCounter))
		c.ProgramCounter++

	case ZeroPageX:
		c.AbsAddress = uint16(c.Read(c.ProgramCounter) + c.X)
		c.ProgramCounter++

	case ZeroPageY:
		c.AbsAddress = uint16(c.Read(c.ProgramCounter) + c.Y)
		c.ProgramCounter++

	case Relative:
		rel := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		c.RelAddress = int8(rel)
		// the branch target is resolved relative to the PC *after* the
		// operand byte; the branch instruction itself decides whether to
		// take it and pays for the page cross.
		target := c.ProgramCounter + uint16(c.RelAddress)
		c.PageCrossed = target&0xff00 != c.ProgramCounter&0xff00
		c.AbsAddress = target
		return

	case Absolute:
		c.AbsAddress = c.Bus.ReadWord(c.ProgramCounter)
		c.ProgramCounter += 2

	case AbsoluteX:
		base := c.Bus.ReadWord(c.ProgramCounter)
		c.ProgramCounter += 2
		c.AbsAddress = base + uint16(c.X)
		c.PageCrossed = c.AbsAddress&0xff00 != base&0xff00

	case AbsoluteY:
		base := c.Bus.ReadWord(c.ProgramCounter)
		c.ProgramCounter += 2
		c.AbsAddress = base + uint16(c.Y)
		c.PageCrossed = c.AbsAddress&0xff00 != base&0xff00

	case IndirectX:
		ptr := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		c.AbsAddress = c.Bus.ReadWordZeroPage(ptr + c.X)

	case IndirectY:
		ptr := c.Read(c.ProgramCounter)
		c.ProgramCounter++
		base := c.Bus.ReadWordZeroPage(ptr)
		c.AbsAddress = base + uint16(c.Y)
		c.PageCrossed = c.AbsAddress&0xff00 != base&0xff00

	case Indirect:
		ptrLo := c.Read(c.ProgramCounter)
		ptrHi := c.Read(c.ProgramCounter + 1)
		ptr := uint16(ptrHi)<<8 | uint16(ptrLo)
		c.ProgramCounter += 2

		// bug-for-bug: if the low byte of ptr is 0xFF, the high byte of
		// the target is fetched from ptr & 0xFF00, not ptr+1, because the
		// indirection never carries out of the page.
		lo := c.Read(ptr)
		var hi byte
		if ptrLo == 0xff {
			hi = c.Read(ptr & 0xff00)
		} else {
			hi = c.Read(ptr + 1)
		}
		c.AbsAddress = uint16(hi)<<8 | uint16(lo)
		return
	}

	if a != Relative {
		c.M = c.Read(c.AbsAddress)
	}
}

// writeBack stores c.M back through the addressing mode it was decoded
// from: to the accumulator for Accumulator mode, or to memory at
// c.AbsAddress otherwise. Read-modify-write instructions (ASL, LSR, ROL,
// ROR, INC, DEC) call this after mutating c.M.
func (c *Cpu) writeBack() {
	if c.mode == Accumulator {
		c.Accumulator = c.M
		return
	}
	c.Write(c.AbsAddress, c.M)
}

// setNZ sets Zero and Negative from the low 8 bits of v, the flag update
// shared by every load, transfer, and RMW instruction.
func (c *Cpu) setNZ(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

func (c *Cpu) push(v byte) {
	c.Write(0x0100|uint16(c.Stack), v)
	c.Stack--
}

func (c *Cpu) pop() byte {
	c.Stack++
	return c.Read(0x0100 | uint16(c.Stack))
}

func (c *Cpu) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *Cpu) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | hi<<8
}

// flagsByte packs the Flags struct into a status byte, forcing Unused on.
// forceB controls bit 4: true when assembling the byte PHP or BRK push;
// false (B reads as 0) for the byte nmi/irq push and for TraceLine's P
// field. The live Flags.B is never consulted.
func (c *Cpu) flagsByte(forceB bool) byte {
	var p byte
	if c.Flags.Carry {
		p |= 1 << 0
	}
	if c.Flags.Zero {
		p |= 1 << 1
	}
	if c.Flags.DisableInterrupt {
		p |= 1 << 2
	}
	if c.Flags.Decimal {
		p |= 1 << 3
	}
	if forceB {
		p |= 1 << 4
	}
	p |= 1 << 5
	if c.Flags.Overflow {
		p |= 1 << 6
	}
	if c.Flags.Negative {
		p |= 1 << 7
	}
	return p
}

// setFlagsFromByte unpacks a status byte popped by PLP/RTI. B and Unused
// are not restored to live state: B has no live-state meaning, and Unused
// always reads 1 regardless of what bit 5 of p was.
func (c *Cpu) setFlagsFromByte(p byte) {
	c.Flags.Carry = p&(1<<0) != 0
	c.Flags.Zero = p&(1<<1) != 0
	c.Flags.DisableInterrupt = p&(1<<2) != 0
	c.Flags.Decimal = p&(1<<3) != 0
	c.Flags.Unused = true
	c.Flags.Overflow = p&(1<<6) != 0
	c.Flags.Negative = p&(1<<7) != 0
}

// fffa nmi
// fffc reset
// fffe irq

const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
)

// Reset runs the 6502 power-on/reset sequence: ProgramCounter is loaded
// from the reset vector, Stack is set to 0xfd, flags to 0x24 (Unused and
// DisableInterrupt set), and A/X/Y are zeroed. The bus cycle counter is
// left at its initialized value of 7, matching the cost of the reset
// sequence expected by the nestest reference log.
func (c *Cpu) Reset() {
	c.ProgramCounter = c.Bus.ReadWord(vectorReset)
	c.Stack = 0xfd
	c.Accumulator, c.X, c.Y = 0, 0, 0
	c.setFlagsFromByte(0x24)
	c.Cycles = 0
}

func (c *Cpu) nmi() {
	c.pushWord(c.ProgramCounter)
	c.push(c.flagsByte(false))
	c.Flags.DisableInterrupt = true
	c.ProgramCounter = c.Bus.ReadWord(vectorNMI)
	c.Cycles = 7
}

func (c *Cpu) irq() {
	if c.Flags.DisableInterrupt {
		return
	}
	c.pushWord(c.ProgramCounter)
	c.push(c.flagsByte(false))
	c.Flags.DisableInterrupt = true
	c.ProgramCounter = c.Bus.ReadWord(vectorIRQ)
	c.Cycles = 7
}

// ErrIllegalOpcode is returned by Step when the opcode table has no entry
// for the fetched byte.
type ErrIllegalOpcode struct {
	PC     uint16
	Opcode byte
	Dump   string
}

func (e *ErrIllegalOpcode) Error() string {
	return fmt.Sprintf("illegal opcode $%02X at PC=$%04X\n%s", e.Opcode, e.PC, e.Dump)
}

// Step executes exactly one instruction: fetch the opcode at ProgramCounter,
// decode its operand, run the instruction, and tick the bus by the total
// cycle cost (including any page-cross penalty the addressing mode and
// opcode both agree to charge).
//
// By the time an Instruction runs, decode has already advanced
// ProgramCounter past the opcode and its operand bytes, so a normal
// (non-control-transfer) instruction simply leaves ProgramCounter alone.
// Control-transfer instructions (JMP, JSR, RTS, RTI, BRK, and taken
// branches) overwrite ProgramCounter directly with their destination.
func (c *Cpu) Step() error {
	if c.halted {
		return c.haltedErr
	}

	c.opPC = c.ProgramCounter
	opByte := c.Read(c.ProgramCounter)
	c.ProgramCounter++

	op, ok := Opcodes[opByte]
	if !ok {
		err := &ErrIllegalOpcode{PC: c.opPC, Opcode: opByte, Dump: spew.Sdump(c)}
		c.halted = true
		c.haltedErr = err
		return err
	}

	c.decode(op.AddressingMode)
	extra := op.Instruction(c)

	c.Cycles = op.Cycles + extra
	if c.PageCrossed && op.PageCrossPenalty {
		c.Cycles++
	}
	c.Bus.Tick(c.Cycles)

	return nil
}
