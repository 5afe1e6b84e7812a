// Package mem implements the CPU-visible address space: 2 KiB of mirrored
// RAM, stubbed PPU/APU register windows, and a cartridge reached through
// its mapper. It also owns the master cycle counter.
//
// CPU     MEM     APU     CART
//
//	|       |       |       |
//	|       |0000   |4000   |4020
//	|       |07ff   |4017   |ffff
//	|------------------------------------ CPU bus ($0000-$FFFF)
package mem

import (
	"log"

	"nescore/cartridge"
)

const ramSize = 2048 // 2 KiB, mirrored every 2 KiB up to $1FFF

// Bus decodes 16-bit CPU addresses into RAM, PPU/APU register, or
// mapper-routed reads and writes, and tallies the master cycle count.
//
// https://www.nesdev.org/wiki/CPU_memory_map
type Bus struct {
	ram       [ramSize]byte
	Cartridge *cartridge.Cartridge

	cycles uint64
}

// New builds a Bus over the given cartridge. The cycle counter starts at 7
// to match the 7-cycle cost of the power-on reset sequence, as expected by
// the nestest reference log.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{Cartridge: cart, cycles: 7}
}

// Read returns the byte at addr, routing through RAM mirroring, the
// stubbed PPU/APU windows, or the cartridge's mapper.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return b.ram[addr&0x07FF]

	case addr <= 0x3FFF:
		log.Printf("[bus] stubbed PPU register read at $%04X", addr)
		return 0

	case addr <= 0x401F:
		log.Printf("[bus] stubbed APU/IO register read at $%04X", addr)
		return 0

	case addr <= 0x5FFF:
		// expansion ROM; unmapped on this core
		return 0

	default: // $6000-$FFFF: handed to the cartridge's mapper
		// NROM and CNROM map only $8000-$FFFF (PRG-ROM); they report
		// $6000-$7FFF as unmapped, so PRG-RAM is not reachable and reads
		// there return 0.
		return b.Cartridge.CpuRead(addr)
	}
}

// Write stores value at addr, with the same routing as Read.
func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = value

	case addr <= 0x3FFF:
		log.Printf("[bus] stubbed PPU register write at $%04X = $%02X", addr, value)

	case addr <= 0x401F:
		log.Printf("[bus] stubbed APU/IO register write at $%04X = $%02X", addr, value)

	case addr <= 0x5FFF:
		// expansion ROM; unmapped on this core

	default:
		b.Cartridge.CpuWrite(addr, value)
	}
}

// ReadWord assembles a little-endian word from two sequential reads.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return lo | hi<<8
}

// ReadWordZeroPage reads a little-endian word whose high byte wraps within
// page 0: the high byte comes from addr+1 wrapped modulo 256, not addr+1
// carrying into page 1.
func (b *Bus) ReadWordZeroPage(addr byte) uint16 {
	lo := uint16(b.Read(uint16(addr)))
	hi := uint16(b.Read(uint16(addr + 1)))
	return lo | hi<<8
}

// Tick advances the master cycle counter by n.
func (b *Bus) Tick(n byte) {
	b.cycles += uint64(n)
}

// Cycles reports the current master cycle count.
func (b *Bus) Cycles() uint64 {
	return b.cycles
}
