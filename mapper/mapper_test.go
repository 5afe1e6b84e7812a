package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNROMMaskSingleBank(t *testing.T) {
	m := &NROM{PrgBanks: 1}
	assert.Equal(t, 0, m.CpuRead(0x8000).Offset)
	assert.Equal(t, 0, m.CpuRead(0xC000).Offset)
}

func TestNROMMaskDoubleBank(t *testing.T) {
	m := &NROM{PrgBanks: 2}
	assert.Equal(t, 0, m.CpuRead(0x8000).Offset)
	assert.Equal(t, 0x4000, m.CpuRead(0xC000).Offset)
}

func TestNROMWriteIsHandled(t *testing.T) {
	m := &NROM{PrgBanks: 1}
	r := m.CpuWrite(0x8000, 0xFF)
	assert.Equal(t, Handled, r.Kind)
}

func TestNROMBelowCartSpaceUnmapped(t *testing.T) {
	m := &NROM{PrgBanks: 1}
	assert.Equal(t, Unmapped, m.CpuRead(0x6000).Kind)
}

func TestNROMChrPassthrough(t *testing.T) {
	m := &NROM{PrgBanks: 1}
	r := m.PpuRead(0x0123)
	assert.Equal(t, ChrRom, r.Kind)
	assert.Equal(t, 0x0123, r.Offset)
}

func TestCNROMLatchesBank(t *testing.T) {
	m := &CNROM{PrgBanks: 1}
	r := m.CpuWrite(0x8000, 0b11111101) // low 2 bits -> 1
	assert.Equal(t, Handled, r.Kind)

	chr := m.PpuRead(0x0010)
	assert.Equal(t, ChrRom, chr.Kind)
	assert.Equal(t, 0x2000+0x0010, chr.Offset)
}

func TestCNROMDefaultBankZero(t *testing.T) {
	m := &CNROM{PrgBanks: 1}
	chr := m.PpuRead(0x0010)
	assert.Equal(t, 0x0010, chr.Offset)
}
