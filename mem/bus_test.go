package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nescore/cartridge"
	"nescore/ines"
)

func newTestBus(t *testing.T) *Bus {
	rom := &ines.Rom{Mapper: 0, PRGBanks: 1, PRGROM: make([]byte, 0x4000), PRGRAM: make([]byte, 0x2000)}
	cart, err := cartridge.New(rom)
	assert.NoError(t, err)
	return New(cart)
}

func TestCyclesStartAtSeven(t *testing.T) {
	b := newTestBus(t)
	assert.Equal(t, uint64(7), b.Cycles())
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x0000, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0800))
	assert.Equal(t, byte(0x42), b.Read(0x1000))
	assert.Equal(t, byte(0x42), b.Read(0x1800))
}

func TestStubbedPPURegisterReturnsZero(t *testing.T) {
	b := newTestBus(t)
	assert.Equal(t, byte(0), b.Read(0x2000))
	b.Write(0x2000, 0xFF) // must not panic
}

func TestReadWordLittleEndian(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x0010, 0xCD)
	b.Write(0x0011, 0xAB)
	assert.Equal(t, uint16(0xABCD), b.ReadWord(0x0010))
}

func TestReadWordZeroPageWraps(t *testing.T) {
	b := newTestBus(t)
	b.Write(0x00FF, 0x40)
	b.Write(0x0000, 0x80)
	assert.Equal(t, uint16(0x8040), b.ReadWordZeroPage(0xFF))
}

func TestTick(t *testing.T) {
	b := newTestBus(t)
	b.Tick(3)
	assert.Equal(t, uint64(10), b.Cycles())
}

func TestCartridgeRouting(t *testing.T) {
	b := newTestBus(t)
	b.Cartridge.PRGROM[0] = 0x4C
	assert.Equal(t, byte(0x4C), b.Read(0x8000))
}
