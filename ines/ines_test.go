package ines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func header(prgBanks, chrBanks, flags6, flags7, prgRAM byte) []byte {
	h := make([]byte, 16)
	copy(h, []byte("NES\x1A"))
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	h[8] = prgRAM
	return h
}

func TestParseBadSignature(t *testing.T) {
	_, err := Parse([]byte("NOT A ROM"))
	assert.True(t, errors.Is(err, ErrBadSignature))
}

func TestParseTruncatedHeader(t *testing.T) {
	_, err := Parse([]byte{0x4E, 0x45})
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
}

func TestParseNROM(t *testing.T) {
	data := header(1, 1, 0, 0, 0)
	data = append(data, make([]byte, prgBankSize)...)
	data = append(data, make([]byte, chrBankSize)...)

	rom, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, 1, rom.PRGBanks)
	assert.Equal(t, 1, rom.CHRBanks)
	assert.Equal(t, Horizontal, rom.Mirroring)
	assert.Equal(t, uint8(0), rom.Mapper)
	assert.Len(t, rom.PRGROM, prgBankSize)
	assert.Len(t, rom.CHRROM, chrBankSize)
	assert.Len(t, rom.PRGRAM, chrBankSize) // prg_ram_size==0 treated as 1 unit
	assert.Nil(t, rom.Trainer)
}

func TestParseMapperNumber(t *testing.T) {
	// mapper 3 = CNROM: low nibble in flags6 bits 4-7, high nibble in flags7 bits 4-7
	data := header(1, 1, 0x30, 0x00, 0)
	data = append(data, make([]byte, prgBankSize)...)
	data = append(data, make([]byte, chrBankSize)...)

	rom, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, uint8(3), rom.Mapper)
}

func TestParseVerticalMirroring(t *testing.T) {
	data := header(1, 1, 0x01, 0, 0)
	data = append(data, make([]byte, prgBankSize)...)
	data = append(data, make([]byte, chrBankSize)...)

	rom, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, Vertical, rom.Mirroring)
}

func TestParseFourScreenOverridesMirroring(t *testing.T) {
	data := header(1, 1, 0x09, 0, 0) // bit3 (four-screen) + bit0 (vertical)
	data = append(data, make([]byte, prgBankSize)...)
	data = append(data, make([]byte, chrBankSize)...)

	rom, err := Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, FourScreen, rom.Mirroring)
}

func TestParseTrainer(t *testing.T) {
	data := header(1, 0, 0x04, 0, 0) // bit2 trainer present
	data = append(data, make([]byte, trainerSize)...)
	data = append(data, make([]byte, prgBankSize)...)

	rom, err := Parse(data)
	assert.NoError(t, err)
	assert.Len(t, rom.Trainer, trainerSize)
	assert.Empty(t, rom.CHRROM)
}

func TestParseTruncatedPRG(t *testing.T) {
	data := header(2, 0, 0, 0, 0)
	data = append(data, make([]byte, prgBankSize)...) // only 1 bank, header claims 2
	_, err := Parse(data)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
}

func TestParsePRGRAMSize(t *testing.T) {
	data := header(1, 1, 0, 0, 2)
	data = append(data, make([]byte, prgBankSize)...)
	data = append(data, make([]byte, chrBankSize)...)

	rom, err := Parse(data)
	assert.NoError(t, err)
	assert.Len(t, rom.PRGRAM, 2*chrBankSize)
}
