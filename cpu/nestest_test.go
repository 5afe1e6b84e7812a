package cpu

import (
	"bufio"
	"os"
	"testing"

	"nescore/cartridge"
	"nescore/ines"
	"nescore/mem"
	"nescore/trace"
)

// TestNestestConformance replays nestest.nes against a reference log line
// by line, if both fixtures are present under testdata/. Neither ships
// with this repository, so this test skips rather than failing a checkout
// that doesn't happen to have them; drop nestest.nes and nestest.log (the
// well-known automated-mode log, starting at PC=$C000) into cpu/testdata/
// to exercise it.
func TestNestestConformance(t *testing.T) {
	romPath := "testdata/nestest.nes"
	logPath := "testdata/nestest.log"

	romData, err := os.ReadFile(romPath)
	if err != nil {
		t.Skipf("skipping: %s not present", romPath)
	}
	logFile, err := os.Open(logPath)
	if err != nil {
		t.Skipf("skipping: %s not present", logPath)
	}
	defer logFile.Close()

	var want []string
	scanner := bufio.NewScanner(logFile)
	for scanner.Scan() {
		want = append(want, scanner.Text())
	}

	rom, err := ines.Parse(romData)
	if err != nil {
		t.Fatalf("parsing nestest.nes: %v", err)
	}
	cart, err := cartridge.New(rom)
	if err != nil {
		t.Fatalf("building cartridge: %v", err)
	}

	bus := mem.New(cart)
	c := New(bus)
	c.Reset()
	c.ProgramCounter = 0xC000 // nestest's automated-mode entry point
	c.Stack = 0xfd

	var got []string
	for i := 0; i < len(want); i++ {
		got = append(got, c.TraceLine())
		if err := c.Step(); err != nil {
			break
		}
	}

	mismatches := trace.Diff(got, want)
	if len(mismatches) > 0 {
		t.Errorf("%d mismatches; first: %s", len(mismatches), mismatches[0])
	}
}
