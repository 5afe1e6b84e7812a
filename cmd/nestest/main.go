// Command nestest runs an iNES ROM against this core's Cpu, printing one
// nestest-format trace line per instruction executed. Pointed at the
// nestest.nes conformance ROM with -start=0xC000 (the program counter forced
// to $C000 after reset), the
// output is meant to be diffed line-for-line against nestest's reference
// log via the trace package.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"nescore/cartridge"
	"nescore/cpu"
	"nescore/ines"
	"nescore/mem"
)

func main() {
	startAt := flag.Uint("start", 0, "force the program counter to this address instead of the reset vector (nestest's automated mode starts at $C000)")
	limit := flag.Int("limit", 10000, "maximum number of instructions to execute")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: nestest [-start=0xC000] [-limit=N] <rom.nes>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("reading rom: %v", err)
	}

	rom, err := ines.Parse(data)
	if err != nil {
		log.Fatalf("parsing rom: %v", err)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		log.Fatalf("building cartridge: %v", err)
	}

	bus := mem.New(cart)
	c := cpu.New(bus)
	c.Reset()

	if *startAt != 0 {
		c.ProgramCounter = uint16(*startAt)
	}
	c.Stack = 0xfd

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for i := 0; i < *limit; i++ {
		fmt.Fprintln(out, c.TraceLine())
		if err := c.Step(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}
	}
}
