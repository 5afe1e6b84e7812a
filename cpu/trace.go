package cpu

import (
	"fmt"
	"strings"
)

// TraceLine formats the instruction about to execute (at the current
// ProgramCounter) as one line of a nestest-style conformance log:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:---,--- CYC:7
//
// It must be called before Step, since it reads but does not consume the
// upcoming instruction. The PPU dot/scanline field is a stubbed "---,---":
// this core has no PPU, so it can't report real PPU timing.
func (c *Cpu) TraceLine() string {
	pc := c.ProgramCounter
	raw, text := c.disassemble(pc)

	hexBytes := make([]string, len(raw))
	for i, b := range raw {
		hexBytes[i] = fmt.Sprintf("%02X", b)
	}
	bytesField := strings.Join(hexBytes, " ")

	return fmt.Sprintf(
		"%04X  %-8s  %-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:---,--- CYC:%d",
		pc,
		bytesField,
		text,
		c.Accumulator,
		c.X,
		c.Y,
		c.flagsByte(false),
		c.Stack,
		c.Bus.Cycles(),
	)
}
