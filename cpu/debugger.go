package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is a bubbletea TUI that single-steps a Cpu one instruction at a
// time, showing a window of bus memory around the program counter, the
// register file, and the decoded opcode about to run. It is a diagnostic
// tool, not part of the emulated system: nothing in cpu/ depends on it.
type model struct {
	cpu *Cpu

	offset uint16 // first address shown in the page table
	prevPC uint16
	err    error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd { return nil }

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.ProgramCounter
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte page as a line, highlighting the
// current program counter if it falls inside this page.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Read(addr)
		if addr == m.cpu.ProgramCounter {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.Flags.Negative,
		m.cpu.Flags.Overflow,
		m.cpu.Flags.Unused,
		m.cpu.Flags.B,
		m.cpu.Flags.Decimal,
		m.cpu.Flags.DisableInterrupt,
		m.cpu.Flags.Zero,
		m.cpu.Flags.Carry,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 M: %02x
 A: %02x
 X: %02x
 Y: %02x
 S: %02x
CYC: %d
N V _ B D I Z C
`,
		m.cpu.ProgramCounter,
		m.prevPC,
		m.cpu.M,
		m.cpu.Accumulator,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.Stack,
		m.cpu.Bus.Cycles(),
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	lines := []string{header}
	pcPage := m.cpu.ProgramCounter &^ 0x0f
	offsets := []uint16{0x0000, 0x0010, 0x0020, m.offset, pcPage}
	for _, addr := range offsets {
		lines = append(lines, m.renderPage(addr))
	}
	return strings.Join(lines, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	op, ok := Opcodes[m.cpu.Read(m.cpu.ProgramCounter)]
	dump := "illegal opcode"
	if ok {
		dump = spew.Sdump(op)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		dump,
	)
}

// Debug starts an interactive TUI that single-steps c one instruction at a
// time on space/j, showing a memory window, register state, and the
// pending opcode. It is meant for inspecting conformance-test failures by
// hand, not for driving emulation.
func (c *Cpu) Debug() {
	m, err := tea.NewProgram(model{cpu: c, offset: c.ProgramCounter}).Run()
	if err != nil {
		panic(err)
	}
	if x := m.(model); x.err != nil {
		fmt.Println("Error:", x.err)
	}
}
