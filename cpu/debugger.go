package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// wordsPerLine is how many memory cells renderPage prints per row.
const wordsPerLine = 8

type model struct {
	c *Computer

	offset int // first address shown by pageTable
	prevPC int
	err    error
}

// Init performs no initial command; the Computer is expected to already
// hold a loaded program and be ready to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Update steps the Computer one instruction per space/j keypress and
// quits on q or on a handler error.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.c.PC
			var err error
			if !m.c.Running {
				err = m.c.Start()
			} else {
				err = m.c.HandleNextInstruction()
			}
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one row of wordsPerLine memory cells starting at
// start, highlighting the cell at the current PC.
func (m model) renderPage(start int) string {
	s := fmt.Sprintf("%04d | ", start)
	for i := 0; i < wordsPerLine; i++ {
		w, err := m.c.Mem.Read(start + i)
		if err != nil {
			s += " ---  "
			continue
		}
		if start+i == m.c.PC {
			s += fmt.Sprintf("[%+05d] ", w.Int())
		} else {
			s += fmt.Sprintf(" %+05d  ", w.Int())
		}
	}
	return s
}

func (m model) status() string {
	running := "halted"
	if m.c.Running {
		running = "running"
	}
	return fmt.Sprintf(`
PC: %d (%d)
 A: %d
 X: %d
I1: %d  I2: %d  I3: %d
I4: %d  I5: %d  I6: %d
 J: %d
OV: %v   CMP: %s
%s
`,
		m.c.PC, m.prevPC,
		m.c.A.Int(), m.c.X.Int(),
		m.c.I1.Int(), m.c.I2.Int(), m.c.I3.Int(),
		m.c.I4.Int(), m.c.I5.Int(), m.c.I6.Int(),
		m.c.J.Int(),
		m.c.Overflow, m.c.Comparison,
		running,
	)
}

func (m model) pageTable() string {
	header := "addr | "
	for b := 0; b < wordsPerLine; b++ {
		header += fmt.Sprintf("  %d   ", b)
	}

	rows := []string{header}
	start := (m.offset / wordsPerLine) * wordsPerLine
	for i := 0; i < 5; i++ {
		rows = append(rows, m.renderPage(start+i*wordsPerLine))
	}
	return strings.Join(rows, "\n")
}

// View renders the page table and register status side by side, with a
// dump of the decoded instruction at PC beneath.
func (m model) View() string {
	decodedView := "?"
	if w, err := m.c.Mem.Read(m.c.PC); err == nil {
		if d, err := m.c.decode(w); err == nil {
			decodedView = spew.Sdump(d)
		}
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		decodedView,
	)
}

// Debug starts an interactive single-step TUI over c, which must already
// hold whatever program and initial register state the caller wants to
// observe; pageTable starts at the row of memory containing offset.
func Debug(c *Computer, offset int) error {
	final, err := tea.NewProgram(model{c: c, offset: offset}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
