/*
 * mix370 - MIX virtual machine emulator.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package console

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcornwell/mix370/mix/cpu"
	"github.com/rcornwell/mix370/mix/machine"
	"github.com/rcornwell/mix370/mix/word"
	"github.com/rcornwell/mix370/util/hexfmt"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	trapStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// tuiModel is a bubbletea model showing the register file, flags, and a
// page of memory around PC, stepping on space/j and quitting on q.
// Grounded on the gone emulator's debugger model.
type tuiModel struct {
	m       *machine.Machine
	trap    *cpu.Trap
	halted  bool
	quit    bool
	windowH int
}

// NewTUI returns a bubbletea program wrapping m.
func NewTUI(m *machine.Machine) *tea.Program {
	return tea.NewProgram(tuiModel{m: m})
}

func (t tuiModel) Init() tea.Cmd { return nil }

func (t tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.windowH = msg.Height
		return t, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			t.quit = true
			return t, tea.Quit
		case " ", "j":
			if !t.halted && t.trap == nil {
				status, tr := t.m.Step()
				if tr != nil {
					t.trap = tr
				} else if status == cpu.Halted {
					t.halted = true
				}
			}
			return t, nil
		}
	}
	return t, nil
}

func (t tuiModel) View() string {
	if t.quit {
		return ""
	}
	var b strings.Builder
	regs := t.m.CPU.Regs

	b.WriteString(headerStyle.Render("mix370 inspector") + "\n\n")
	fmt.Fprintf(&b, "PC=%s  A=%s  X=%s  J=%s\n",
		hexfmt.Addr(regs.PC), wordHex(regs.A), wordHex(regs.X), wordHex(regs.J))
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&b, "I%d=%s ", i, wordHex(regs.Index(i)))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "CI=%d OV=%v steps=%d\n\n", regs.CI, regs.OV, t.m.Steps())

	b.WriteString(dimStyle.Render("memory near PC:") + "\n")
	base := regs.PC - 4
	if base < 0 {
		base = 0
	}
	for addr := base; addr < base+8; addr++ {
		w, ok := t.m.Mem.Get(addr)
		if !ok {
			continue
		}
		marker := "  "
		if addr == regs.PC {
			marker = "->"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", marker, hexfmt.Addr(addr), wordHex(w))
	}

	if t.trap != nil {
		b.WriteString("\n" + trapStyle.Render(t.trap.Error()) + "\n")
	} else if t.halted {
		b.WriteString("\n" + headerStyle.Render("halted") + "\n")
	}

	b.WriteString(dimStyle.Render("\n[space/j] step   [q] quit\n"))
	return b.String()
}

func wordHex(w word.Word) string {
	sign := "+"
	if w.Neg {
		sign = "-"
	}
	return sign + hexfmt.Word(w.Mag)
}
