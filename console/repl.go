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

// Package console provides two optional interactive front ends for a
// machine.Machine: a liner-backed line REPL and a bubbletea full-screen
// inspector. Neither changes VM semantics; both only call Machine.Step and
// Machine.Run. Grounded on the teacher's command/reader console, rehomed
// from System/370's command language to a five-command MIX debugger.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"

	"github.com/rcornwell/mix370/mix/cpu"
	"github.com/rcornwell/mix370/mix/memory"
	"github.com/rcornwell/mix370/mix/word"
	"github.com/rcornwell/mix370/mix/machine"
)

// REPL is the line-oriented debugger: step, regs, mem <addr>, cont, quit.
type REPL struct {
	m   *machine.Machine
	out io.Writer
}

// NewREPL wraps m for interactive stepping, writing prompts and output to
// out.
func NewREPL(m *machine.Machine, out io.Writer) *REPL {
	return &REPL{m: m, out: out}
}

// Run drives the prompt loop until the user quits, the machine halts, or it
// traps. It returns the trap, if any, so the caller can report it the same
// way the headless driver does.
func (r *REPL) Run() *cpu.Trap {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("mix> ")
		if err != nil {
			return nil
		}
		line.AppendHistory(input)

		cmd := strings.Fields(strings.TrimSpace(input))
		if len(cmd) == 0 {
			continue
		}

		switch cmd[0] {
		case "step", "s":
			status, tr := r.m.Step()
			if tr != nil {
				fmt.Fprintln(r.out, tr.Error())
				return tr
			}
			if status == cpu.Halted {
				fmt.Fprintln(r.out, "halted")
				return nil
			}
		case "regs", "r":
			r.dumpRegs()
		case "mem", "m":
			if len(cmd) < 2 {
				fmt.Fprintln(r.out, "usage: mem <addr>")
				continue
			}
			r.dumpMem(cmd[1])
		case "cont", "c":
			if tr := r.m.Run(); tr != nil {
				fmt.Fprintln(r.out, tr.Error())
				return tr
			}
			fmt.Fprintln(r.out, "halted")
			return nil
		case "quit", "q":
			return nil
		default:
			fmt.Fprintf(r.out, "unknown command %q (step|regs|mem <addr>|cont|quit)\n", cmd[0])
		}
	}
}

func (r *REPL) dumpRegs() {
	regs := r.m.CPU.Regs
	spew.Fdump(r.out, struct {
		A, X       word.Word
		I1, I2, I3 word.Word
		I4, I5, I6 word.Word
		J          word.Word
		CI         cpu.Indicator
		OV         bool
		PC         int
	}{
		regs.A, regs.X,
		regs.Index(1), regs.Index(2), regs.Index(3),
		regs.Index(4), regs.Index(5), regs.Index(6),
		regs.J, regs.CI, regs.OV, regs.PC,
	})
}

func (r *REPL) dumpMem(arg string) {
	addr, err := strconv.Atoi(arg)
	if err != nil || !memory.Valid(addr) {
		fmt.Fprintf(r.out, "invalid address %q\n", arg)
		return
	}
	w, _ := r.m.Mem.Get(addr)
	spew.Fdump(r.out, w)
}
