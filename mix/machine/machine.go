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

// Package machine wires a CPU, its memory, and its device table into one
// runnable unit and drives it to completion or a trap. Grounded on the
// teacher's emu/core driver loop, but synchronous: spec.md's concurrency
// model is single-threaded, so the goroutine-plus-channel step loop the
// teacher uses to decouple the CPU from its console is replaced here by a
// plain function call per step — the console and CLI front ends call Step
// directly instead of posting to a channel.
package machine

import (
	"log/slog"

	"github.com/rcornwell/mix370/mix/cpu"
	"github.com/rcornwell/mix370/mix/device"
	"github.com/rcornwell/mix370/mix/memory"
)

// Machine is a fully wired MIX system: CPU, memory, and device table.
type Machine struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	Devices *device.Table
	log     *slog.Logger
	steps   int64
}

// New builds a Machine with mem already loaded, devices already populated,
// execution starting at start, and logger used for per-step tracing (pass
// slog.Default() or a no-op logger if tracing is unwanted).
func New(mem *memory.Memory, devices *device.Table, start int, log *slog.Logger) *Machine {
	return &Machine{
		CPU:     cpu.New(mem, devices, start),
		Mem:     mem,
		Devices: devices,
		log:     log,
	}
}

// Step executes exactly one instruction and logs its outcome at debug
// level, returning the CPU's status and any trap raised.
func (m *Machine) Step() (cpu.Status, *cpu.Trap) {
	pc := m.CPU.Regs.PC
	status, tr := m.CPU.Step()
	m.steps++
	if tr != nil {
		m.log.Error("trap", "pc", pc, "kind", tr.Kind.String(), "detail", tr.Detail)
		return status, tr
	}
	m.log.Debug("step", "pc", pc, "steps", m.steps, "status", status)
	return status, nil
}

// Run steps the machine to HLT or a trap, logging one final verdict line.
func (m *Machine) Run() *cpu.Trap {
	for {
		status, tr := m.Step()
		if tr != nil {
			return tr
		}
		if status == cpu.Halted {
			m.log.Info("halted", "pc", m.CPU.Regs.PC, "steps", m.steps)
			return nil
		}
	}
}

// Steps reports how many instructions have retired so far.
func (m *Machine) Steps() int64 { return m.steps }
