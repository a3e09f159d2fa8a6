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

package cpu

import (
	"github.com/rcornwell/mix370/mix/device"
	"github.com/rcornwell/mix370/mix/memory"
	"github.com/rcornwell/mix370/mix/trap"
	"github.com/rcornwell/mix370/mix/word"
)

// Trap is the fatal-condition type this package raises; aliased locally so
// the opcode handler files below read naturally.
type Trap = trap.Trap

// Status is what Step returns after one instruction.
type Status int

const (
	Running Status = iota
	Halted
)

// CPU is the MIX processor: register file plus the memory and device table
// it operates on.
type CPU struct {
	Regs    *Registers
	Mem     *memory.Memory
	Devices *device.Table
	halted  bool
	table   [256]func(*CPU, Instruction) *Trap
}

// New builds a CPU wired to mem and devices, with the register file's PC
// set to start, and its dispatch table built once (self-modifying payloads
// still decode from memory fresh every fetch — only the C->handler mapping
// is precomputed, never the decoded instruction itself).
func New(mem *memory.Memory, devices *device.Table, start int) *CPU {
	c := &CPU{
		Regs:    NewRegisters(start),
		Mem:     mem,
		Devices: devices,
	}
	c.buildTable()
	return c
}

func memValid(addr int) bool { return memory.Valid(addr) }

func (c *CPU) illegal(instr Instruction) *Trap {
	return trap.New(trap.IllegalInstruction, c.Regs.PC, instr.W, "")
}

func (c *CPU) badField(_ int) *Trap {
	return trap.New(trap.BadFieldSpec, c.Regs.PC, word.Word{}, "")
}

func (c *CPU) addrOOR(addr int) *Trap {
	return trap.New(trap.AddressOutOfRange, c.Regs.PC, word.Word{}, hexAddr(addr))
}

func hexAddr(addr int) string {
	const digits = "0123456789ABCDEF"
	b := make([]byte, 4)
	for i := 3; i >= 0; i-- {
		b[i] = digits[addr&0xf]
		addr >>= 4
	}
	return string(b)
}

// Step executes exactly one instruction: fetch at PC, decode, resolve,
// dispatch, and age every device's busy timer by one step. It never caches
// the decoded instruction across calls.
func (c *CPU) Step() (Status, *Trap) {
	if c.halted {
		return Halted, nil
	}
	if !memValid(c.Regs.PC) {
		return Running, trap.New(trap.PCOutOfRange, c.Regs.PC, word.Word{}, "")
	}

	pc := c.Regs.PC
	raw, _ := c.Mem.Get(pc)
	instr := Decode(raw)
	c.Regs.PC++

	handler := c.table[instr.C]
	if handler == nil {
		tr := c.illegal(instr)
		tr.PC = pc
		return Running, tr
	}
	if tr := handler(c, instr); tr != nil {
		// Report the trap against the faulting instruction's own address
		// and word, not the already-incremented PC.
		tr.PC, tr.Instruction = pc, raw
		return Running, tr
	}
	c.Devices.TickAll()

	if c.halted {
		return Halted, nil
	}
	return Running, nil
}

// Run steps until halted or trapped.
func (c *CPU) Run() *Trap {
	for {
		status, tr := c.Step()
		if tr != nil {
			return tr
		}
		if status == Halted {
			return nil
		}
	}
}
