/*
 * mix370 cpu package test helpers.
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
	"github.com/rcornwell/mix370/mix/word"
)

// newTestCPU returns a CPU over fresh memory and an empty device table,
// starting execution at address 0.
func newTestCPU() *CPU {
	return New(memory.New(), device.NewTable(), 0)
}

// asm packs one instruction word: a is the signed address field, i the
// index specifier, f the field spec (or device number), c the opcode.
// Mirrors demo.Build's own encode helper, reimplemented locally so the
// internal test package doesn't need to import demo.
func asm(a int, i int, f byte, c byte) word.Word {
	neg := a < 0
	mag := a
	if neg {
		mag = -mag
	}
	return word.Pack(neg, [5]byte{byte(mag >> 8), byte(mag), byte(i), f, c})
}

// step loads instr at the CPU's current PC and executes exactly one step.
func (c *CPU) loadAndStep(instr word.Word) (Status, *Trap) {
	c.Mem.Set(c.Regs.PC, instr)
	return c.Step()
}

// setWord builds a full six-byte word from a signed magnitude for test
// fixtures.
func setWord(neg bool, mag uint64) word.Word {
	return word.Word{Neg: neg, Mag: mag & word.FullWordMask}
}
