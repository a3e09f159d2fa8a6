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

import "github.com/rcornwell/mix370/mix/word"

// Register slot indices used by the 8-wide opcode families (LD*, ST*, the
// conditional jumps, INC/DEC/ENT/ENN, and CMP*): 0=A, 1..6=I1..I6, 7=X.
const (
	regA  = 0
	regX  = 7
	regI1 = 1
)

func (c *CPU) getReg(id int) word.Word {
	if id == regA {
		return c.Regs.A
	}
	if id == regX {
		return c.Regs.X
	}
	return c.Regs.Index(id)
}

func (c *CPU) setReg(id int, w word.Word) {
	switch id {
	case regA:
		c.Regs.A = w
	case regX:
		c.Regs.X = w
	default:
		c.Regs.SetIndex(id, w)
	}
}

// isWideReg reports whether id addresses a full 40-bit register (rA or rX)
// as opposed to a 16-bit index register — only the wide registers
// participate in overflow per spec.md's opcode table.
func isWideReg(id int) bool {
	return id == regA || id == regX
}
