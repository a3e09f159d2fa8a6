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

// regFamily maps an opcode's position within an 8-wide family (A,I1..I6,X)
// to the register slot id (regsel.go's getReg/setReg numbering, which is
// the same order).
func regFamily(c byte, base byte) int {
	return int(c - base)
}

// opLoad implements LDA/LD1..LD6/LDX (C 8..15): reg <- V(M,F).
func (c *CPU) opLoad(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	v, tr := c.operand(m, instr.F)
	if tr != nil {
		return tr
	}
	c.setReg(regFamily(instr.C, 8), v)
	return nil
}

// opLoadNeg implements LDAN/LD1N..LD6N/LDXN (C 16..23): reg <- -V(M,F),
// including the flip from +0 to -0.
func (c *CPU) opLoadNeg(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	v, tr := c.operand(m, instr.F)
	if tr != nil {
		return tr
	}
	v.Neg = !v.Neg
	c.setReg(regFamily(instr.C, 16), v)
	return nil
}

// opStore implements STA/ST1..ST6/STX (C 24..31): splice reg into
// memory[M] at F.
func (c *CPU) opStore(instr Instruction) *Trap {
	return c.store(instr, c.getReg(regFamily(instr.C, 24)))
}

// opSTJ implements STJ (C 32): splice rJ into memory[M] at F.
func (c *CPU) opSTJ(instr Instruction) *Trap {
	return c.store(instr, c.Regs.J)
}

// opSTZ implements STZ (C 33): splice a zero word into memory[M] at F.
func (c *CPU) opSTZ(instr Instruction) *Trap {
	return c.store(instr, word.Zero)
}

func (c *CPU) store(instr Instruction, src word.Word) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	field, ok := word.DecodeField(instr.F)
	if !ok {
		return c.badField(m)
	}
	if !memValid(m) {
		return c.addrOOR(m)
	}
	cell, _ := c.Mem.Get(m)
	c.Mem.Set(m, word.Splice(cell, src, field))
	return nil
}
