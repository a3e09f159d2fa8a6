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

// opRegOp dispatches opcodes 48..55 (INCA/DECA/ENTA/ENNA and the same
// family for I1..I6 and X) by F: 0 INC, 1 DEC, 2 ENT, 3 ENN.
func (c *CPU) opRegOp(instr Instruction) *Trap {
	reg := regFamily(instr.C, 48)

	switch instr.F {
	case 0:
		return c.incDec(instr, reg, 1)
	case 1:
		return c.incDec(instr, reg, -1)
	case 2:
		return c.enter(instr, reg, false)
	case 3:
		return c.enter(instr, reg, true)
	default:
		return c.illegal(instr)
	}
}

// incDec implements INC/DEC: reg <- reg + sign*M. Overflow is only tracked
// for rA and rX, per spec.md's opcode table; index registers silently wrap
// to their 16-bit range via SetIndex's clamp.
func (c *CPU) incDec(instr Instruction, reg int, sign int64) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}

	cur := word.ToSigned(c.getReg(reg))
	mask := uint64(word.IndexWordMask)
	if isWideReg(reg) {
		mask = word.FullWordMask
	}
	result, overflow := addSigned(cur, sign*int64(m), mask)
	c.setReg(reg, result)
	if overflow && isWideReg(reg) {
		c.Regs.OV = true
	}
	return nil
}

// enter implements ENT/ENN: reg <- M, with M's sign taken from the
// instruction's A field when indexing cancels the address to zero (so
// "ENTA 0" with a negative sign bit yields negative zero in rA, the
// standard MIX idiom), and from the arithmetic sum's own sign otherwise.
// ENN additionally flips the resulting sign.
func (c *CPU) enter(instr Instruction, reg int, negate bool) *Trap {
	var sign bool
	var mag int

	if instr.I == 0 {
		sign = instr.W.Neg
		mag = instr.A
		if mag < 0 {
			mag = -mag
		}
	} else {
		m, tr := c.effectiveAddress(instr)
		if tr != nil {
			return tr
		}
		if m != 0 {
			sign = m < 0
			mag = m
			if mag < 0 {
				mag = -mag
			}
		} else {
			sign = instr.W.Neg
			mag = 0
		}
	}

	if negate {
		sign = !sign
	}

	c.setReg(reg, word.Word{Neg: sign, Mag: uint64(mag)})
	return nil
}
