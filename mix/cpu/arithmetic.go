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
	"math/big"

	"github.com/rcornwell/mix370/mix/word"
)

// addSigned computes a+b as true signed integers (never relying on the
// host's two's-complement wraparound) and reports whether the magnitude
// exceeds mask. On overflow the stored magnitude is the low bits of the
// true sum, matching the teacher's "flag and keep going" overflow style.
func addSigned(a, b int64, mask uint64) (word.Word, bool) {
	sum := a + b
	mag := sum
	neg := sum < 0
	if mag < 0 {
		mag = -mag
	}
	overflow := uint64(mag) > mask
	return word.Word{Neg: neg, Mag: uint64(mag) & mask}, overflow
}

func (c *CPU) opADD(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	v, tr := c.operand(m, instr.F)
	if tr != nil {
		return tr
	}
	result, overflow := addSigned(word.ToSigned(c.Regs.A), word.ToSigned(v), word.FullWordMask)
	c.Regs.A = result
	if overflow {
		c.Regs.OV = true
	}
	return nil
}

func (c *CPU) opSUB(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	v, tr := c.operand(m, instr.F)
	if tr != nil {
		return tr
	}
	result, overflow := addSigned(word.ToSigned(c.Regs.A), -word.ToSigned(v), word.FullWordMask)
	c.Regs.A = result
	if overflow {
		c.Regs.OV = true
	}
	return nil
}

// opMUL computes the 80-bit product rA*V(M,F), high-order half in rA,
// low-order half in rX, both carrying the product's sign (sign(a) xor
// sign(b), per spec.md's arithmetic table).
func (c *CPU) opMUL(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	v, tr := c.operand(m, instr.F)
	if tr != nil {
		return tr
	}
	a := new(big.Int).SetUint64(c.Regs.A.Mag)
	b := new(big.Int).SetUint64(v.Mag)
	product := new(big.Int).Mul(a, b)

	lowMask := new(big.Int).SetUint64(word.FullWordMask)
	low := new(big.Int).And(product, lowMask)
	high := new(big.Int).Rsh(product, 40)

	sign := c.Regs.A.Neg != v.Neg
	c.Regs.A = word.Word{Neg: sign, Mag: high.Uint64()}
	c.Regs.X = word.Word{Neg: sign, Mag: low.Uint64()}
	return nil
}

// opDIV divides the 80-bit (rA,rX) dividend by V(M,F). When the divisor is
// zero or the quotient would not fit a word (|rA| >= |V|), it sets overflow
// and leaves rA/rX with zero magnitude and their own prior signs preserved
// — a deliberate, documented choice (SPEC_FULL.md Design Notes) standing in
// for "undefined" division, so a divide-by-zero probe is a safe no-op that
// merely raises OV rather than crashing the emulator.
func (c *CPU) opDIV(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	v, tr := c.operand(m, instr.F)
	if tr != nil {
		return tr
	}

	if v.Mag == 0 || c.Regs.A.Mag >= v.Mag {
		c.Regs.OV = true
		c.Regs.A = word.Word{Neg: c.Regs.A.Neg, Mag: 0}
		c.Regs.X = word.Word{Neg: c.Regs.X.Neg, Mag: 0}
		return nil
	}

	dividend := new(big.Int).Lsh(new(big.Int).SetUint64(c.Regs.A.Mag), 40)
	dividend.Or(dividend, new(big.Int).SetUint64(c.Regs.X.Mag))
	divisor := new(big.Int).SetUint64(v.Mag)

	quotient := new(big.Int)
	remainder := new(big.Int)
	quotient.QuoRem(dividend, divisor, remainder)

	aSign := c.Regs.A.Neg
	c.Regs.A = word.Word{Neg: aSign != v.Neg, Mag: quotient.Uint64()}
	c.Regs.X = word.Word{Neg: aSign, Mag: remainder.Uint64()}
	return nil
}
