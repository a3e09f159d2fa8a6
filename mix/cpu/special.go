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

// opSpecial dispatches opcode 5 by F: NUM, CHAR, HLT, and the bitwise family
// (NOT/AND/OR/XOR) all share the opcode since none of them address memory
// through the ordinary field-spec path.
func (c *CPU) opSpecial(instr Instruction) *Trap {
	switch instr.F {
	case 0:
		return c.opNUM(instr)
	case 1:
		return c.opCHAR(instr)
	case 2:
		c.halted = true
		return nil
	case 9:
		return c.opBitwise(instr, bitNOT)
	case 10:
		return c.opBitwise(instr, bitAND)
	case 11:
		return c.opBitwise(instr, bitOR)
	case 12:
		return c.opBitwise(instr, bitXOR)
	default:
		return c.illegal(instr)
	}
}

// opNUM packs the ten magnitude bytes of (rA,rX), each taken mod 10 as a
// decimal digit, into a single decimal magnitude stored in rA. rA's sign
// from before the conversion is kept; rX is untouched.
func (c *CPU) opNUM(_ Instruction) *Trap {
	_, aBytes := word.Unpack(c.Regs.A)
	_, xBytes := word.Unpack(c.Regs.X)

	var mag uint64
	for _, b := range aBytes {
		mag = mag*10 + uint64(b%10)
	}
	for _, b := range xBytes {
		mag = mag*10 + uint64(b%10)
	}
	c.Regs.A = word.Word{Neg: c.Regs.A.Neg, Mag: mag & word.FullWordMask}
	return nil
}

// opCHAR is NUM's inverse: it spreads rA's magnitude, read as up to ten
// decimal digits, across (rA,rX) as MIX numeric character codes (30..39).
// Signs of rA and rX are left untouched, so CHAR followed by NUM is an
// identity on rA's decimal-magnitude bits (spec.md §8).
func (c *CPU) opCHAR(_ Instruction) *Trap {
	mag := c.Regs.A.Mag
	var digits [10]byte
	for i := 9; i >= 0; i-- {
		digits[i] = byte(mag % 10)
		mag /= 10
	}

	var aBytes, xBytes [5]byte
	for i := 0; i < 5; i++ {
		aBytes[i] = 30 + digits[i]
		xBytes[i] = 30 + digits[i+5]
	}
	c.Regs.A = word.Pack(c.Regs.A.Neg, aBytes)
	c.Regs.X = word.Pack(c.Regs.X.Neg, xBytes)
	return nil
}

type bitOp int

const (
	bitNOT bitOp = iota
	bitAND
	bitOR
	bitXOR
)

// opBitwise applies a bitwise operator to rA's 40-bit magnitude and the
// full 40-bit magnitude of memory[M] (F selects the operator, so no field
// slicing applies), keeping rA's sign unchanged. NOT is unary and ignores
// the operand entirely.
func (c *CPU) opBitwise(instr Instruction, op bitOp) *Trap {
	if op == bitNOT {
		c.Regs.A = word.Word{Neg: c.Regs.A.Neg, Mag: (^c.Regs.A.Mag) & word.FullWordMask}
		return nil
	}

	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	v, tr := c.operand(m, 5) // whole word, (0:5)
	if tr != nil {
		return tr
	}

	var mag uint64
	switch op {
	case bitAND:
		mag = c.Regs.A.Mag & v.Mag
	case bitOR:
		mag = c.Regs.A.Mag | v.Mag
	case bitXOR:
		mag = c.Regs.A.Mag ^ v.Mag
	}
	c.Regs.A = word.Word{Neg: c.Regs.A.Neg, Mag: mag & word.FullWordMask}
	return nil
}

func (c *CPU) opNOP(_ Instruction) *Trap { return nil }
