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

// opCompare implements CMPA/CMP1..CMP6/CMPX (C 56..63): set CI by comparing
// the F-sliced register against V(M,F). Positive and negative zero always
// compare equal.
func (c *CPU) opCompare(instr Instruction) *Trap {
	field, ok := word.DecodeField(instr.F)
	if !ok {
		return c.badField(int(instr.C))
	}

	reg := regFamily(instr.C, 56)
	lhs := word.Slice(c.getReg(reg), field)

	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	rhs, tr := c.operand(m, instr.F)
	if tr != nil {
		return tr
	}

	av, bv := word.ToSigned(lhs), word.ToSigned(rhs)
	switch {
	case av < bv:
		c.Regs.CI = Less
	case av > bv:
		c.Regs.CI = Greater
	default:
		c.Regs.CI = Equal
	}
	return nil
}
