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
	"github.com/rcornwell/mix370/mix/word"
)

// Instruction is a decoded instruction word: [sign][A1][A2][I][F][C].
type Instruction struct {
	A int  // address field, signed, -(2^16-1)..+(2^16-1)
	I int  // index specifier, raw byte (validity checked by caller)
	F byte // field spec
	C byte // opcode
	W word.Word
}

// Decode splits a raw instruction word into its four fields.
func Decode(w word.Word) Instruction {
	_, bytes := word.Unpack(w)
	aMag := int(bytes[0])<<8 | int(bytes[1])
	a := aMag
	if w.Neg {
		a = -a
	}
	return Instruction{
		A: a,
		I: int(bytes[2]),
		F: bytes[3],
		C: bytes[4],
		W: w,
	}
}

// effectiveAddress computes M = A + contents(rIi) for 1<=I<=6, else M = A.
// It does not range-check M: memory-referencing handlers must do that
// themselves since jumps and address-transfer use M unchecked.
func (c *CPU) effectiveAddress(instr Instruction) (int, *Trap) {
	if instr.I == 0 {
		return instr.A, nil
	}
	if instr.I < 1 || instr.I > 6 {
		return 0, c.illegal(instr)
	}
	idx := c.Regs.Index(instr.I)
	return instr.A + int(word.ToSigned(idx)), nil
}

// operand resolves V(M,F): the field-selected memory operand at M.
func (c *CPU) operand(m int, f byte) (word.Word, *Trap) {
	field, ok := word.DecodeField(f)
	if !ok {
		return word.Word{}, c.badField(m)
	}
	if !memValid(m) {
		return word.Word{}, c.addrOOR(m)
	}
	cell, _ := c.Mem.Get(m)
	return word.Slice(cell, field), nil
}
