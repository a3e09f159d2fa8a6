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

// buildTable wires every opcode 0..63 to its handler, mirroring the
// teacher's createTable: a dense, once-built array rather than a switch
// re-evaluated on every fetch. Opcodes 64..255 are left nil, which Step
// reports as IllegalInstruction.
func (c *CPU) buildTable() {
	t := &c.table

	t[0] = (*CPU).opNOP
	t[1] = (*CPU).opADD
	t[2] = (*CPU).opSUB
	t[3] = (*CPU).opMUL
	t[4] = (*CPU).opDIV
	t[5] = (*CPU).opSpecial
	t[6] = (*CPU).opShift
	t[7] = (*CPU).opMOVE

	for op := byte(8); op <= 23; op++ {
		if op <= 15 {
			t[op] = (*CPU).opLoad
		} else {
			t[op] = (*CPU).opLoadNeg
		}
	}
	for op := byte(24); op <= 31; op++ {
		t[op] = (*CPU).opStore
	}
	t[32] = (*CPU).opSTJ
	t[33] = (*CPU).opSTZ

	t[34] = (*CPU).opJBUS
	t[35] = (*CPU).opIOC
	t[36] = (*CPU).opIN
	t[37] = (*CPU).opOUT
	t[38] = (*CPU).opJRED
	t[39] = (*CPU).opJmp

	for op := byte(40); op <= 47; op++ {
		t[op] = (*CPU).opRegJump
	}
	for op := byte(48); op <= 55; op++ {
		t[op] = (*CPU).opRegOp
	}
	for op := byte(56); op <= 63; op++ {
		t[op] = (*CPU).opCompare
	}
}
