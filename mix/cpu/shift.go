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

// opShift dispatches opcode 6 by F. SLA/SRA/SLAX/SRAX/SLC/SRC shift whole
// bytes (the textbook MIX shift unit, carried over unchanged from a 6-bit
// byte to this machine's 8-bit one); SLB/SRB are the binary, bit-at-a-time
// shift of the full 80-bit (rA,rX) pair the shipped payload needs and the
// textbook instruction set never had (spec.md §4.5, §9).
func (c *CPU) opShift(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	if m < 0 {
		m = 0
	}

	switch instr.F {
	case 0:
		c.shiftA(m, shiftLeft)
	case 1:
		c.shiftA(m, shiftRight)
	case 2:
		c.shiftAX(m, shiftLeft, false)
	case 3:
		c.shiftAX(m, shiftRight, false)
	case 4:
		c.shiftAX(m, shiftLeft, true)
	case 5:
		c.shiftAX(m, shiftRight, true)
	case 6:
		c.shiftBinary(m, shiftLeft)
	case 7:
		c.shiftBinary(m, shiftRight)
	default:
		return c.illegal(instr)
	}
	return nil
}

type shiftDir int

const (
	shiftLeft shiftDir = iota
	shiftRight
)

// shiftA shifts only rA's five magnitude bytes, zero-filling the vacated
// positions; rA's sign is untouched.
func (c *CPU) shiftA(n int, dir shiftDir) {
	_, bytes := word.Unpack(c.Regs.A)
	buf := bytes[:]
	if dir == shiftLeft {
		shiftBytesLeft(buf, n)
	} else {
		shiftBytesRight(buf, n)
	}
	var out [5]byte
	copy(out[:], buf)
	c.Regs.A = word.Pack(c.Regs.A.Neg, out)
}

// shiftAX shifts the ten-byte concatenation of rA and rX's magnitudes as one
// pool, circularly when circular is true; each register keeps its own
// original sign.
func (c *CPU) shiftAX(n int, dir shiftDir, circular bool) {
	_, aBytes := word.Unpack(c.Regs.A)
	_, xBytes := word.Unpack(c.Regs.X)
	buf := append(append([]byte{}, aBytes[:]...), xBytes[:]...)

	switch {
	case circular && dir == shiftLeft:
		rotateLeft(buf, n)
	case circular && dir == shiftRight:
		rotateRight(buf, n)
	case dir == shiftLeft:
		shiftBytesLeft(buf, n)
	default:
		shiftBytesRight(buf, n)
	}

	var aOut, xOut [5]byte
	copy(aOut[:], buf[:5])
	copy(xOut[:], buf[5:])
	c.Regs.A = word.Pack(c.Regs.A.Neg, aOut)
	c.Regs.X = word.Pack(c.Regs.X.Neg, xOut)
}

// shiftBinary shifts the 80-bit magnitude of (rA,rX) by n bits, discarding
// bits shifted out and zero-filling, using math/big to avoid hand-rolled
// 80-bit carry logic.
func (c *CPU) shiftBinary(n int, dir shiftDir) {
	value := new(big.Int).Lsh(new(big.Int).SetUint64(c.Regs.A.Mag), 40)
	value.Or(value, new(big.Int).SetUint64(c.Regs.X.Mag))

	const width = 80
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), width), big.NewInt(1))
	if dir == shiftLeft {
		value.Lsh(value, uint(n))
		value.And(value, mask)
	} else {
		value.Rsh(value, uint(n))
	}

	lowMask := new(big.Int).SetUint64(word.FullWordMask)
	low := new(big.Int).And(value, lowMask)
	high := new(big.Int).Rsh(value, 40)
	high.And(high, lowMask)

	c.Regs.A = word.Word{Neg: c.Regs.A.Neg, Mag: high.Uint64()}
	c.Regs.X = word.Word{Neg: c.Regs.X.Neg, Mag: low.Uint64()}
}

func shiftBytesLeft(buf []byte, n int) {
	if n >= len(buf) {
		n = len(buf)
	}
	copy(buf, buf[n:])
	for i := len(buf) - n; i < len(buf); i++ {
		buf[i] = 0
	}
}

func shiftBytesRight(buf []byte, n int) {
	if n >= len(buf) {
		n = len(buf)
	}
	copy(buf[n:], buf[:len(buf)-n])
	for i := 0; i < n; i++ {
		buf[i] = 0
	}
}

func rotateLeft(buf []byte, n int) {
	if len(buf) == 0 {
		return
	}
	n %= len(buf)
	if n == 0 {
		return
	}
	tmp := append([]byte{}, buf[:n]...)
	copy(buf, buf[n:])
	copy(buf[len(buf)-n:], tmp)
}

func rotateRight(buf []byte, n int) {
	if len(buf) == 0 {
		return
	}
	n %= len(buf)
	rotateLeft(buf, len(buf)-n)
}
