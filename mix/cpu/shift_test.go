/*
 * mix370 cpu package test cases.
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
	"testing"
)

// TestSlbZeroesBottomOfPool checks SLB shifts the 80-bit (rA,rX) magnitude
// left as a single binary pool: bits shifted out the top are lost, and the
// vacated low-order bits (the bottom of rX) are zero-filled.
func TestSlbZeroesBottomOfPool(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(false, 0xffffffffff)
	c.Regs.X = setWord(false, 0xffffffffff)

	if _, tr := c.loadAndStep(asm(8, 0, 6, 6)); tr != nil { // SLB 8
		t.Fatalf("SLB trapped: %v", tr)
	}
	if c.Regs.X.Mag&0xff != 0 {
		t.Errorf("SLB 8 must zero-fill the bottom 8 bits of rX, got rX=%#x", c.Regs.X.Mag)
	}
	if c.Regs.A.Mag != 0xffffffffff {
		t.Errorf("SLB 8 must leave rA's bits (all still within the 80-bit window) unchanged, got rA=%#x", c.Regs.A.Mag)
	}
}

// TestSrbZeroesTopOfPool checks SRB's mirror image: bits shifted out the
// bottom are lost, and the vacated high-order bits (the top of rA) are
// zero-filled.
func TestSrbZeroesTopOfPool(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(false, 0xffffffffff)
	c.Regs.X = setWord(false, 0xffffffffff)

	if _, tr := c.loadAndStep(asm(8, 0, 7, 6)); tr != nil { // SRB 8
		t.Fatalf("SRB trapped: %v", tr)
	}
	if (c.Regs.A.Mag>>32)&0xff != 0 {
		t.Errorf("SRB 8 must zero-fill the top 8 bits of rA, got rA=%#x", c.Regs.A.Mag)
	}
	if c.Regs.X.Mag != 0xffffffffff {
		t.Errorf("SRB 8 must leave rX's low 32 bits shifted up from rA untouched in content, got rX=%#x", c.Regs.X.Mag)
	}
}

// TestSraDiscardsAndZeroFills checks SRA shifts only rA, zero-filling from
// the top and leaving the sign untouched.
func TestSraDiscardsAndZeroFills(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(true, 0x0102030405)

	if _, tr := c.loadAndStep(asm(2, 0, 1, 6)); tr != nil { // SRA 2
		t.Fatalf("SRA trapped: %v", tr)
	}
	if !c.Regs.A.Neg {
		t.Errorf("SRA must not touch rA's sign")
	}
	if c.Regs.A.Mag != 0x000102030405>>16 {
		t.Errorf("SRA 2 rA = %#x, want %#x", c.Regs.A.Mag, uint64(0x0102030405)>>16)
	}
}

// TestSlcIsCircularAcrossAX verifies SLC rotates the ten-byte (rA,rX)
// concatenation rather than discarding bits, so shifting by the full width
// restores the original contents.
func TestSlcIsCircularAcrossAX(t *testing.T) {
	c := newTestCPU()
	a0 := setWord(false, 0x0102030405)
	x0 := setWord(false, 0x0607080910)
	c.Regs.A, c.Regs.X = a0, x0

	if _, tr := c.loadAndStep(asm(10, 0, 4, 6)); tr != nil { // SLC 10 (full width)
		t.Fatalf("SLC trapped: %v", tr)
	}
	if c.Regs.A != a0 || c.Regs.X != x0 {
		t.Errorf("SLC by the full 10-byte width must be an identity: got A=%+v X=%+v", c.Regs.A, c.Regs.X)
	}
}

// TestSlaxShiftsBothRegistersAsOnePool checks SLAX treats (rA,rX) as a
// single ten-byte buffer: shifting left by a full register width (5 bytes)
// moves all of rX's bytes into rA and zero-fills rX.
func TestSlaxShiftsBothRegistersAsOnePool(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(false, 0)
	c.Regs.X = setWord(false, 0x0102030405)

	if _, tr := c.loadAndStep(asm(5, 0, 2, 6)); tr != nil { // SLAX 5
		t.Fatalf("SLAX trapped: %v", tr)
	}
	if c.Regs.A.Mag != 0x0102030405 {
		t.Errorf("SLAX 5 rA = %#x, want rX's prior contents (%#x)", c.Regs.A.Mag, uint64(0x0102030405))
	}
	if c.Regs.X.Mag != 0 {
		t.Errorf("SLAX 5 rX = %#x, want zero-filled", c.Regs.X.Mag)
	}
}
