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

import "testing"

// TestComparePositiveAndNegativeZeroAreEqual checks spec.md's explicit edge
// case: +0 and -0 always compare equal regardless of which register family
// or which operand carries which sign.
func TestComparePositiveAndNegativeZeroAreEqual(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(true, 0) // -0
	c.Mem.Set(10, setWord(false, 0))

	if _, tr := c.loadAndStep(asm(10, 0, 5, 56)); tr != nil { // CMPA 10
		t.Fatalf("CMPA trapped: %v", tr)
	}
	if c.Regs.CI != Equal {
		t.Errorf("CI after comparing -0 to +0 = %v, want Equal", c.Regs.CI)
	}
}

// TestCompareOrdersBySignedValue exercises the ordinary Less/Greater paths.
func TestCompareOrdersBySignedValue(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(true, 5) // -5
	c.Mem.Set(10, setWord(false, 5))

	if _, tr := c.loadAndStep(asm(10, 0, 5, 56)); tr != nil { // CMPA 10
		t.Fatalf("CMPA trapped: %v", tr)
	}
	if c.Regs.CI != Less {
		t.Errorf("CI comparing -5 to +5 = %v, want Less", c.Regs.CI)
	}

	c2 := newTestCPU()
	c2.Regs.X = setWord(false, 9)
	c2.Mem.Set(20, setWord(false, 3))
	if _, tr := c2.loadAndStep(asm(20, 0, 5, 63)); tr != nil { // CMPX 20
		t.Fatalf("CMPX trapped: %v", tr)
	}
	if c2.Regs.CI != Greater {
		t.Errorf("CI comparing 9 to 3 = %v, want Greater", c2.Regs.CI)
	}
}

// TestCompareHonorsFieldSpec checks a partial field comparison only looks at
// the sliced bytes, not the full register.
func TestCompareHonorsFieldSpec(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(false, 0x000000ffff) // low two bytes = 0xffff
	c.Mem.Set(10, setWord(false, 0x000000ffff))

	if _, tr := c.loadAndStep(asm(10, 0, 0o45, 56)); tr != nil { // CMPA 10(4:5)
		t.Fatalf("CMPA trapped: %v", tr)
	}
	if c.Regs.CI != Equal {
		t.Errorf("CI comparing identical low fields = %v, want Equal", c.Regs.CI)
	}
}
