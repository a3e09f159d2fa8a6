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

	"github.com/rcornwell/mix370/mix/word"
)

// TestAddOverflowAndJOV is spec.md §8 scenario 4: load the largest positive
// word into rA, ADD it to itself, observe overflow, then take JOV and see
// it clear.
func TestAddOverflowAndJOV(t *testing.T) {
	c := newTestCPU()
	c.Mem.Set(1000, setWord(false, word.FullWordMask))
	c.Regs.A = setWord(false, word.FullWordMask)

	if _, tr := c.loadAndStep(asm(1000, 0, 5, 1)); tr != nil { // ADD 1000
		t.Fatalf("ADD trapped: %v", tr)
	}
	if !c.Regs.OV {
		t.Fatalf("ADD of max+max must set overflow")
	}

	c.Mem.Set(c.Regs.PC, asm(50, 0, 2, 39)) // JOV 50
	if _, tr := c.Step(); tr != nil {
		t.Fatalf("JOV trapped: %v", tr)
	}
	if c.Regs.PC != 50 {
		t.Errorf("JOV with OV set must jump, PC = %d, want 50", c.Regs.PC)
	}
	if c.Regs.OV {
		t.Errorf("JOV must clear OV whether or not it jumps")
	}
}

// TestAddSubRoundTrip is spec.md §8: ADD then SUB of the same operand (no
// overflow) leaves rA unchanged.
func TestAddSubRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(false, 12345)
	c.Mem.Set(500, setWord(false, 6789))

	if _, tr := c.loadAndStep(asm(500, 0, 5, 1)); tr != nil { // ADD 500
		t.Fatalf("ADD trapped: %v", tr)
	}
	if _, tr := c.loadAndStep(asm(500, 0, 5, 2)); tr != nil { // SUB 500
		t.Fatalf("SUB trapped: %v", tr)
	}
	if c.Regs.A != setWord(false, 12345) {
		t.Errorf("ADD then SUB left rA = %+v, want unchanged", c.Regs.A)
	}
	if c.Regs.OV {
		t.Errorf("no overflow expected on this round trip")
	}
}

// TestMulSignsAndSplit checks opMUL's sign-of-product rule and the high/low
// 40-bit split between rA and rX.
func TestMulSignsAndSplit(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(true, 1<<20)
	c.Mem.Set(10, setWord(false, 1<<20))

	if _, tr := c.loadAndStep(asm(10, 0, 5, 3)); tr != nil { // MUL 10
		t.Fatalf("MUL trapped: %v", tr)
	}
	if !c.Regs.A.Neg || !c.Regs.X.Neg {
		t.Errorf("product of a negative and a positive operand must be negative in both halves")
	}
	product := (c.Regs.A.Mag << 40) | c.Regs.X.Mag
	if want := uint64(1) << 40; product != want {
		t.Errorf("product magnitude = %#x, want %#x", product, want)
	}
}

// TestDivByZeroSetsOverflow is the Open-Question resolution this emulator
// commits to: dividing by zero sets OV and leaves rA/rX at zero magnitude,
// each keeping its own prior sign — never a fatal trap, so a payload can use
// it as an equality probe (spec.md §1, §9).
func TestDivByZeroSetsOverflow(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(true, 42)
	c.Regs.X = setWord(false, 7)
	c.Mem.Set(20, word.Zero)

	if _, tr := c.loadAndStep(asm(20, 0, 5, 4)); tr != nil { // DIV 20
		t.Fatalf("DIV by zero must not trap, got: %v", tr)
	}
	if !c.Regs.OV {
		t.Fatalf("DIV by zero must set overflow")
	}
	if c.Regs.A.Mag != 0 || !c.Regs.A.Neg {
		t.Errorf("rA after DIV-by-zero = %+v, want zero magnitude, sign preserved (neg)", c.Regs.A)
	}
	if c.Regs.X.Mag != 0 || c.Regs.X.Neg {
		t.Errorf("rX after DIV-by-zero = %+v, want zero magnitude, sign preserved (pos)", c.Regs.X)
	}
}

// TestDivQuotientAndRemainder exercises an ordinary division where the
// quotient fits, checking both the quotient's sign rule (sign(a) xor
// sign(v)) and the remainder's (always sign(a)).
func TestDivQuotientAndRemainder(t *testing.T) {
	c := newTestCPU()
	c.Regs.A = setWord(true, 0)
	c.Regs.X = setWord(false, 17)
	c.Mem.Set(30, setWord(false, 5))

	if _, tr := c.loadAndStep(asm(30, 0, 5, 4)); tr != nil { // DIV 30
		t.Fatalf("DIV trapped: %v", tr)
	}
	if !c.Regs.A.Neg {
		t.Errorf("quotient sign = %v, want negative (sign(rA) xor sign(V) = neg xor pos)", c.Regs.A.Neg)
	}
	if c.Regs.A.Mag != 3 {
		t.Errorf("quotient = %d, want 3", c.Regs.A.Mag)
	}
	if !c.Regs.X.Neg || c.Regs.X.Mag != 2 {
		t.Errorf("remainder = %+v, want -2 (sign of dividend)", c.Regs.X)
	}
}
