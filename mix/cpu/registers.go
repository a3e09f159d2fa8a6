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

// Package cpu implements the MIX register file, instruction decode, and the
// full opcode dispatch table. Grounded on the teacher's cpu package: a
// struct of registers and flags, a dense per-opcode function table built
// once at construction, and small opXxx handler methods — adapted here from
// System/370's PSW-and-general-registers model to MIX's sign-magnitude
// accumulator/index-register file.
package cpu

import "github.com/rcornwell/mix370/mix/word"

// Indicator is the comparison indicator left by the most recent CMPx.
type Indicator int

const (
	Equal Indicator = iota
	Less
	Greater
)

// Registers holds the full MIX register file and flags (spec.md §3).
type Registers struct {
	A  word.Word    // rA
	X  word.Word    // rX
	I  [7]word.Word // rI1..rI6 (index 0 unused); index words
	J  word.Word    // rJ, sign always non-negative
	CI Indicator
	OV bool
	PC int
}

// NewRegisters returns a zeroed register file with rJ's sign forced
// positive and PC at start.
func NewRegisters(start int) *Registers {
	return &Registers{PC: start}
}

// Index returns rIi (i in 1..6).
func (r *Registers) Index(i int) word.Word {
	return r.I[i]
}

// SetIndex stores w into rIi, clamping the magnitude to the two bytes an
// index register holds (spec.md §4.2: the implementation must pick and
// document a behaviour for an out-of-range store; this one clamps rather
// than trapping, since the shipped payload only ever stores small integers
// there and a silent clamp keeps IN/OUT/ENT sequences from becoming fatal
// on a stray large index value).
func (r *Registers) SetIndex(i int, w word.Word) {
	r.I[i] = w.Clamp(word.IndexWordMask)
}

// SetJ stores w into rJ, forcing the sign positive as spec.md requires.
func (r *Registers) SetJ(w word.Word) {
	r.J = word.Word{Neg: false, Mag: w.Mag & word.IndexWordMask}
}
