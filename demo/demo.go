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

// Package demo builds a small, hand-assembled MIX program used by the CLI's
// default run mode and by the end-to-end tests in spec.md §8's "golden
// flag"/"wrong flag" scenarios. It is a stand-in for the real, out-of-scope
// cipher-comparison payload this emulator hosts in production: it reads one
// paper-tape block, compares its first word against a fixed constant, and
// prints an accept or reject message on the typewriter.
package demo

import (
	"bytes"

	"github.com/rcornwell/mix370/mix/alphabet"
	"github.com/rcornwell/mix370/mix/image"
	"github.com/rcornwell/mix370/mix/memory"
	"github.com/rcornwell/mix370/mix/word"
)

const (
	inputBlock  = 200
	acceptMsg   = 250
	rejectMsg   = 300
	goldenWord  = 50
	acceptEntry = 10
)

// encode assembles one instruction word: sign from a's own sign, a 16-bit
// address magnitude, the index specifier, the field spec/device number, and
// the opcode.
func encode(a int, i int, f byte, c byte) word.Word {
	neg := a < 0
	mag := a
	if neg {
		mag = -mag
	}
	return word.Pack(neg, [5]byte{byte(mag >> 8), byte(mag), byte(i), f, c})
}

// textWords packs s into block-sized words (5 MIX characters per word),
// space-padding or truncating to exactly n words.
func textWords(s string, n int) []word.Word {
	runes := []rune(s)
	out := make([]word.Word, n)
	for w := 0; w < n; w++ {
		var bytes [5]byte
		for k := 0; k < 5; k++ {
			idx := w*5 + k
			r := ' '
			if idx < len(runes) {
				r = runes[idx]
			}
			bytes[k] = alphabet.FromRune(r)
		}
		out[w] = word.Pack(false, bytes)
	}
	return out
}

// Build returns a freshly assembled demo program and its entry point (0).
func Build() (*memory.Memory, int) {
	mem := memory.New()

	// 0: read one paper-tape block into 200..213.
	mem.Set(0, encode(inputBlock, 0, 19, 36)) // IN dev 19 -> 200
	// 1: rA <- mem[200] (full word).
	mem.Set(1, encode(inputBlock, 0, 5, 8)) // LDA 200
	// 2: compare rA against the golden constant.
	mem.Set(2, encode(goldenWord, 0, 5, 56)) // CMPA 50
	// 3: jump to the accept branch if equal.
	mem.Set(3, encode(acceptEntry, 0, 5, 39)) // JE 10
	// 4: fall through to reject: print the reject message.
	mem.Set(4, encode(rejectMsg, 0, 18, 37)) // OUT dev 18 <- 300
	// 5: halt.
	mem.Set(5, encode(0, 0, 2, 5)) // HLT

	// 10: accept branch: print the accept message.
	mem.Set(acceptEntry, encode(acceptMsg, 0, 18, 37)) // OUT dev 18 <- 250
	// 11: halt.
	mem.Set(acceptEntry+1, encode(0, 0, 2, 5)) // HLT

	mem.Set(goldenWord, textWords("HELLO", 1)[0])
	for i, w := range textWords("ACCEPTED", 14) {
		mem.Set(acceptMsg+i, w)
	}
	for i, w := range textWords("REJECTED", 14) {
		mem.Set(rejectMsg+i, w)
	}

	return mem, 0
}

// Bytes renders Build's program in the mix/image wire format, so callers
// that want an io.Reader (the CLI's default image, or a test fixture) don't
// need to depend on mix/memory directly.
func Bytes() []byte {
	mem, start := Build()
	var buf bytes.Buffer
	if err := image.Save(&buf, mem, start); err != nil {
		panic("demo: building built-in image: " + err.Error())
	}
	return buf.Bytes()
}
