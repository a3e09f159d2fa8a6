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

// Package devices implements the two built-in devices the shipped payload
// relies on: a typewriter output device and a paper-tape input device, both
// using the MIX character alphabet. Grounded on the teacher's model1052
// console-typewriter and model2540R card-reader device packages, trimmed of
// channel-command chaining (CCWs) and telnet attachment since a single
// synchronous IN/OUT/IOC instruction drives each transfer start to finish.
package devices

import (
	"fmt"
	"io"

	"github.com/rcornwell/mix370/mix/alphabet"
	"github.com/rcornwell/mix370/mix/device"
	"github.com/rcornwell/mix370/mix/word"
)

// TypewriterBlockWords is the device's block size: 14 words of five
// characters each, 70 characters per line.
const TypewriterBlockWords = 14

const charsPerWord = 5

// Typewriter is MIX device 18, the console typewriter output device.
type Typewriter struct {
	device.BusyTimer
	out io.Writer
}

// NewTypewriter returns a Typewriter writing translated output to out.
func NewTypewriter(out io.Writer) *Typewriter {
	return &Typewriter{out: out}
}

func (t *Typewriter) BlockSize() int { return TypewriterBlockWords }

// Read is not supported; the typewriter is output-only.
func (t *Typewriter) Read(_ device.Memory, _ int) error {
	return fmt.Errorf("typewriter: device does not support read")
}

// Write translates BlockSize words to host characters and emits them.
func (t *Typewriter) Write(mem device.Memory, start int) error {
	var line []rune
	for i := 0; i < TypewriterBlockWords; i++ {
		w, ok := mem.Get(start + i)
		if !ok {
			return fmt.Errorf("typewriter: write source out of range at %d", start+i)
		}
		_, bytes := word.Unpack(w)
		for _, b := range bytes {
			line = append(line, alphabet.ToRune(b))
		}
	}
	if _, err := fmt.Fprint(t.out, string(line)); err != nil {
		return err
	}
	t.MarkBusy()
	return nil
}

// Control implements IOC: sub-op 2 (new page / rewind) flushes a line
// terminator, matching spec.md §6's "emits a line terminator ... flushed by
// a subsequent IOC of sub-op 2".
func (t *Typewriter) Control(m int) error {
	if m == 2 {
		_, err := fmt.Fprintln(t.out)
		return err
	}
	return nil
}
