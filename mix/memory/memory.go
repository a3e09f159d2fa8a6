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

// Package memory is the MIX machine's linear word store: 4,000 addressable
// words, zero-initialised except as loaded, with bounds checking on every
// access. Grounded on the teacher's low-level memory package, trimmed of
// the storage-key/paging bookkeeping a single-address-space machine like
// MIX does not need.
package memory

import "github.com/rcornwell/mix370/mix/word"

// Size is the number of addressable words.
const Size = 4000

// Memory is the 4,000-word linear store.
type Memory struct {
	cells [Size]word.Word
}

// New returns a zero-initialised memory.
func New() *Memory {
	return &Memory{}
}

// Valid reports whether addr is a legal memory address.
func Valid(addr int) bool {
	return addr >= 0 && addr < Size
}

// Get returns the word at addr. ok is false when addr is out of range.
func (m *Memory) Get(addr int) (w word.Word, ok bool) {
	if !Valid(addr) {
		return word.Word{}, false
	}
	return m.cells[addr], true
}

// Set stores w at addr, returning false when addr is out of range.
func (m *Memory) Set(addr int, w word.Word) bool {
	if !Valid(addr) {
		return false
	}
	m.cells[addr] = w
	return true
}

// Load copies a full image into memory, starting at address 0. It is the
// caller's responsibility to ensure len(image) <= Size.
func (m *Memory) Load(image []word.Word) {
	copy(m.cells[:], image)
}

// Snapshot returns a copy of every cell, used by image.Save.
func (m *Memory) Snapshot() [Size]word.Word {
	return m.cells
}
