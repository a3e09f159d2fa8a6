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

// Package image reads and writes the serialized memory-image format
// spec.md §6 describes: a two-byte starting PC followed by up to 4,000
// six-byte word records. Grounded on the teacher's
// card/tape packages, which read a fixed-format binary record stream into
// in-memory structures the same way.
package image

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rcornwell/mix370/mix/memory"
	"github.com/rcornwell/mix370/mix/word"
)

// wordBytes is the on-disk size of one word record: one sign byte plus five
// magnitude bytes.
const wordBytes = 6

// Load reads a memory image from r: a two-byte big-endian starting PC,
// followed by up to memory.Size six-byte word records (sign byte 0 or 1,
// then five magnitude bytes, most significant first). Any trailing cells
// not present in the stream are left zero. A malformed stream — a bad sign
// byte, or a record truncated mid-word — is a load-time error, never a VM
// trap.
func Load(r io.Reader) (*memory.Memory, int, error) {
	br := bufio.NewReader(r)

	var pcBuf [2]byte
	if _, err := io.ReadFull(br, pcBuf[:]); err != nil {
		return nil, 0, fmt.Errorf("image: reading start PC: %w", err)
	}
	start := int(pcBuf[0])<<8 | int(pcBuf[1])

	mem := memory.New()
	var rec [wordBytes]byte
	for addr := 0; addr < memory.Size; addr++ {
		_, err := io.ReadFull(br, rec[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("image: reading word %d: %w", addr, err)
		}
		if rec[0] != 0 && rec[0] != 1 {
			return nil, 0, fmt.Errorf("image: word %d has invalid sign byte %#x", addr, rec[0])
		}
		var bytes [5]byte
		copy(bytes[:], rec[1:])
		mem.Set(addr, word.Pack(rec[0] == 1, bytes))
	}
	return mem, start, nil
}

// Save writes mem (and start as a two-byte big-endian PC) to w in Load's
// format. It always emits the full memory.Size records, zero words
// included, so a saved image round-trips through Load byte for byte.
func Save(w io.Writer, mem *memory.Memory, start int) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.Write([]byte{byte(start >> 8), byte(start)}); err != nil {
		return fmt.Errorf("image: writing start PC: %w", err)
	}

	cells := mem.Snapshot()
	for addr := 0; addr < memory.Size; addr++ {
		sign, bytes := word.Unpack(cells[addr])
		signByte := byte(0)
		if sign {
			signByte = 1
		}
		rec := append([]byte{signByte}, bytes[:]...)
		if _, err := bw.Write(rec); err != nil {
			return fmt.Errorf("image: writing word %d: %w", addr, err)
		}
	}
	return bw.Flush()
}
