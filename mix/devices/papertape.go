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

package devices

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rcornwell/mix370/mix/alphabet"
	"github.com/rcornwell/mix370/mix/device"
	"github.com/rcornwell/mix370/mix/word"
)

// PaperTapeBlockWords is the device's block size, matching the typewriter's:
// 14 words of five characters, 70 characters per line.
const PaperTapeBlockWords = 14

// PaperTape is MIX device 19, the paper-tape reader input device. Reading
// blocks on the host's input stream until a full line (or EOF) arrives, the
// way the teacher's card reader blocks on its backing file for a record.
type PaperTape struct {
	device.BusyTimer
	in     *bufio.Reader
	rewind bool
}

// NewPaperTape returns a PaperTape reading lines from in.
func NewPaperTape(in io.Reader) *PaperTape {
	return &PaperTape{in: bufio.NewReader(in)}
}

func (p *PaperTape) BlockSize() int { return PaperTapeBlockWords }

// Read fetches one host line, trims its trailing newline, pads it with MIX
// blanks (code 0) to a full block, translates to MIX codes, and packs five
// codes per word (sign always positive — paper tape carries no negative
// zero of its own).
func (p *PaperTape) Read(mem device.Memory, start int) error {
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("papertape: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	codes := make([]byte, PaperTapeBlockWords*charsPerWord)
	for i, r := range []rune(line) {
		if i >= len(codes) {
			break
		}
		codes[i] = alphabet.FromRune(r)
	}

	for i := 0; i < PaperTapeBlockWords; i++ {
		var bytes [5]byte
		copy(bytes[:], codes[i*charsPerWord:(i+1)*charsPerWord])
		if !mem.Set(start+i, word.Pack(false, bytes)) {
			return fmt.Errorf("papertape: read destination out of range at %d", start+i)
		}
	}
	p.MarkBusy()
	return nil
}

// Write is not supported; the paper-tape reader is input-only.
func (p *PaperTape) Write(_ device.Memory, _ int) error {
	return fmt.Errorf("papertape: device does not support write")
}

// Control implements IOC sub-op 0 (rewind): a no-op for a line-oriented host
// stream, kept so programs that unconditionally rewind before reading don't
// trap.
func (p *PaperTape) Control(_ int) error {
	p.rewind = true
	return nil
}
