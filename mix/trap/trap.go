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

// Package trap defines the fatal conditions the machine can raise. Every
// Trap is unrecoverable within the current run: the driver reports it and
// stops, since the payloads this machine hosts assume deterministic
// behaviour and no trap is ever meant to be caught internally.
package trap

import (
	"fmt"

	"github.com/rcornwell/mix370/mix/word"
	"github.com/rcornwell/mix370/util/hexfmt"
)

// Kind identifies why a step failed.
type Kind int

const (
	IllegalInstruction Kind = iota
	BadFieldSpec
	AddressOutOfRange
	PCOutOfRange
	DeviceAbsent
	HostIOFailure
)

func (k Kind) String() string {
	switch k {
	case IllegalInstruction:
		return "illegal instruction"
	case BadFieldSpec:
		return "bad field spec"
	case AddressOutOfRange:
		return "address out of range"
	case PCOutOfRange:
		return "pc out of range"
	case DeviceAbsent:
		return "device absent"
	case HostIOFailure:
		return "host I/O failure"
	default:
		return "unknown trap"
	}
}

// Trap is a fatal decode or execution failure, naming the trap kind, the PC
// at fault, and the offending instruction word.
type Trap struct {
	Kind        Kind
	PC          int
	Instruction word.Word
	Detail      string
}

func (t *Trap) Error() string {
	_, bytes := word.Unpack(t.Instruction)
	sign := byte(0)
	if t.Instruction.Neg {
		sign = 1
	}
	msg := fmt.Sprintf("trap: %s at PC=%s instruction=%s%s%s%s%s%s",
		t.Kind, hexfmt.Addr(t.PC),
		hexfmt.Byte(sign), hexfmt.Byte(bytes[0]), hexfmt.Byte(bytes[1]),
		hexfmt.Byte(bytes[2]), hexfmt.Byte(bytes[3]), hexfmt.Byte(bytes[4]))
	if t.Detail != "" {
		msg += " (" + t.Detail + ")"
	}
	return msg
}

// New builds a Trap.
func New(kind Kind, pc int, instr word.Word, detail string) *Trap {
	return &Trap{Kind: kind, PC: pc, Instruction: instr, Detail: detail}
}
