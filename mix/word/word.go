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

// Package word implements the MIX sign-magnitude word: packing and
// unpacking six-byte (and three-byte index) words, field-specification
// slicing and splicing, and the signed-integer conversions the rest of the
// machine is built on.
//
// A MIX byte here is a full 8-bit storage cell rather than TAOCP's strict
// 6-bit byte: the shipped payload this emulator targets stores values up to
// 0xFA, so bytes are treated as the native, unclamped value actually found
// in memory. See DESIGN.md for the full rationale.
package word

// Word is a sign-magnitude integer: the sign is carried explicitly so that
// positive and negative zero remain distinguishable, as MIX requires.
type Word struct {
	Neg bool
	Mag uint64
}

const (
	// FullWordMask is the largest magnitude a six-byte (rA, rX, or memory
	// cell) word can hold: five 8-bit bytes.
	FullWordMask = 1<<40 - 1
	// IndexWordMask is the largest magnitude an index word (rI1..rI6, rJ)
	// can hold: two 8-bit bytes.
	IndexWordMask = 1<<16 - 1
)

// Zero and NegZero are the two representations of zero; they compare equal
// under Signum and IsZero but round-trip through Pack/Unpack distinctly.
var (
	Zero    = Word{Neg: false, Mag: 0}
	NegZero = Word{Neg: true, Mag: 0}
)

// IsZero reports whether w is positive or negative zero.
func (w Word) IsZero() bool { return w.Mag == 0 }

// Signum returns -1, 0, or +1. Negative zero returns 0, matching MIX's rule
// that ±0 compare equal.
func (w Word) Signum() int {
	switch {
	case w.Mag == 0:
		return 0
	case w.Neg:
		return -1
	default:
		return 1
	}
}

// Clamp masks Mag to the given magnitude mask, used after arithmetic that
// may have produced an out-of-range intermediate before the caller decides
// how to report overflow.
func (w Word) Clamp(mask uint64) Word {
	return Word{Neg: w.Neg, Mag: w.Mag & mask}
}

// Pack assembles a six-byte word (sign plus five magnitude bytes, most
// significant first).
func Pack(sign bool, bytes [5]byte) Word {
	var mag uint64
	for _, b := range bytes {
		mag = mag<<8 | uint64(b)
	}
	return Word{Neg: sign, Mag: mag}
}

// Unpack splits a word back into its sign and five magnitude bytes.
func Unpack(w Word) (sign bool, bytes [5]byte) {
	m := w.Mag
	for i := 4; i >= 0; i-- {
		bytes[i] = byte(m & 0xff)
		m >>= 8
	}
	return w.Neg, bytes
}

// PackIndex assembles a three-byte index word (sign plus two magnitude
// bytes).
func PackIndex(sign bool, b1, b2 byte) Word {
	return Word{Neg: sign, Mag: uint64(b1)<<8 | uint64(b2)}
}

// UnpackIndex splits an index word back into its sign and two magnitude
// bytes.
func UnpackIndex(w Word) (sign bool, b1, b2 byte) {
	return w.Neg, byte(w.Mag >> 8), byte(w.Mag)
}

// ToSigned converts w to a host signed integer for arithmetic mediation.
// Both representations of zero map to 0; callers that must preserve
// negative zero should branch on Neg before calling this.
func ToSigned(w Word) int64 {
	v := int64(w.Mag)
	if w.Neg {
		v = -v
	}
	return v
}

// FromSigned builds a Word from a host signed integer. Zero always becomes
// positive zero; callers wanting negative zero must construct it directly.
func FromSigned(v int64) Word {
	if v < 0 {
		return Word{Neg: true, Mag: uint64(-v)}
	}
	return Word{Neg: false, Mag: uint64(v)}
}

// Field is a decoded (L:R) field specification: byte 0 is the sign, bytes
// 1..5 are magnitude bytes most significant first.
type Field struct {
	L, R int
}

// DecodeField splits a raw F byte (F = 8*L+R) into a Field, reporting false
// when L>R or R>5 — the "bad field spec" fatal condition.
func DecodeField(f byte) (Field, bool) {
	l, r := int(f)/8, int(f)%8
	if l > r || r > 5 {
		return Field{}, false
	}
	return Field{L: l, R: r}, true
}

// Byte encodes the field back to its F = 8*L+R form.
func (f Field) Byte() byte { return byte(f.L*8 + f.R) }

// Slice extracts the bytes addressed by f from w, right-justified. When
// L==0 the sign travels with the slice; otherwise the result is positive.
func Slice(w Word, f Field) Word {
	sign, bytes := Unpack(w)

	resultSign := false
	start := f.L
	if f.L == 0 {
		resultSign = sign
		start = 1
	}

	var mag uint64
	for pos := start; pos <= f.R; pos++ {
		mag = mag<<8 | uint64(bytes[pos-1])
	}
	return Word{Neg: resultSign, Mag: mag}
}

// Splice writes src's magnitude, right-justified, into dest's f-addressed
// byte positions, returning the updated word. When L==0 src's sign replaces
// dest's; otherwise dest's sign is preserved. Splice(dest, Slice(dest, f), f)
// always returns dest unchanged.
func Splice(dest, src Word, f Field) Word {
	_, destBytes := Unpack(dest)

	sign := dest.Neg
	start := f.L
	if f.L == 0 {
		sign = src.Neg
		start = 1
	}

	n := f.R - start + 1
	srcMag := src.Mag
	for i := 0; i < n; i++ {
		pos := f.R - i
		destBytes[pos-1] = byte(srcMag)
		srcMag >>= 8
	}
	return Pack(sign, destBytes)
}
