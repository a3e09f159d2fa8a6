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

// Package hexfmt renders MIX words and addresses as hex for diagnostics:
// the fatal-trap line on stderr and the register/memory dumps the
// debuggers print.
package hexfmt

import "strings"

const hexDigits = "0123456789ABCDEF"

// Word formats a 40-bit magnitude as ten hex digits, most significant
// nibble first.
func Word(mag uint64) string {
	var b strings.Builder
	for shift := 36; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(mag>>uint(shift))&0xf])
	}
	return b.String()
}

// Addr formats a 0..3999 memory address as four hex digits.
func Addr(addr int) string {
	var b strings.Builder
	for shift := 12; shift >= 0; shift -= 4 {
		b.WriteByte(hexDigits[(addr>>uint(shift))&0xf])
	}
	return b.String()
}

// Byte formats a single byte as two hex digits.
func Byte(v byte) string {
	return string([]byte{hexDigits[v>>4], hexDigits[v&0xf]})
}
