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

// Package alphabet implements the MIX character code, a 64-entry table the
// typewriter and paper-tape devices use to translate between MIX bytes and
// host Unicode code points. The mapping is total and stable in both
// directions: every MIX code maps to some code point, and every host rune
// not otherwise mapped comes back as code 0 (blank), the way the teacher's
// card-code tables fold unrepresentable characters to a single placeholder
// rather than erroring.
package alphabet

// toRune is indexed by MIX character code 0..63. Codes 56..63 are unused by
// TAOCP's alphabet and render as '?' on output.
var toRune = [64]rune{
	0x0020, 'A', 'B', 'C', 'D', 'E', 'F', 'G',
	'H', 'I', '\'', 'J', 'K', 'L', 'M', 'N',
	'O', 'P', 'Q', 'R', 0x00B0, '"', 'S', 'T',
	'U', 'V', 'W', 'X', 'Y', 'Z', '0', '1',
	'2', '3', '4', '5', '6', '7', '8', '9',
	'.', ',', '(', ')', '+', '-', '*', '/',
	'=', '$', '<', '>', '@', ';', ':', 0x201A,
	'?', '?', '?', '?', '?', '?', '?', '?',
}

// blank is the MIX code returned for any rune with no inverse mapping.
const blank = 0

var fromRune = buildInverse()

func buildInverse() map[rune]byte {
	m := make(map[rune]byte, 56)
	for code, r := 0, rune(0); code < 56; code++ {
		r = toRune[code]
		if _, exists := m[r]; !exists {
			m[r] = byte(code)
		}
	}
	return m
}

// ToRune returns the Unicode code point for a MIX character code. code is
// masked to 0..63; codes 56..63 return '?'.
func ToRune(code byte) rune {
	return toRune[code&0x3f]
}

// FromRune returns the MIX character code for a host rune, or blank (0) if
// the rune has no representation in the alphabet.
func FromRune(r rune) byte {
	if code, ok := fromRune[r]; ok {
		return code
	}
	return blank
}
