package word

/*
 * mix370 word package test cases.
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

import (
	"math/rand"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		sign  bool
		bytes [5]byte
	}{
		{false, [5]byte{0, 0, 0, 0, 0}},
		{true, [5]byte{0, 0, 0, 0, 0}},
		{false, [5]byte{0x01, 0x02, 0x03, 0x04, 0x05}},
		{true, [5]byte{0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, c := range cases {
		w := Pack(c.sign, c.bytes)
		sign, bytes := Unpack(w)
		if sign != c.sign || bytes != c.bytes {
			t.Errorf("Pack/Unpack round trip: got sign=%v bytes=%v wanted sign=%v bytes=%v",
				sign, bytes, c.sign, c.bytes)
		}
	}
}

func TestNegativeZeroDistinctFromPositiveZero(t *testing.T) {
	if !Zero.IsZero() || !NegZero.IsZero() {
		t.Fatalf("both Zero and NegZero must report IsZero")
	}
	if Zero.Neg == NegZero.Neg {
		t.Errorf("Zero and NegZero must carry different sign bits")
	}
	if Zero.Signum() != 0 || NegZero.Signum() != 0 {
		t.Errorf("Signum of either zero representation must be 0")
	}
}

func TestToSignedFromSigned(t *testing.T) {
	cases := []int64{0, 1, -1, 1099511627775, -1099511627775}
	for _, v := range cases {
		w := FromSigned(v)
		got := ToSigned(w)
		if got != v {
			t.Errorf("FromSigned(%d) -> ToSigned = %d, wanted %d", v, got, v)
		}
	}
}

func TestDecodeFieldRejectsBadSpec(t *testing.T) {
	if _, ok := DecodeField(byte(3*8 + 1)); ok {
		t.Errorf("DecodeField(F for L=3,R=1) should report ok=false (L>R)")
	}
	if _, ok := DecodeField(byte(0*8 + 6)); ok {
		t.Errorf("DecodeField(F for L=0,R=6) should report ok=false (R>5)")
	}
	f, ok := DecodeField(9) // L=1,R=1
	if !ok || f.L != 1 || f.R != 1 {
		t.Errorf("DecodeField(9) = %+v, ok=%v; wanted L=1 R=1 ok=true", f, ok)
	}
}

// TestSpliceIsSliceInverse checks the round-trip property documented on
// Splice: Splice(dest, Slice(dest, f), f) always returns dest unchanged,
// for every legal field spec and a spread of random dest words.
func TestSpliceIsSliceInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < testCycles; trial++ {
		dest := Word{Neg: rng.Intn(2) == 1, Mag: rng.Uint64() & FullWordMask}
		for l := 0; l <= 5; l++ {
			for r := l; r <= 5; r++ {
				f := Field{L: l, R: r}
				got := Splice(dest, Slice(dest, f), f)
				if got != dest {
					t.Errorf("Splice(dest, Slice(dest, %+v), %+v) = %+v, wanted %+v", f, f, got, dest)
				}
			}
		}
	}
}

func TestSliceSignFollowsLOnly(t *testing.T) {
	dest := Word{Neg: true, Mag: 0x0102030405}

	whole := Slice(dest, Field{L: 0, R: 5})
	if !whole.Neg {
		t.Errorf("Slice with L=0 must carry dest's sign")
	}

	partial := Slice(dest, Field{L: 1, R: 5})
	if partial.Neg {
		t.Errorf("Slice with L>0 must always be positive")
	}
}

const testCycles = 200
