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

package cpu

import "github.com/rcornwell/mix370/mix/word"

// opMOVE copies F consecutive words starting at M to the destination
// addressed by rI1, then advances rI1 by F (spec.md §4.5). The copy reads
// its full source range before writing, so an overlapping move behaves
// predictably regardless of direction.
func (c *CPU) opMOVE(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	count := int(instr.F)
	if count == 0 {
		return nil
	}

	dest := int(word.ToSigned(c.Regs.Index(regI1)))

	buf := make([]word.Word, count)
	for i := 0; i < count; i++ {
		if !memValid(m + i) {
			return c.addrOOR(m + i)
		}
		buf[i], _ = c.Mem.Get(m + i)
	}
	for i := 0; i < count; i++ {
		if !memValid(dest + i) {
			return c.addrOOR(dest + i)
		}
		c.Mem.Set(dest+i, buf[i])
	}

	c.Regs.SetIndex(regI1, word.FromSigned(word.ToSigned(c.Regs.Index(regI1))+int64(count)))
	return nil
}
