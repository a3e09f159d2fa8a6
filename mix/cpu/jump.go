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

// jumpTo is the common jump-linkage rule: every taken jump except JSJ sets
// rJ to the address of the instruction following the one that jumped (i.e.
// the already-incremented PC), then transfers control to M.
func (c *CPU) jumpTo(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	if !memValid(m) {
		return c.addrOOR(m)
	}
	c.Regs.SetJ(word.FromSigned(int64(c.Regs.PC)))
	c.Regs.PC = m
	return nil
}

// jumpNoLink transfers control to M without touching rJ — JSJ only.
func (c *CPU) jumpNoLink(instr Instruction) *Trap {
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	if !memValid(m) {
		return c.addrOOR(m)
	}
	c.Regs.PC = m
	return nil
}

// opJmp dispatches opcode 39 (the unconditional/overflow/comparison jump
// family) by F.
func (c *CPU) opJmp(instr Instruction) *Trap {
	switch instr.F {
	case 0: // JMP
		return c.jumpTo(instr)
	case 1: // JSJ
		return c.jumpNoLink(instr)
	case 2: // JOV
		overflow := c.Regs.OV
		c.Regs.OV = false
		if overflow {
			return c.jumpTo(instr)
		}
		return nil
	case 3: // JNOV
		overflow := c.Regs.OV
		c.Regs.OV = false
		if !overflow {
			return c.jumpTo(instr)
		}
		return nil
	case 4: // JL
		return c.jumpIf(instr, c.Regs.CI == Less)
	case 5: // JE
		return c.jumpIf(instr, c.Regs.CI == Equal)
	case 6: // JG
		return c.jumpIf(instr, c.Regs.CI == Greater)
	case 7: // JGE
		return c.jumpIf(instr, c.Regs.CI != Less)
	case 8: // JNE
		return c.jumpIf(instr, c.Regs.CI != Equal)
	case 9: // JLE
		return c.jumpIf(instr, c.Regs.CI != Greater)
	default:
		return c.illegal(instr)
	}
}

func (c *CPU) jumpIf(instr Instruction, cond bool) *Trap {
	if !cond {
		return nil
	}
	return c.jumpTo(instr)
}

// opRegJump dispatches opcodes 40..47 (JAN/JAZ/JAP/JANN/JANZ/JANP and the
// same family for I1..I6 and X), testing the signum of the addressed
// register. JX alone additionally accepts F=6 (even) and F=7 (odd), tested
// on the register's magnitude.
func (c *CPU) opRegJump(instr Instruction) *Trap {
	reg := regFamily(instr.C, 40)
	v := c.getReg(reg)

	switch instr.F {
	case 0:
		return c.jumpIf(instr, v.Signum() < 0)
	case 1:
		return c.jumpIf(instr, v.Signum() == 0)
	case 2:
		return c.jumpIf(instr, v.Signum() > 0)
	case 3:
		return c.jumpIf(instr, v.Signum() >= 0)
	case 4:
		return c.jumpIf(instr, v.Signum() != 0)
	case 5:
		return c.jumpIf(instr, v.Signum() <= 0)
	case 6, 7:
		if reg != regX {
			return c.illegal(instr)
		}
		even := v.Mag%2 == 0
		if instr.F == 6 {
			return c.jumpIf(instr, even)
		}
		return c.jumpIf(instr, !even)
	default:
		return c.illegal(instr)
	}
}
