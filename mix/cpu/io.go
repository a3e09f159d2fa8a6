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

import (
	"github.com/rcornwell/mix370/mix/device"
	"github.com/rcornwell/mix370/mix/trap"
)

// device resolves the device addressed by an instruction's F field (the
// device-number convention IN/OUT/IOC/JBUS/JRED all share), raising
// DeviceAbsent when the slot is unpopulated.
func (c *CPU) device(instr Instruction) (device.Device, *Trap) {
	dev, ok := c.Devices.Get(int(instr.F))
	if !ok {
		return nil, trap.New(trap.DeviceAbsent, c.Regs.PC, instr.W, "")
	}
	return dev, nil
}

// opJBUS implements JBUS (C 34): jump to M, saving rJ, iff device F is busy.
func (c *CPU) opJBUS(instr Instruction) *Trap {
	dev, tr := c.device(instr)
	if tr != nil {
		return tr
	}
	if !dev.IsBusy() {
		return nil
	}
	return c.jumpTo(instr)
}

// opJRED implements JRED (C 38): jump to M, saving rJ, iff device F is not
// busy.
func (c *CPU) opJRED(instr Instruction) *Trap {
	dev, tr := c.device(instr)
	if tr != nil {
		return tr
	}
	if dev.IsBusy() {
		return nil
	}
	return c.jumpTo(instr)
}

// opIOC implements IOC (C 35): device F performs control operation M.
func (c *CPU) opIOC(instr Instruction) *Trap {
	dev, tr := c.device(instr)
	if tr != nil {
		return tr
	}
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	if err := dev.Control(m); err != nil {
		return trap.New(trap.HostIOFailure, c.Regs.PC, instr.W, err.Error())
	}
	return nil
}

// opIN implements IN (C 36): device F reads its block into memory at M.
func (c *CPU) opIN(instr Instruction) *Trap {
	dev, tr := c.device(instr)
	if tr != nil {
		return tr
	}
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	if err := dev.Read(c.Mem, m); err != nil {
		return trap.New(trap.HostIOFailure, c.Regs.PC, instr.W, err.Error())
	}
	return nil
}

// opOUT implements OUT (C 37): device F writes its block from memory at M.
func (c *CPU) opOUT(instr Instruction) *Trap {
	dev, tr := c.device(instr)
	if tr != nil {
		return tr
	}
	m, tr := c.effectiveAddress(instr)
	if tr != nil {
		return tr
	}
	if err := dev.Write(c.Mem, m); err != nil {
		return trap.New(trap.HostIOFailure, c.Regs.PC, instr.W, err.Error())
	}
	return nil
}
