/*
 * mix370 cpu package test cases.
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
	"errors"
	"testing"

	"github.com/rcornwell/mix370/mix/device"
	"github.com/rcornwell/mix370/mix/trap"
)

// fakeDevice is a minimal device.Device + device.Ticker for exercising
// IN/OUT/IOC/JBUS/JRED without pulling in a real device implementation.
type fakeDevice struct {
	device.BusyTimer
	readErr, writeErr, ctrlErr error
	reads, writes, ctrls       int
	lastCtrl                   int
}

func (d *fakeDevice) BlockSize() int { return 1 }

func (d *fakeDevice) Read(mem device.Memory, start int) error {
	d.reads++
	if d.readErr != nil {
		return d.readErr
	}
	d.MarkBusy()
	return nil
}

func (d *fakeDevice) Write(mem device.Memory, start int) error {
	d.writes++
	if d.writeErr != nil {
		return d.writeErr
	}
	d.MarkBusy()
	return nil
}

func (d *fakeDevice) Control(m int) error {
	d.ctrls++
	d.lastCtrl = m
	return d.ctrlErr
}

// TestJbusJumpsWhileBusyThenClears is spec.md §8 scenario 6's busy-device
// polling idiom: JBUS jumps while the device is busy, and once it ages out
// (one Step's worth of TickAll) JBUS falls through instead.
func TestJbusJumpsWhileBusyThenClears(t *testing.T) {
	c := newTestCPU()
	dev := &fakeDevice{}
	c.Devices.Add(5, dev)

	if _, tr := c.loadAndStep(asm(50, 0, 5, 36)); tr != nil { // IN 50(5)
		t.Fatalf("IN trapped: %v", tr)
	}
	if !dev.IsBusy() {
		t.Fatal("device must be busy immediately after IN")
	}

	c.Mem.Set(c.Regs.PC, asm(100, 0, 5, 34)) // JBUS 100(5)
	if _, tr := c.Step(); tr != nil {
		t.Fatalf("JBUS trapped: %v", tr)
	}
	if c.Regs.PC != 100 {
		t.Fatalf("JBUS while busy must jump, PC = %d, want 100", c.Regs.PC)
	}
	// Step's own TickAll ages the busy timer once per instruction retired,
	// including the JBUS that just ran, so the device is idle again by now.
	if dev.IsBusy() {
		t.Fatal("device should have aged out of busy after one more Step")
	}

	c.Mem.Set(c.Regs.PC, asm(999, 0, 5, 34)) // JBUS 999(5), device now idle
	pcBefore := c.Regs.PC
	if _, tr := c.Step(); tr != nil {
		t.Fatalf("JBUS trapped: %v", tr)
	}
	if c.Regs.PC != pcBefore+1 {
		t.Errorf("JBUS on an idle device must fall through, PC = %d, want %d", c.Regs.PC, pcBefore+1)
	}
}

// TestJredJumpsWhileIdle checks JRED's opposite polarity from JBUS.
func TestJredJumpsWhileIdle(t *testing.T) {
	c := newTestCPU()
	dev := &fakeDevice{}
	c.Devices.Add(5, dev)

	if _, tr := c.loadAndStep(asm(50, 0, 5, 38)); tr != nil { // JRED 50(5), idle
		t.Fatalf("JRED trapped: %v", tr)
	}
	if c.Regs.PC != 50 {
		t.Errorf("JRED on an idle device must jump, PC = %d, want 50", c.Regs.PC)
	}
}

// TestIocDispatchesControlCode checks IOC passes its M operand through to
// the device's Control method untouched.
func TestIocDispatchesControlCode(t *testing.T) {
	c := newTestCPU()
	dev := &fakeDevice{}
	c.Devices.Add(3, dev)

	if _, tr := c.loadAndStep(asm(7, 0, 3, 35)); tr != nil { // IOC 7(3)
		t.Fatalf("IOC trapped: %v", tr)
	}
	if dev.ctrls != 1 || dev.lastCtrl != 7 {
		t.Errorf("IOC 7(3) delivered ctrls=%d lastCtrl=%d, want 1 and 7", dev.ctrls, dev.lastCtrl)
	}
}

// TestDeviceAbsentTraps checks addressing an unpopulated device slot raises
// DeviceAbsent instead of a nil-pointer fault.
func TestDeviceAbsentTraps(t *testing.T) {
	c := newTestCPU()

	_, tr := c.loadAndStep(asm(0, 0, 9, 36)) // IN on slot 9, never populated
	if tr == nil {
		t.Fatal("expected a trap addressing an absent device")
	}
	if tr.Kind != trap.DeviceAbsent {
		t.Errorf("trap kind = %v, want DeviceAbsent", tr.Kind)
	}
}

// TestHostIOFailureWrapsDeviceError checks a device's own I/O error surfaces
// as a HostIOFailure trap carrying its message.
func TestHostIOFailureWrapsDeviceError(t *testing.T) {
	c := newTestCPU()
	dev := &fakeDevice{writeErr: errors.New("disk on fire")}
	c.Devices.Add(2, dev)

	_, tr := c.loadAndStep(asm(0, 0, 2, 37)) // OUT 0(2)
	if tr == nil {
		t.Fatal("expected a trap when the device reports a write error")
	}
	if tr.Kind != trap.HostIOFailure {
		t.Errorf("trap kind = %v, want HostIOFailure", tr.Kind)
	}
}
