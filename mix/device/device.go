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

// Package device defines the capability set every MIX I/O device implements
// and the fixed-size table the machine looks devices up in by number.
// Grounded on the teacher's channel device interface (StartIO/StartCmd/
// HaltIO/InitDev), narrowed to the four operations MIX's IN/OUT/IOC/JBUS
// family actually needs.
package device

import "github.com/rcornwell/mix370/mix/word"

// NumSlots is the number of device numbers MIX's F field can address (0..20
// per spec; the table is sized to the full 0..20 range used by IN/OUT/IOC/
// JBUS/JRED's F operand).
const NumSlots = 21

// Device is the capability set a MIX I/O device must provide.
type Device interface {
	// BlockSize is the number of words one IN/OUT transfers.
	BlockSize() int
	// Read fills BlockSize words starting at start from the device into
	// mem. Returns an error only on host I/O failure.
	Read(mem Memory, start int) error
	// Write transfers BlockSize words starting at start from mem to the
	// device. Returns an error only on host I/O failure.
	Write(mem Memory, start int) error
	// Control performs device-specific IOC sub-operation m.
	Control(m int) error
	// IsBusy reports whether the device is still completing its last
	// operation; JBUS/JRED poll this.
	IsBusy() bool
}

// Memory is the narrow slice of mix/memory.Memory a device needs, so this
// package does not import memory and create a dependency cycle.
type Memory interface {
	Get(addr int) (word.Word, bool)
	Set(addr int, w word.Word) bool
}

// Ticker is implemented by devices that need to age out their busy state
// once per machine step. The driver calls Tick on every populated slot
// after each instruction retires, regardless of which device (if any) that
// instruction touched — it is how "busy for one subsequent instruction"
// (spec §4.6) is realised without baking step-counting into every device.
type Ticker interface {
	Tick()
}

// BusyTimer is an embeddable helper implementing the busy-for-one-
// subsequent-instruction rule: MarkBusy is called when an IN/OUT/IOC
// completes, and Tick is called once per machine step thereafter.
type BusyTimer struct {
	remaining int
}

// MarkBusy marks the device busy through the end of the next instruction.
func (b *BusyTimer) MarkBusy() { b.remaining = 2 }

// IsBusy reports whether the device is still busy.
func (b *BusyTimer) IsBusy() bool { return b.remaining > 0 }

// Tick ages the busy state by one machine step.
func (b *BusyTimer) Tick() {
	if b.remaining > 0 {
		b.remaining--
	}
}

// Table is the fixed-size registry of populated device slots, keyed by
// device number (the F field of IN/OUT/IOC/JBUS/JRED).
type Table struct {
	slots [NumSlots]Device
}

// NewTable returns an empty device table.
func NewTable() *Table {
	return &Table{}
}

// Add registers dev at devNum, replacing whatever occupied that slot.
func (t *Table) Add(devNum int, dev Device) {
	t.slots[devNum] = dev
}

// Get returns the device at devNum, or ok=false if the slot is unpopulated
// or devNum is out of range — the "device absent" fatal condition.
func (t *Table) Get(devNum int) (dev Device, ok bool) {
	if devNum < 0 || devNum >= NumSlots {
		return nil, false
	}
	dev = t.slots[devNum]
	return dev, dev != nil
}

// TickAll ages the busy state of every populated device by one machine
// step; devices that don't implement Ticker are skipped.
func (t *Table) TickAll() {
	for _, dev := range t.slots {
		if dev == nil {
			continue
		}
		if tk, ok := dev.(Ticker); ok {
			tk.Tick()
		}
	}
}
