// This file is part of JollyCV-Core.
//
// JollyCV-Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// JollyCV-Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with JollyCV-Core.  If not, see <https://www.gnu.org/licenses/>.

package memory_test

import (
	"testing"

	"github.com/OpenEmu/JollyCV-Core/hardware/memory"
	"github.com/OpenEmu/JollyCV-Core/hardware/memory/cartridge"
	"github.com/OpenEmu/JollyCV-Core/random"
)

type fakeVDP struct {
	status, data   uint8
	control, wdata uint8
}

func (f *fakeVDP) ReadStatus() uint8        { return f.status }
func (f *fakeVDP) ReadData() uint8          { return f.data }
func (f *fakeVDP) WriteControl(data uint8)  { f.control = data }
func (f *fakeVDP) WriteData(data uint8)     { f.wdata = data }

type fakePSG struct{ written uint8 }

func (f *fakePSG) Write(data uint8) { f.written = data }

type fakeSGMPSG struct {
	latched uint8
	written uint8
	toRead  uint8
}

func (f *fakeSGMPSG) SetLatchedRegister(index uint8)  { f.latched = index }
func (f *fakeSGMPSG) WriteLatchedRegister(data uint8) { f.written = data }
func (f *fakeSGMPSG) ReadLatchedRegister() uint8      { return f.toRead }

type fakeControls struct{ value uint8 }

func (f *fakeControls) Read(port int, highSegment bool) uint8 { return f.value }

func newTestBus() (*memory.Bus, *fakeVDP, *fakePSG, *fakeSGMPSG, *fakeControls) {
	bios := make([]uint8, 0x2000)
	cart := cartridge.New(make([]uint8, 0x2000), false)
	vdp := &fakeVDP{}
	psg := &fakePSG{}
	sgmpsg := &fakeSGMPSG{}
	controls := &fakeControls{value: 0x80}
	b := memory.NewBus(bios, cart, vdp, psg, sgmpsg, controls, random.New())
	return b, vdp, psg, sgmpsg, controls
}

func TestSystemRAMMirror(t *testing.T) {
	b, _, _, _, _ := newTestBus()

	b.WriteByte(0x6000, 0x42)
	if got := b.ReadByte(0x7C00); got != 0x42 {
		t.Fatalf("expected 1K mirror to reflect write, got %#x", got)
	}
}

func TestSGMOverlayPrecedence(t *testing.T) {
	b, _, _, _, _ := newTestBus()

	b.IOWrite(0x53, 0) // enable SGM upper RAM
	b.WriteByte(0x7000, 0x99)
	if got := b.ReadByte(0x7000); got != 0x99 {
		t.Fatalf("expected SGM upper RAM to take precedence over system RAM, got %#x", got)
	}

	b.IOWrite(0x7F, 0xFF &^ 0x02) // enable SGM lower RAM (bit cleared)
	b.WriteByte(0x0100, 0x55)
	if got := b.ReadByte(0x0100); got != 0x55 {
		t.Fatalf("expected SGM lower RAM to take precedence over BIOS, got %#x", got)
	}
}

func TestPSGWriteChargesDelay(t *testing.T) {
	b, _, psg, _, _ := newTestBus()

	b.IOWrite(0xE0, 0x9F)
	if psg.written != 0x9F {
		t.Fatalf("expected PSG to receive write, got %#x", psg.written)
	}
	if got := b.DrainDelay(); got != 48 {
		t.Fatalf("expected 48 cycle penalty, got %d", got)
	}
	if got := b.DrainDelay(); got != 0 {
		t.Fatalf("expected delay to be drained, got %d", got)
	}
}

func TestControllerStrobeSegment(t *testing.T) {
	b, _, _, _, controls := newTestBus()

	controls.value = 0x80
	if got := b.IORead(0xE0); got != 0x80 {
		t.Fatalf("expected baseline controller read 0x80, got %#x", got)
	}

	b.IOWrite(0xC0, 0) // select high segment
	controls.value = 0x10
	if got := b.IORead(0xE0); got != 0x10 {
		t.Fatalf("expected high segment read, got %#x", got)
	}
}

func TestSGMPSGRegisterRoundTrip(t *testing.T) {
	b, _, _, sgmpsg, _ := newTestBus()

	b.IOWrite(0x50, 0x07)
	if sgmpsg.latched != 0x07 {
		t.Fatalf("expected register 7 latched, got %d", sgmpsg.latched)
	}

	b.IOWrite(0x51, 0x3F)
	if sgmpsg.written != 0x3F {
		t.Fatalf("expected 0x3F written to latched register, got %#x", sgmpsg.written)
	}

	sgmpsg.toRead = 0x2A
	if got := b.IORead(0x52); got != 0x2A {
		t.Fatalf("expected readback of latched register, got %#x", got)
	}
}
