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

package savestate_test

import (
	"testing"

	"github.com/OpenEmu/JollyCV-Core/hardware/controller"
	"github.com/OpenEmu/JollyCV-Core/hardware/cpu"
	"github.com/OpenEmu/JollyCV-Core/hardware/memory"
	"github.com/OpenEmu/JollyCV-Core/hardware/memory/cartridge"
	"github.com/OpenEmu/JollyCV-Core/hardware/psg"
	"github.com/OpenEmu/JollyCV-Core/hardware/savestate"
	"github.com/OpenEmu/JollyCV-Core/hardware/sgmpsg"
	"github.com/OpenEmu/JollyCV-Core/hardware/vdp"
	"github.com/OpenEmu/JollyCV-Core/random"
)

type machine struct {
	bus     *memory.Bus
	ctrl    *controller.Controller
	cart    *cartridge.Cartridge
	psg     *psg.PSG
	sgmpsg  *sgmpsg.PSG
	vdp     *vdp.VDP
	cpu     *cpu.CPU
	fakez80 *cpu.FakeZ80
}

func newMachine(rom []uint8, isMega bool) *machine {
	m := &machine{}
	m.cart = cartridge.New(rom, isMega)
	m.ctrl = controller.New(func(port int) uint16 { return controller.Baseline })
	m.psg = psg.New()
	m.sgmpsg = sgmpsg.New()
	m.vdp = vdp.New(func() {})
	m.fakez80 = cpu.NewFakeZ80(4)

	bios := make([]uint8, 0x2000)
	m.bus = memory.NewBus(bios, m.cart, m.vdp, m.psg, m.sgmpsg, m.ctrl, random.New())
	m.cpu = cpu.NewCPU(m.fakez80, m.bus)
	return m
}

func (m *machine) state() *savestate.State {
	return &savestate.State{
		Bus:        m.bus,
		Controller: m.ctrl,
		Cartridge:  m.cart,
		PSG:        m.psg,
		SGMPSG:     m.sgmpsg,
		VDP:        m.vdp,
		CPU:        m.cpu,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rom := make([]uint8, 0x4000*4)
	for bank := 0; bank < 4; bank++ {
		rom[bank*0x4000] = uint8(bank)
	}

	src := newMachine(rom, true)

	src.psg.Write(0xBA) // latch channel 1, attenuator type, value 0x0A

	src.sgmpsg.SetLatchedRegister(8)
	src.sgmpsg.WriteLatchedRegister(0x0D)

	src.cart.Read(0xFFC2) // select bank 2 in the switchable window

	src.ctrl.Read(0, false) // cache a polled value

	blob := src.state().Save()
	if len(blob) != savestate.Size(2) {
		t.Fatalf("Save produced %d bytes, want %d", len(blob), savestate.Size(2))
	}

	dst := newMachine(rom, true)
	if err := dst.state().Load(blob); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := dst.sgmpsg.ReadLatchedRegister(); got != 0x0D {
		t.Fatalf("sgmpsg register not restored: got %#x", got)
	}
	if got := dst.cart.PageOffsets(); got != src.cart.PageOffsets() {
		t.Fatalf("cartridge page offsets not restored: got %v, want %v", got, src.cart.PageOffsets())
	}
	if got := dst.ctrl.Cached(0); got != src.ctrl.Cached(0) {
		t.Fatalf("controller cache not restored: got %#x, want %#x", got, src.ctrl.Cached(0))
	}
}

func TestLoadRejectsMismatchedSize(t *testing.T) {
	rom := make([]uint8, 0x2000)
	m := newMachine(rom, false)

	if err := m.state().Load([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected an error for a truncated save-state buffer")
	}
}
