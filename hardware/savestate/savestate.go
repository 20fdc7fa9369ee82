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

// Package savestate composes every sub-chip's own state serialization into
// the single fixed-size blob described in §4.10: system/SGM RAM, the
// controller strobe segment, the two cached controller words, the four
// cartridge page offsets, PSG state, SGM-PSG state, VDP state (including
// full VRAM), and finally the externally-supplied Z80's register file. The
// bus, both PSGs and the VDP serialize themselves through a narrow
// WriteState/ReadState pair; the controller words, the page offsets and the
// Z80 register file are read and restored through their owners' own
// accessors (Cached/SetCached, PageOffsets/SetPageOffsets,
// Snapshot/Restore).
package savestate

import (
	"github.com/OpenEmu/JollyCV-Core/hardware/cpu"
	"github.com/OpenEmu/JollyCV-Core/hardware/memory"
	"github.com/OpenEmu/JollyCV-Core/hardware/psg"
	"github.com/OpenEmu/JollyCV-Core/hardware/sgmpsg"
	"github.com/OpenEmu/JollyCV-Core/hardware/vdp"
	"github.com/OpenEmu/JollyCV-Core/serial"
)

// Bus is the subset of hardware/memory.Bus this package needs.
type Bus interface {
	WriteState(w *serial.Writer)
	ReadState(r *serial.Reader)
}

// Controller is the subset of hardware/controller.Controller this package
// needs.
type Controller interface {
	Cached(port int) uint16
	SetCached(port int, value uint16)
}

// Cartridge is the subset of hardware/memory/cartridge.Cartridge this
// package needs.
type Cartridge interface {
	PageOffsets() [4]uint32
	SetPageOffsets(page [4]uint32)
}

// PSG is the subset of hardware/psg.PSG and hardware/sgmpsg.PSG this package
// needs; both satisfy the same shape.
type PSG interface {
	WriteState(w *serial.Writer)
	ReadState(r *serial.Reader)
}

// VDP is the subset of hardware/vdp.VDP this package needs.
type VDP interface {
	WriteState(w *serial.Writer)
	ReadState(r *serial.Reader)
}

// CPU is the subset of hardware/cpu.CPU this package needs.
type CPU interface {
	Snapshot() cpu.RegisterState
	Restore(state cpu.RegisterState)
	DecodeRegisterState(data []byte) cpu.RegisterState
}

// fixedSize is the combined size of every field this package owns or pulls
// from a sub-chip with a compile-time-known StateSize constant. The Z80
// register file's size is not part of it, since the interpreter is external
// and its register file size is only known at runtime.
const fixedSize = memory.StateSize + 2*2 + 4*4 + psg.StateSize + sgmpsg.StateSize + vdp.StateSize

// Size returns the total fixed size of a save-state blob for a Z80
// interpreter whose register file serializes to cpuRegisterSize bytes.
func Size(cpuRegisterSize int) int {
	return fixedSize + cpuRegisterSize
}

// State bundles references to every stateful component of a running
// machine. The zero value is not usable; every field must be set before
// calling Save or Load.
type State struct {
	Bus        Bus
	Controller Controller
	Cartridge  Cartridge
	PSG        PSG
	SGMPSG     PSG
	VDP        VDP
	CPU        CPU
}

// Save serializes every component into a single byte slice in the fixed
// field order §4.10 specifies.
func (s *State) Save() []byte {
	reg := s.CPU.Snapshot()
	w := serial.NewWriter(Size(reg.Size()))

	s.Bus.WriteState(w)
	w.PushU16(s.Controller.Cached(0))
	w.PushU16(s.Controller.Cached(1))
	for _, page := range s.Cartridge.PageOffsets() {
		w.PushU32(page)
	}
	s.PSG.WriteState(w)
	s.SGMPSG.WriteState(w)
	s.VDP.WriteState(w)
	w.PushBlock(reg.Bytes())

	return w.Bytes()
}

// Load restores every component from data, which must have been produced
// by Save against a machine using an interpreter with the same register
// file size. It rejects a buffer whose size doesn't match the expected
// total, determined from the CPU's current register file size.
func (s *State) Load(data []byte) error {
	regSize := s.CPU.Snapshot().Size()

	r := serial.NewReader(data)
	if err := r.ExpectSize(Size(regSize)); err != nil {
		return err
	}

	s.Bus.ReadState(r)
	s.Controller.SetCached(0, r.PopU16())
	s.Controller.SetCached(1, r.PopU16())

	var page [4]uint32
	for i := range page {
		page[i] = r.PopU32()
	}
	s.Cartridge.SetPageOffsets(page)

	s.PSG.ReadState(r)
	s.SGMPSG.ReadState(r)
	s.VDP.ReadState(r)

	s.CPU.Restore(s.CPU.DecodeRegisterState(r.PopBlock(regSize)))

	return nil
}
