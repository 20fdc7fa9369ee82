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

package cpu

import "encoding/binary"

// FakeZ80 is a minimal Z80 stand-in used by tests throughout this module
// that need to drive the bus and frame scheduler without a real instruction
// interpreter. It does not decode opcodes; Step always reports a fixed
// cycle count and optionally runs a caller-supplied probe against the bus.
type FakeZ80 struct {
	bus Bus

	// CyclesPerStep is returned by every call to Step.
	CyclesPerStep int

	// OnStep, if set, is called at the start of every Step before the fixed
	// cycle count is returned. Tests use this to poke bus reads/writes that
	// a real instruction would have performed.
	OnStep func(bus Bus)

	nmiCount int
	irqCount int
	irqData  uint8

	pc uint16
}

// NewFakeZ80 returns a FakeZ80 reporting cyclesPerStep cycles on every Step.
func NewFakeZ80(cyclesPerStep int) *FakeZ80 {
	return &FakeZ80{CyclesPerStep: cyclesPerStep}
}

// SetBus implements Z80.
func (f *FakeZ80) SetBus(bus Bus) {
	f.bus = bus
}

// Step implements Z80.
func (f *FakeZ80) Step() int {
	if f.OnStep != nil {
		f.OnStep(f.bus)
	}
	return f.CyclesPerStep
}

// PulseNMI implements Z80.
func (f *FakeZ80) PulseNMI() {
	f.nmiCount++
}

// NMICount returns the number of times PulseNMI has been called since the
// last Reset.
func (f *FakeZ80) NMICount() int {
	return f.nmiCount
}

// PulseIRQ implements Z80.
func (f *FakeZ80) PulseIRQ(data uint8) {
	f.irqCount++
	f.irqData = data
}

// Reset implements Z80.
func (f *FakeZ80) Reset() {
	f.nmiCount = 0
	f.irqCount = 0
	f.pc = 0
}

// fakeRegisterState is the RegisterState implementation for FakeZ80: just
// the program counter, enough to exercise the save-state round trip.
type fakeRegisterState struct {
	pc uint16
}

func (s fakeRegisterState) Bytes() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, s.pc)
	return b
}

func (s fakeRegisterState) Size() int { return 2 }

// Snapshot implements Z80.
func (f *FakeZ80) Snapshot() RegisterState {
	return fakeRegisterState{pc: f.pc}
}

// Restore implements Z80.
func (f *FakeZ80) Restore(state RegisterState) {
	if s, ok := state.(fakeRegisterState); ok {
		f.pc = s.pc
	}
}

// DecodeRegisterState implements Z80.
func (f *FakeZ80) DecodeRegisterState(data []byte) RegisterState {
	return fakeRegisterState{pc: binary.LittleEndian.Uint16(data)}
}
