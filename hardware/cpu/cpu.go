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

// Package cpu owns the Z80 interpreter and exposes the handful of entry
// points the rest of the core needs: step one instruction, pulse an
// interrupt line, reset, and snapshot/restore the register file. The
// interpreter itself is supplied by the caller and is treated as an opaque
// collaborator — this package never decodes an opcode.
package cpu

// Z80 is the interface an external Z80 interpreter must satisfy to be driven
// by this core. The bus hooks (ReadByte/WriteByte/IORead/IOWrite) are wired
// to hardware/memory.Bus by the System aggregate at construction time.
type Z80 interface {
	// Step executes exactly one instruction and returns the number of Z80
	// cycles it consumed. Cycles charged by I/O side effects (see
	// hardware/memory's PSG write-delay penalty) are not part of this count:
	// the frame scheduler adds them itself via memory.Bus.DrainDelay.
	Step() (cycles int)

	// PulseNMI raises a non-maskable interrupt. The VDP calls this via the
	// System aggregate when it wants to signal VBlank or a line interrupt.
	PulseNMI()

	// PulseIRQ raises a maskable interrupt carrying the given data byte.
	// Unused by stock ColecoVision hardware but part of the Z80 contract.
	PulseIRQ(data uint8)

	// Reset reinitializes the interpreter's internal state (registers,
	// flags, interrupt state) as if the CPU had just been powered on.
	Reset()

	// SetBus wires the four bus hooks. Called once, by System, before the
	// first Step.
	SetBus(bus Bus)

	// Snapshot returns an opaque, deep copy of the interpreter's full
	// register file and pending-interrupt state, suitable for storing in a
	// save state and restoring later via Restore.
	Snapshot() RegisterState

	// Restore replaces the interpreter's register file and pending-interrupt
	// state with a previously obtained Snapshot.
	Restore(state RegisterState)

	// DecodeRegisterState parses a byte slice previously produced by some
	// RegisterState's Bytes() back into a RegisterState Restore can consume.
	// hardware/savestate calls this when loading a save-state file, since it
	// only has raw bytes and no RegisterState value to pass to Restore.
	DecodeRegisterState(data []byte) RegisterState
}

// Bus is the set of four hooks the Z80 interpreter calls into on every
// memory or I/O access. hardware/memory.Bus implements this interface.
type Bus interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, value uint8)
	IORead(port uint8) uint8
	IOWrite(port uint8, value uint8)
}

// RegisterState is an opaque snapshot of a Z80 interpreter's register file.
// hardware/savestate treats it as a black box: it asks the interpreter to
// serialize/deserialize its own bytes rather than reaching into fields this
// package has no business knowing about, since the interpreter is external.
type RegisterState interface {
	// Bytes returns a stable binary encoding of the register file, used
	// directly by hardware/savestate as a fixed-size block.
	Bytes() []byte

	// Size is the fixed number of bytes Bytes() always returns. Used to
	// validate save-state files without first decoding them.
	Size() int
}

// CPU wraps an external Z80 interpreter with the bookkeeping the frame
// scheduler needs: a place to hang the interpreter, and pass-through methods
// so callers never need to import the interpreter's package directly.
type CPU struct {
	z80 Z80
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(z80 Z80, bus Bus) *CPU {
	c := &CPU{z80: z80}
	c.z80.SetBus(bus)
	return c
}

// Step executes one instruction and returns the cycles it consumed.
func (c *CPU) Step() int {
	return c.z80.Step()
}

// PulseNMI raises a non-maskable interrupt on the wrapped interpreter.
func (c *CPU) PulseNMI() {
	c.z80.PulseNMI()
}

// PulseIRQ raises a maskable interrupt carrying data.
func (c *CPU) PulseIRQ(data uint8) {
	c.z80.PulseIRQ(data)
}

// Reset reinitializes the wrapped interpreter.
func (c *CPU) Reset() {
	c.z80.Reset()
}

// Snapshot returns the interpreter's register-file state for save states.
func (c *CPU) Snapshot() RegisterState {
	return c.z80.Snapshot()
}

// Restore replaces the interpreter's register-file state.
func (c *CPU) Restore(state RegisterState) {
	c.z80.Restore(state)
}

// DecodeRegisterState parses a byte slice previously produced by Bytes()
// back into a RegisterState, for hardware/savestate.
func (c *CPU) DecodeRegisterState(data []byte) RegisterState {
	return c.z80.DecodeRegisterState(data)
}
