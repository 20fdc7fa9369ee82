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

// Package memory implements the ColecoVision memory model: the 16-bit
// address space decode and the 8-bit I/O port dispatch. "Bus" here is a
// conceptual grouping, not a real hardware wire — it is implemented through
// plain Go method calls, not channels or goroutines, because the whole
// emulation is single-threaded.
package memory

import (
	"github.com/OpenEmu/JollyCV-Core/hardware/memory/cartridge"
	"github.com/OpenEmu/JollyCV-Core/logger"
	"github.com/OpenEmu/JollyCV-Core/random"
	"github.com/OpenEmu/JollyCV-Core/serial"
)

const (
	biosSize   = 0x2000
	sysRAMSize = 0x0400
	sgmRAMSize = 0x8000
)

// VDPPorts is the subset of hardware/vdp.VDP that the bus needs for the
// 0xA0 I/O band.
type VDPPorts interface {
	ReadStatus() uint8
	ReadData() uint8
	WriteControl(data uint8)
	WriteData(data uint8)
}

// PSGPort is the subset of hardware/psg.PSG the bus needs for the SN76489
// write port (0xE0 band).
type PSGPort interface {
	Write(data uint8)
}

// SGMPSGPort is the subset of hardware/sgmpsg.PSG the bus needs for the
// AY-3-8910 register-select/write/read ports (0x50-0x52).
type SGMPSGPort interface {
	SetLatchedRegister(index uint8)
	WriteLatchedRegister(data uint8)
	ReadLatchedRegister() uint8
}

// ControllerPorts is the subset of hardware/controller.Controller the bus needs
// for the 0xE0 controller read band.
type ControllerPorts interface {
	Read(port int, highSegment bool) uint8
}

// Bus implements the memory map and I/O dispatch described in §4.1-§4.3. It
// satisfies hardware/cpu.Bus.
type Bus struct {
	bios []uint8
	cart *cartridge.Cartridge

	sysRAM [sysRAMSize]uint8
	sgmRAM [sgmRAMSize]uint8

	sgmLower bool
	sgmUpper bool

	cseg int // controller strobe segment, 0 or 1

	vdp      VDPPorts
	psg      PSGPort
	sgmpsg   SGMPSGPort
	controls ControllerPorts

	rnd *random.Random

	// ioDelay accumulates extra Z80 cycles charged by I/O side effects (the
	// SN76489 write-latch penalty). The frame scheduler drains this after
	// every CPU step and folds it into the reported instruction cycle count.
	ioDelay int
}

// NewBus is the preferred method of initialisation for the Bus type. bios
// must be exactly 8192 bytes; callers validate this via LoadBIOS beforehand
// when loading from a file, but NewBus itself accepts any slice so that
// tests can supply a short stand-in BIOS.
func NewBus(bios []uint8, cart *cartridge.Cartridge, vdp VDPPorts, psg PSGPort, sgmpsg SGMPSGPort, controls ControllerPorts, rnd *random.Random) *Bus {
	b := &Bus{
		bios:     bios,
		cart:     cart,
		vdp:      vdp,
		psg:      psg,
		sgmpsg:   sgmpsg,
		controls: controls,
		rnd:      rnd,
	}
	b.Reset()
	return b
}

// Reset randomizes system RAM and fills SGM RAM with 0xFF, per §3's
// lifecycle rule, and clears the SGM enable flags and strobe segment.
func (b *Bus) Reset() {
	b.rnd.FillBytes(b.sysRAM[:])
	for i := range b.sgmRAM {
		b.sgmRAM[i] = 0xFF
	}
	b.sgmLower = false
	b.sgmUpper = false
	b.cseg = 0
}

// ReadByte implements hardware/cpu.Bus. It is the CPU-facing name for the
// dispatch the original firmware calls mem_read.
func (b *Bus) ReadByte(addr uint16) uint8 {
	switch {
	case b.sgmLower && addr < 0x2000:
		return b.sgmRAM[addr]

	case addr < 0x2000:
		if int(addr) < len(b.bios) {
			return b.bios[addr]
		}
		return 0xFF

	case b.sgmUpper && addr < 0x8000:
		return b.sgmRAM[addr]

	case addr < 0x6000:
		return 0xFF

	case addr < 0x8000:
		return b.sysRAM[addr&0x03FF]

	default:
		return b.cart.Read(addr)
	}
}

// WriteByte implements hardware/cpu.Bus, the dispatch the original firmware
// calls mem_write. Writes to ROM regions are silent, matching real hardware.
func (b *Bus) WriteByte(addr uint16, data uint8) {
	switch {
	case b.sgmLower && addr < 0x2000:
		b.sgmRAM[addr] = data

	case addr < 0x2000:
		// BIOS ROM: silent.

	case b.sgmUpper && addr < 0x8000:
		b.sgmRAM[addr] = data

	case addr < 0x6000:
		// unmapped expansion: silent.

	case addr < 0x8000:
		b.sysRAM[addr&0x03FF] = data

	default:
		// cartridge ROM: silent.
	}
}

// DrainDelay returns and clears any extra Z80 cycles charged by I/O side
// effects since the last call. The frame scheduler calls this once per CPU
// step.
func (b *Bus) DrainDelay() int {
	d := b.ioDelay
	b.ioDelay = 0
	return d
}

// IORead implements hardware/cpu.Bus, the I/O-port read dispatch.
func (b *Bus) IORead(port uint8) uint8 {
	switch port & 0xE0 {
	case 0xA0:
		if port&1 == 1 {
			return b.vdp.ReadStatus()
		}
		return b.vdp.ReadData()

	case 0xE0:
		p := int((port >> 1) & 1)
		return b.controls.Read(p, b.cseg == 1)
	}

	switch port {
	case 0x52:
		return b.sgmpsg.ReadLatchedRegister()
	}

	return 0xFF
}

// IOWrite implements hardware/cpu.Bus, the I/O-port write dispatch.
func (b *Bus) IOWrite(port uint8, data uint8) {
	switch port & 0xE0 {
	case 0x80:
		b.cseg = 0
		return
	case 0xC0:
		b.cseg = 1
		return
	case 0xA0:
		if port&1 == 1 {
			b.vdp.WriteControl(data)
		} else {
			b.vdp.WriteData(data)
		}
		return
	case 0xE0:
		// the SN76489 needs roughly 32 Z80 cycles to latch a write; without
		// this delay, PCM-via-volume-ramping games produce pitched-up
		// sample playback.
		b.ioDelay += 48
		b.psg.Write(data)
		return
	}

	switch port {
	case 0x50:
		b.sgmpsg.SetLatchedRegister(data & 0x0F)
	case 0x51:
		b.sgmpsg.WriteLatchedRegister(data)
	case 0x53:
		if !b.sgmUpper {
			logger.Log(logger.Allow, "memory", "SGM upper RAM enabled")
		}
		b.sgmUpper = true
	case 0x7F:
		b.sgmLower = (^data)&0x02 != 0
	}
}

// WriteState appends system RAM, SGM RAM and the controller strobe segment
// to w, in that order. The SGM enable flags are deliberately excluded: the
// reference implementation tracks them outside its save-state struct too,
// since they reflect how the cartridge initialized the machine and are
// re-derived by replaying the cartridge's own I/O writes, not restored.
func (b *Bus) WriteState(w *serial.Writer) {
	w.PushBlock(b.sysRAM[:])
	w.PushBlock(b.sgmRAM[:])
	w.PushU8(uint8(b.cseg))
}

// ReadState restores system RAM, SGM RAM and the controller strobe segment
// from r, in the order WriteState wrote them.
func (b *Bus) ReadState(r *serial.Reader) {
	copy(b.sysRAM[:], r.PopBlock(sysRAMSize))
	copy(b.sgmRAM[:], r.PopBlock(sgmRAMSize))
	b.cseg = int(r.PopU8())
}

// StateSize is the fixed number of bytes WriteState writes.
const StateSize = sysRAMSize + sgmRAMSize + 1
