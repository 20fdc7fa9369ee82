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

// Package hardware assembles every sub-chip package into a runnable
// machine and drives it one frame at a time. It is the only package that
// imports all of hardware/cpu, hardware/memory, hardware/vdp, hardware/psg,
// hardware/sgmpsg, hardware/controller and hardware/mixer at once; every one
// of those packages stays ignorant of the others, wired together here
// through the narrow interfaces each already exposes.
package hardware

import (
	"github.com/OpenEmu/JollyCV-Core/hardware/controller"
	"github.com/OpenEmu/JollyCV-Core/hardware/cpu"
	"github.com/OpenEmu/JollyCV-Core/hardware/memory"
	"github.com/OpenEmu/JollyCV-Core/hardware/memory/cartridge"
	"github.com/OpenEmu/JollyCV-Core/hardware/mixer"
	"github.com/OpenEmu/JollyCV-Core/hardware/psg"
	"github.com/OpenEmu/JollyCV-Core/hardware/savestate"
	"github.com/OpenEmu/JollyCV-Core/hardware/sgmpsg"
	"github.com/OpenEmu/JollyCV-Core/hardware/vdp"
	"github.com/OpenEmu/JollyCV-Core/random"
)

// cyclesPerScanline is the nominal Z80 cycle budget per scanline: the Z80
// clock (3.579545 MHz) times 2/3 of the VDP rate divided by 262 scanlines,
// which comes out to 227.9987. Carrying the fractional residue between
// scanlines (and between frames) keeps the long-run average exact without
// ever stepping a fractional cycle.
const cyclesPerScanline = 228

// psgDivider is the Z80-cycles-per-PSG-cycle ratio: both PSGs are clocked at
// the Z80 rate divided by 16.
const psgDivider = 16

// System bundles every emulated component of a ColecoVision and owns the
// frame scheduler that advances them all in lockstep.
type System struct {
	CPU        *cpu.CPU
	Bus        *memory.Bus
	Cart       *cartridge.Cartridge
	VDP        *vdp.VDP
	PSG        *psg.PSG
	SGMPSG     *sgmpsg.PSG
	Controller *controller.Controller
	Mixer      *mixer.Mixer

	extcycs       int
	psgSamples    int
	sgmpsgSamples int
}

// NewSystem wires a complete machine: bios is the 8192-byte BIOS image,
// cart the already-validated loaded ROM, poll the frontend's controller
// callback, z80 the external Z80 interpreter this core never implements
// itself, and resampler/outputRate the mixer's resampling backend and host
// sample rate. NewSystem fails only if outputRate is unsupported.
func NewSystem(z80 cpu.Z80, bios []uint8, cart *cartridge.Cartridge, poll controller.Poll, resampler mixer.Resampler, outputRate int) (*System, error) {
	s := &System{Cart: cart}

	s.Controller = controller.New(poll)
	s.Controller.Reset()
	s.PSG = psg.New()
	s.SGMPSG = sgmpsg.New()

	// The VDP raises NMI through a callback rather than importing
	// hardware/cpu directly, which would create memory -> vdp -> cpu -> bus
	// import cycle. s.CPU isn't constructed yet when the closure is formed,
	// but it is by the time the VDP ever calls it: Reset/NewSystem returns
	// before any Step runs.
	s.VDP = vdp.New(func() { s.CPU.PulseNMI() })

	s.Bus = memory.NewBus(bios, cart, s.VDP, s.PSG, s.SGMPSG, s.Controller, random.New())
	s.CPU = cpu.NewCPU(z80, s.Bus)

	m, err := mixer.New(resampler, outputRate)
	if err != nil {
		return nil, err
	}
	s.Mixer = m

	return s, nil
}

// Reset reinitializes every sub-chip to its power-on state.
func (s *System) Reset() {
	s.CPU.Reset()
	s.Bus.Reset()
	s.VDP.Reset()
	s.PSG.Reset()
	s.SGMPSG.Reset()
	s.Controller.Reset()
	s.Cart.Reset()
	s.extcycs = 0
}

// FrameExec runs exactly one frame, per §4.8: it steps the CPU until each
// scanline's cycle budget is exhausted (carrying the fractional residue
// into the next scanline and the next frame), clocking both PSGs on a
// divide-by-16 counter fed from each instruction's actual cycle count
// (including any I/O-side-effect delay the bus charged), rendering one
// scanline with the VDP after each budget is met, and finally asking the
// mixer to sum, resample and deliver the frame's audio.
func (s *System) FrameExec() {
	s.PSG.ResetFrame()
	s.SGMPSG.ResetFrame()
	s.psgSamples = 0
	s.sgmpsgSamples = 0

	extcycs := s.extcycs
	psgcycs := 0

	numScanlines := s.VDP.NumScanlines()
	for line := 0; line < numScanlines; line++ {
		reqcycs := cyclesPerScanline - extcycs

		linecycs := 0
		for linecycs < reqcycs {
			itercycs := s.CPU.Step()
			itercycs += s.Bus.DrainDelay()
			linecycs += itercycs

			psgcycs += itercycs
			for psgcycs >= psgDivider {
				psgcycs -= psgDivider
				s.psgSamples += s.PSG.Exec()
				s.sgmpsgSamples += s.SGMPSG.Exec()
			}
		}
		extcycs = linecycs - reqcycs

		s.VDP.Exec()
	}

	s.extcycs = extcycs

	s.Mixer.Mix(s.PSG.Samples(), s.SGMPSG.Samples())
}

// PSGSampleCounts returns the number of samples each PSG produced during
// the most recently completed frame, for diagnostics.
func (s *System) PSGSampleCounts() (psgSamples, sgmpsgSamples int) {
	return s.psgSamples, s.sgmpsgSamples
}

// State returns a savestate.State bundling references to every stateful
// component, ready for Save or Load.
func (s *System) State() *savestate.State {
	return &savestate.State{
		Bus:        s.Bus,
		Controller: s.Controller,
		Cartridge:  s.Cart,
		PSG:        s.PSG,
		SGMPSG:     s.SGMPSG,
		VDP:        s.VDP,
		CPU:        s.CPU,
	}
}
