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

// Package sgmpsg emulates the AY-3-8910 PSG carried by the Super Game
// Module expansion: three tone channels, a shared noise generator, and an
// 8-shape envelope generator that can drive any channel's amplitude.
package sgmpsg

import "github.com/OpenEmu/JollyCV-Core/serial"

// dontCare masks each of the 16 registers' don't-care bits before storage.
var dontCare = [16]uint8{
	0xFF, 0x0F, 0xFF, 0x0F, 0xFF, 0x0F, 0x1F, 0xFF,
	0x1F, 0x1F, 0x1F, 0xFF, 0xFF, 0x0F, 0xFF, 0xFF,
}

// vtable converts a 4-bit amplitude or envelope level to a linear output.
var vtable = [16]uint16{
	0, 40, 60, 86, 124, 186, 264, 440,
	518, 840, 1196, 1526, 2016, 2602, 3300, 4096,
}

const noiseLFSRSeed = uint32(1)

// PSG is the AY-3-8910 state machine. The zero value is not usable; build
// one with New.
type PSG struct {
	regs    [16]uint8
	latched uint8

	tonePeriod  [3]uint16
	toneCounter [3]uint16
	sign        [3]bool

	amplitude [3]uint8
	envMode   [3]bool

	tdisable [3]bool
	ndisable [3]bool

	noisePeriod  uint16
	noiseCounter uint16
	nshift       uint32

	envPeriod  uint16
	envCounter uint16
	eseg       int
	estep      int
	evol       uint8

	buf []uint16
}

// New is the preferred method of initialisation for the PSG type.
func New() *PSG {
	p := &PSG{buf: make([]uint16, 0, 1024)}
	p.Reset()
	return p
}

// Reset silences all channels and reseeds the noise LFSR.
func (p *PSG) Reset() {
	p.regs = [16]uint8{}
	p.latched = 0
	p.tonePeriod = [3]uint16{1, 1, 1}
	p.toneCounter = [3]uint16{}
	p.sign = [3]bool{}
	p.amplitude = [3]uint8{}
	p.envMode = [3]bool{}
	p.tdisable = [3]bool{}
	p.ndisable = [3]bool{}
	p.noisePeriod = 1
	p.noiseCounter = 0
	p.nshift = noiseLFSRSeed
	p.envPeriod = 0
	p.envCounter = 0
	p.eseg = 0
	p.estep = 0
	p.evol = 0
}

// SetLatchedRegister selects the register subsequent WriteLatchedRegister
// calls target, the AY-3-8910's register-select port.
func (p *PSG) SetLatchedRegister(index uint8) {
	p.latched = index & 0x0F
}

// WriteLatchedRegister writes data into the currently latched register and
// recomputes whatever derived state that register feeds.
func (p *PSG) WriteLatchedRegister(data uint8) {
	data &= dontCare[p.latched]
	p.regs[p.latched] = data

	switch p.latched {
	case 0, 1, 2, 3, 4, 5:
		ch := p.latched / 2
		period := uint16(p.regs[2*ch]) | uint16(p.regs[2*ch+1])<<8
		if period == 0 {
			period = 1
		}
		p.tonePeriod[ch] = period

	case 6:
		period := uint16(p.regs[6])
		if period == 0 {
			period = 1
		}
		p.noisePeriod = period

	case 7:
		for i := 0; i < 3; i++ {
			p.tdisable[i] = p.regs[7]&(1<<uint(i)) != 0
			p.ndisable[i] = p.regs[7]&(1<<uint(3+i)) != 0
		}

	case 8, 9, 10:
		ch := p.latched - 8
		p.amplitude[ch] = data & 0x0F
		p.envMode[ch] = data&0x10 != 0

	case 11, 12:
		p.envPeriod = uint16(p.regs[11]) | uint16(p.regs[12])<<8

	case 13:
		p.envCounter = 0
		p.eseg = 0
		p.envReset()
	}
}

// ReadLatchedRegister reads back the currently latched register.
func (p *PSG) ReadLatchedRegister() uint8 {
	return p.regs[p.latched]
}

// envReset recomputes evol and resets estep, following the continuing vs.
// holding shapes described for register 13.
func (p *PSG) envReset() {
	shape := p.regs[13]
	if p.eseg == 1 {
		switch shape {
		case 8, 11, 13, 14:
			p.evol = 15
		default:
			p.evol = 0
		}
	} else {
		if shape&0x04 != 0 {
			p.evol = 0
		} else {
			p.evol = 15
		}
	}
	p.estep = 0
}

// Exec advances the chip by one PSG cycle, mixes the three tone channels
// against the shared noise generator, and appends the result to the
// current frame's sample buffer. It always returns 1.
func (p *PSG) Exec() int {
	for i := 0; i < 3; i++ {
		p.toneCounter[i]++
		if p.toneCounter[i] >= p.tonePeriod[i] {
			p.toneCounter[i] = 0
			p.sign[i] = !p.sign[i]
		}
	}

	p.noiseCounter++
	if p.noiseCounter >= p.noisePeriod<<1 {
		p.noiseCounter = 0
		p.nshift = (p.nshift >> 1) | (((p.nshift ^ (p.nshift >> 3)) & 1) << 16)
	}

	p.envCounter++
	if p.envCounter >= p.envPeriod<<1 {
		p.envCounter = 0
		p.advanceEnvelope()
	}

	p.buf = append(p.buf, p.mix())
	return 1
}

func (p *PSG) advanceEnvelope() {
	if p.estep > 0 {
		shape := p.regs[13]
		if p.eseg == 1 {
			switch shape {
			case 10, 12:
				if p.evol < 15 {
					p.evol++
				}
			case 8, 14:
				if p.evol > 0 {
					p.evol--
				}
			}
		} else {
			if shape&0x04 != 0 {
				if p.evol < 15 {
					p.evol++
				}
			} else {
				if p.evol > 0 {
					p.evol--
				}
			}
		}
	}

	p.estep++
	if p.estep == 16 {
		if p.regs[13]&0x09 == 0x08 {
			p.eseg = 1 - p.eseg
		} else {
			p.eseg = 1
		}
		p.envReset()
	}
}

func (p *PSG) mix() uint16 {
	noiseBit := p.nshift&1 != 0

	var sum uint16
	for i := 0; i < 3; i++ {
		out := (p.tdisable[i] || p.sign[i]) && (p.ndisable[i] || noiseBit)
		if !out {
			continue
		}
		if p.envMode[i] {
			sum += vtable[p.evol]
		} else {
			sum += vtable[p.amplitude[i]]
		}
	}
	return sum
}

// Samples returns the samples accumulated since the last ResetFrame.
func (p *PSG) Samples() []uint16 {
	return p.buf
}

// ResetFrame clears the sample buffer at the start of a new frame.
func (p *PSG) ResetFrame() {
	p.buf = p.buf[:0]
}

// WriteState appends the PSG's register file to w, for hardware/savestate.
func (p *PSG) WriteState(w *serial.Writer) {
	w.PushBlock(p.regs[:])
	w.PushU8(p.latched)
	for _, v := range p.tonePeriod {
		w.PushU16(v)
	}
	for _, v := range p.toneCounter {
		w.PushU16(v)
	}
	for _, v := range p.sign {
		w.PushBool(v)
	}
	for _, v := range p.amplitude {
		w.PushU8(v)
	}
	for _, v := range p.envMode {
		w.PushBool(v)
	}
	for _, v := range p.tdisable {
		w.PushBool(v)
	}
	for _, v := range p.ndisable {
		w.PushBool(v)
	}
	w.PushU16(p.noisePeriod)
	w.PushU16(p.noiseCounter)
	w.PushU32(p.nshift)
	w.PushU16(p.envPeriod)
	w.PushU16(p.envCounter)
	w.PushU8(uint8(p.eseg))
	w.PushU8(uint8(p.estep))
	w.PushU8(p.evol)
}

// ReadState restores the PSG's register file from r, in the order
// WriteState wrote it.
func (p *PSG) ReadState(r *serial.Reader) {
	copy(p.regs[:], r.PopBlock(16))
	p.latched = r.PopU8()
	for i := range p.tonePeriod {
		p.tonePeriod[i] = r.PopU16()
	}
	for i := range p.toneCounter {
		p.toneCounter[i] = r.PopU16()
	}
	for i := range p.sign {
		p.sign[i] = r.PopBool()
	}
	for i := range p.amplitude {
		p.amplitude[i] = r.PopU8()
	}
	for i := range p.envMode {
		p.envMode[i] = r.PopBool()
	}
	for i := range p.tdisable {
		p.tdisable[i] = r.PopBool()
	}
	for i := range p.ndisable {
		p.ndisable[i] = r.PopBool()
	}
	p.noisePeriod = r.PopU16()
	p.noiseCounter = r.PopU16()
	p.nshift = r.PopU32()
	p.envPeriod = r.PopU16()
	p.envCounter = r.PopU16()
	p.eseg = int(r.PopU8())
	p.estep = int(r.PopU8())
	p.evol = r.PopU8()
}

// StateSize is the fixed number of bytes WriteState writes.
const StateSize = 16 + 1 + 3*2 + 3*2 + 3 + 3 + 3 + 3 + 3 + 2 + 2 + 4 + 2 + 2 + 1 + 1 + 1
