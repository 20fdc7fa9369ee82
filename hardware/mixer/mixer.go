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

// Package mixer sums the SN76489 and AY-3-8910 sample streams and resamples
// the result to a host-chosen output rate. Resampling itself is a black
// box: the mixer only knows how to call a Resampler, never how one works
// internally, so a dependency-free caller can supply a test double and a
// real build can wire in any resampling library.
package mixer

import "github.com/OpenEmu/JollyCV-Core/curated"

// PSGSampleRate is the native sample rate the mixer assumes for both PSG
// streams. It is close to, but not exactly, the NTSC Z80 clock divided by 16
// (3579545 / 16 = 223721.6).
const PSGSampleRate = 224010

// ErrInvalidOutputRate is returned by SetOutputRate for a rate outside the
// four supported host sample rates.
const ErrInvalidOutputRate = "mixer: unsupported output rate %d"

// ErrInvalidQuality is returned by SetQuality for a quality outside 0-10.
const ErrInvalidQuality = "mixer: resampler quality %d out of range"

var validOutputRates = map[int]bool{44100: true, 48000: true, 96000: true, 192000: true}

// Resampler converts a mono PCM stream at one sample rate to another. The
// quality parameter is resampler-specific (0 = fastest/lowest quality, 10 =
// slowest/highest quality), passed through unexamined.
type Resampler interface {
	Resample(in []int16, inRate, outRate, quality int) []int16
}

// Mixer is the PSG/SGM-PSG summing and resampling stage. The zero value is
// not usable; build one with New.
type Mixer struct {
	resampler  Resampler
	outputRate int
	quality    int
	onReady    func(samples []int16)

	scratch []int16
}

// New is the preferred method of initialisation for the Mixer type.
// outputRate must be one of 44100, 48000, 96000 or 192000.
func New(resampler Resampler, outputRate int) (*Mixer, error) {
	m := &Mixer{resampler: resampler, quality: 3}
	if err := m.SetOutputRate(outputRate); err != nil {
		return nil, err
	}
	return m, nil
}

// SetOutputRate changes the host sample rate the mixer resamples to.
func (m *Mixer) SetOutputRate(rate int) error {
	if !validOutputRates[rate] {
		return curated.Errorf(ErrInvalidOutputRate, rate)
	}
	m.outputRate = rate
	return nil
}

// SetQuality changes the resampler quality, 0 (fastest) to 10 (best).
func (m *Mixer) SetQuality(quality int) error {
	if quality < 0 || quality > 10 {
		return curated.Errorf(ErrInvalidQuality, quality)
	}
	m.quality = quality
	return nil
}

// SetReadyCallback installs the function invoked with the resampled output
// buffer at the end of every call to Mix.
func (m *Mixer) SetReadyCallback(cb func(samples []int16)) {
	m.onReady = cb
}

// Mix sums the SGM-PSG stream into the PSG stream in place (in the sense
// that the caller's psg slice is not retained or mutated, only its values
// are read), resamples the sum to the output rate, and invokes the
// ready callback. It returns the resampled buffer.
func (m *Mixer) Mix(psg, sgm []uint16) []int16 {
	if cap(m.scratch) < len(psg) {
		m.scratch = make([]int16, len(psg))
	}
	m.scratch = m.scratch[:len(psg)]

	for i, v := range psg {
		sum := int16(v)
		if i < len(sgm) {
			sum += int16(sgm[i])
		}
		m.scratch[i] = sum
	}

	out := m.resampler.Resample(m.scratch, PSGSampleRate, m.outputRate, m.quality)
	if m.onReady != nil {
		m.onReady(out)
	}
	return out
}
