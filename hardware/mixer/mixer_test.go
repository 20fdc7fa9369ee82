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

package mixer_test

import (
	"testing"

	"github.com/OpenEmu/JollyCV-Core/hardware/mixer"
)

type passthroughResampler struct {
	lastIn               []int16
	lastInRate, lastOut  int
	lastQuality          int
}

func (r *passthroughResampler) Resample(in []int16, inRate, outRate, quality int) []int16 {
	r.lastIn = in
	r.lastInRate = inRate
	r.lastOut = outRate
	r.lastQuality = quality
	return in
}

func TestMixSumsStreamsInPlace(t *testing.T) {
	r := &passthroughResampler{}
	m, err := mixer.New(r, 48000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	psg := []uint16{100, 200, 300}
	sgm := []uint16{10, 20, 30}

	out := m.Mix(psg, sgm)
	want := []int16{110, 220, 330}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("sample %d: got %d, want %d", i, out[i], want[i])
		}
	}
	if r.lastInRate != mixer.PSGSampleRate {
		t.Fatalf("expected resampler to receive native PSG rate, got %d", r.lastInRate)
	}
}

func TestSetOutputRateRejectsUnsupported(t *testing.T) {
	m, err := mixer.New(&passthroughResampler{}, 48000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.SetOutputRate(22050); err == nil {
		t.Fatalf("expected error for unsupported output rate")
	}
}

func TestReadyCallbackInvoked(t *testing.T) {
	m, err := mixer.New(&passthroughResampler{}, 44100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []int16
	m.SetReadyCallback(func(samples []int16) { got = samples })
	m.Mix([]uint16{1, 2}, nil)

	if len(got) != 2 {
		t.Fatalf("expected callback to receive 2 samples, got %d", len(got))
	}
}
