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

package mixer

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WavCapture accumulates resampled output into a WAV file as it arrives,
// for regression capture and for listening to a run outside the emulator.
// Wire it to a Mixer with SetReadyCallback(capture.Write).
type WavCapture struct {
	enc *wav.Encoder
}

// NewWavCapture is the preferred method of initialisation for the
// WavCapture type. out must stay open for the lifetime of the capture;
// call Close when the run is finished to flush the WAV header.
func NewWavCapture(out io.WriteSeeker, sampleRate int) *WavCapture {
	return &WavCapture{
		enc: wav.NewEncoder(out, sampleRate, 16, 1, 1),
	}
}

// Write appends a buffer of resampled mono samples to the WAV file. It
// matches the signature Mixer.SetReadyCallback expects.
func (c *WavCapture) Write(samples []int16) {
	if len(samples) == 0 {
		return
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: c.enc.SampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	// capture errors are not actionable mid-run; the encoder surfaces them
	// again, fatally, from Close.
	_ = c.enc.Write(buf)
}

// Close flushes the WAV header. The underlying writer is not closed.
func (c *WavCapture) Close() error {
	return c.enc.Close()
}
