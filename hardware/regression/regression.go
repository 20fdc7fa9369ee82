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

// Package regression produces a chained SHA1 digest across a run of frames,
// for comparing two emulation runs (a golden run and a candidate run, or a
// run before and after a save-state round trip) without storing every
// frame's raw pixels and samples.
package regression

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// Digest accumulates a chained hash across a sequence of frames. Each
// Update folds the previous digest value into the head of the next frame's
// data before hashing, so the final value depends on every frame in the
// run and their order, not just the last one. The zero value is ready to
// use.
type Digest struct {
	sum [sha1.Size]byte

	scratch []byte
}

// Update feeds one frame's video buffer (BGRA32 pixels, as hardware/vdp
// produces) and audio samples (as hardware/mixer produces) into the running
// digest.
func (d *Digest) Update(video []uint32, audio []int16) {
	need := len(d.sum) + len(video)*4 + len(audio)*2
	if cap(d.scratch) < need {
		d.scratch = make([]byte, need)
	}
	d.scratch = d.scratch[:need]

	n := copy(d.scratch, d.sum[:])
	for _, px := range video {
		binary.LittleEndian.PutUint32(d.scratch[n:], px)
		n += 4
	}
	for _, s := range audio {
		binary.LittleEndian.PutUint16(d.scratch[n:], uint16(s))
		n += 2
	}

	d.sum = sha1.Sum(d.scratch)
}

// Reset clears the digest back to its initial zero value, starting a new
// chain.
func (d *Digest) Reset() {
	d.sum = [sha1.Size]byte{}
}

// Hash returns the current digest value as a lowercase hex string.
func (d *Digest) Hash() string {
	return fmt.Sprintf("%x", d.sum)
}
