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

// Package random provides the randomisation required by the emulator at
// init time. System RAM is randomised on boot because some ColecoVision
// software relies on non-zero boot RAM contents to vary its behaviour
// between runs; a deterministic all-zero boot would hide that class of bug.
package random

import (
	"math/rand"
	"time"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().UnixNano())
}

// Random is a small wrapper around math/rand.Rand. ZeroSeed forces a fixed
// seed, which regression tests use so that two runs of the same ROM produce
// byte-identical "random" boot RAM.
type Random struct {
	ZeroSeed bool
	src      *rand.Rand
}

// New is the preferred method of initialisation for the Random type.
func New() *Random {
	return &Random{}
}

func (r *Random) rand() *rand.Rand {
	if r.src == nil {
		if r.ZeroSeed {
			r.src = rand.New(rand.NewSource(0))
		} else {
			r.src = rand.New(rand.NewSource(baseSeed))
		}
	}
	return r.src
}

// FillBytes fills buf with pseudo-random bytes in [0, 255].
func (r *Random) FillBytes(buf []uint8) {
	src := r.rand()
	for i := range buf {
		buf[i] = uint8(src.Intn(0x100))
	}
}
