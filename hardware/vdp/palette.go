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

package vdp

// Palette selects which of the two built-in 16-entry BGRA palettes the VDP
// draws from. Both encode entry 0 and 1 as opaque black; entries 2-15 are
// the standard TMS9928A colors with a slightly different hand-tuned tint.
type Palette uint8

const (
	// PaletteTeatime is the default: a warmer, higher-contrast tint.
	PaletteTeatime Palette = 0
	// PaletteSyoung follows the values in Sean Young's tms9918a.txt, the
	// table most other emulators use.
	PaletteSyoung Palette = 1
)

// paletteTeatime and paletteSyoung are packed 0xAARRGGBB (BGRA byte order in a
// little-endian word, fixed 0xFF alpha) to match the caller-supplied
// framebuffer format.
var paletteTeatime = [16]uint32{
	0xff000000, 0xff000000, 0xff23b03f, 0xff3cdf5e,
	0xff495bfe, 0xff757cff, 0xffd73218, 0xff14f8f8,
	0xffff4746, 0xffff6464, 0xffd4ce54, 0xffe6e180,
	0xff1d9a34, 0xffd63bc1, 0xffcccccc, 0xffffffff,
}

var paletteSyoung = [16]uint32{
	0xff000000, 0xff000000, 0xff21c842, 0xff5edc78,
	0xff5455ed, 0xff7d76fc, 0xffd4524d, 0xff42ebf5,
	0xfffc5554, 0xffff7978, 0xffd4c154, 0xffe6ce80,
	0xff21b03b, 0xffc95bba, 0xffcccccc, 0xffffffff,
}

func paletteTable(p Palette) *[16]uint32 {
	if p == PaletteSyoung {
		return &paletteSyoung
	}
	return &paletteTeatime
}
