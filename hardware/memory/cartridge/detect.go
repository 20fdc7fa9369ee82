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

package cartridge

// megaCartSizeThreshold is the smallest ROM size that can plausibly carry a
// Mega Cart header; anything smaller is always a plain ROM.
const megaCartSizeThreshold = 0x8000

// DetectMegaCart reports whether rom carries a Mega Cart signature: a size
// greater than 32KB with the 0x55 0xAA (or 0xAA 0x55) marker repeated at
// the start of the final 16KB bank, the location the Mega Cart loader
// places it instead of at the start of the image.
func DetectMegaCart(rom []uint8) bool {
	if len(rom) <= megaCartSizeThreshold {
		return false
	}

	base := len(rom) - bankSize
	if base < 0 || base+1 >= len(rom) {
		return false
	}

	return isROMMagic(rom[base], rom[base+1])
}

// isROMMagic reports whether the two bytes form a ColecoVision ROM header
// marker, which may appear in either byte order.
func isROMMagic(a, b uint8) bool {
	return (a == 0x55 && b == 0xAA) || (a == 0xAA && b == 0x55)
}
