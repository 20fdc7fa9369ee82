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

// Package cartridge holds the loaded ROM image and the four 8KB page
// offsets that map it into 0x8000-0xFFFF. A plain ROM's four pages are
// fixed at load time. A Mega Cart permanently maps the top 16KB of the
// image to 0x8000-0xBFFF and switches the 0xC000-0xFFFF window's pages as
// a side effect of any read at or above 0xFFC0 — there is no dedicated
// bank-select write port.
package cartridge

const (
	pageSize  = 0x2000
	bankSize  = 0x4000
	pageCount = 4
)

// Cartridge is a loaded ROM image with its page table. The zero value is
// not usable; construct with New.
type Cartridge struct {
	rom      []uint8
	isMega   bool
	romPages int // ceil(len(rom) / 8KB)

	// page holds the four byte offsets into rom for the windows at
	// 0x8000, 0xA000, 0xC000 and 0xE000.
	page [pageCount]uint32
}

// New builds a Cartridge from a raw ROM image, already validated by
// cartridgeloader against the §6 magic-byte and size rules. isMega selects
// Mega Cart bank switching.
func New(rom []uint8, isMega bool) *Cartridge {
	c := &Cartridge{rom: rom, isMega: isMega}
	c.romPages = len(rom) / pageSize
	if len(rom)%pageSize != 0 {
		c.romPages++
	}

	if isMega {
		c.page[0] = uint32(len(rom) - bankSize)
		c.page[1] = uint32(len(rom) - pageSize)
	} else {
		for i := 0; i < pageCount && i < c.romPages; i++ {
			c.page[i] = uint32(i * pageSize)
		}
	}
	c.Reset()
	return c
}

// Reset returns the switchable bank to its power-on selection: bank 0
// mapped at 0xC000. Mega Cart hardware has no reset line for the bank
// register, so real carts also power up this way.
func (c *Cartridge) Reset() {
	if c.isMega {
		c.page[2] = 0
		c.page[3] = pageSize
	}
}

// Read services a CPU read in the 0x8000-0xFFFF range, implementing the
// bank-select-as-read-side-effect and out-of-bounds rules.
func (c *Cartridge) Read(addr uint16) uint8 {
	if c.isMega && addr >= 0xFFC0 {
		mask := uint32(c.romPages>>1) - 1
		bank := uint32(addr) & mask
		c.page[2] = bank << 14
		c.page[3] = c.page[2] + pageSize
	}

	if int(addr) >= len(c.rom)+0x8000 {
		return 0xFF
	}

	page := (addr >> 13) - 4
	offset := c.page[page] + uint32(addr&0x1FFF)
	if int(offset) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[offset]
}

// PageOffsets returns the four current page offsets, for save states.
func (c *Cartridge) PageOffsets() [4]uint32 {
	return c.page
}

// SetPageOffsets restores the four page offsets from a save state.
func (c *Cartridge) SetPageOffsets(page [4]uint32) {
	c.page = page
}

// IsMegaCart reports whether this cartridge uses Mega Cart bank switching.
func (c *Cartridge) IsMegaCart() bool {
	return c.isMega
}

// Size returns the length of the loaded ROM image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}
