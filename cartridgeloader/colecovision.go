// This file is part of JollyCV-Core.
//
// JollyCV-Core is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

package cartridgeloader

import (
	"github.com/OpenEmu/JollyCV-Core/curated"
	"github.com/OpenEmu/JollyCV-Core/hardware/memory/cartridge"
)

// BIOSSize is the exact size §6 requires of a BIOS image.
const BIOSSize = 0x2000

// magicSplash and magicDirect are the two valid ColecoVision cartridge
// signatures. A plain ROM's header is read as a big-endian 16-bit word
// (rom[0]<<8 | rom[1]), per §4.9.
const (
	magicSplash = 0xAA55 // boots via the BIOS splash screen
	magicDirect = 0x55AA // jumps straight to the cartridge's own vector
)

// LoadBIOS fetches filename and returns its bytes, failing unless the
// result is exactly BIOSSize bytes, per §6.
func LoadBIOS(filename string) ([]uint8, error) {
	cl := Loader{Filename: filename}
	if err := cl.Load(); err != nil {
		return nil, err
	}
	if len(cl.Data) != BIOSSize {
		return nil, curated.Errorf("cartridgeloader: BIOS %s is %d bytes, want exactly %d", filename, len(cl.Data), BIOSSize)
	}
	return cl.Data, nil
}

// LoadROM fetches filename, validates it against §4.9's magic-byte and size
// rules, and returns a ready-to-use *cartridge.Cartridge. Mega Cart
// detection happens automatically, via cartridge.DetectMegaCart; everything
// else is validated as a plain, fixed-page ROM.
func LoadROM(filename string) (*cartridge.Cartridge, error) {
	cl := Loader{Filename: filename}
	if err := cl.Load(); err != nil {
		return nil, err
	}
	return NewCartridge(cl.Data)
}

// NewCartridge validates rom against §4.9's rules and builds the
// corresponding *cartridge.Cartridge. It is split out from LoadROM so a
// frontend that already has the bytes in memory (e.g. from an archive, or
// a previous Loader.Load call) never needs to round-trip through the
// filesystem.
func NewCartridge(rom []uint8) (*cartridge.Cartridge, error) {
	if len(rom) < 8*1024 {
		return nil, curated.Errorf("cartridgeloader: ROM is %d bytes, need at least 8192", len(rom))
	}

	if cartridge.DetectMegaCart(rom) {
		return cartridge.New(rom, true), nil
	}

	header := uint16(rom[0])<<8 | uint16(rom[1])
	if header != magicSplash && header != magicDirect {
		return nil, curated.Errorf("cartridgeloader: ROM header %#04x is not a recognised ColecoVision signature", header)
	}

	return cartridge.New(rom, false), nil
}
