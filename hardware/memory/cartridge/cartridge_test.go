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

package cartridge_test

import (
	"testing"

	"github.com/OpenEmu/JollyCV-Core/hardware/memory/cartridge"
)

func TestPlainReadBeyondSizeReturns0xFF(t *testing.T) {
	rom := make([]uint8, 0x2000)
	rom[0] = 0xAA
	rom[0x1FFF] = 0x55

	c := cartridge.New(rom, false)

	if got := c.Read(0x8000); got != 0xAA {
		t.Fatalf("Read(0x8000): got %#x", got)
	}
	// an 8K image has no data mapped above its own size: real hardware
	// (and the reference implementation) returns 0xFF rather than mirror.
	if got := c.Read(0xA000); got != 0xFF {
		t.Fatalf("Read(0xA000) beyond ROM size: got %#x, want 0xFF", got)
	}
}

func TestMegaCartBankSelect(t *testing.T) {
	const megaBankSize = 0x4000
	rom := make([]uint8, megaBankSize*4)
	for bank := 0; bank < 4; bank++ {
		rom[bank*megaBankSize] = uint8(bank)
	}

	c := cartridge.New(rom, true)

	// the top 16K of the image is permanently mapped at 0x8000-0xBFFF.
	if got := c.Read(0x8000); got != 3 {
		t.Fatalf("Read(0x8000): got %#x, want last bank marker", got)
	}

	// power-on bank 0 is selected for the 0xC000-0xFFFF window.
	if got := c.Read(0xC000); got != 0 {
		t.Fatalf("Read(0xC000) at power-on: got %#x, want bank 0", got)
	}

	// selecting bank 2 via the hotspot region.
	c.Read(0xFFC2)
	if got := c.Read(0xC000); got != 2 {
		t.Fatalf("Read(0xC000) after bank select: got %#x", got)
	}

	// the fixed upper-half mapping is unaffected by bank selection.
	if got := c.Read(0x8000); got != 3 {
		t.Fatalf("Read(0x8000) after bank select: got %#x, want unchanged", got)
	}
}

func TestDetectMegaCart(t *testing.T) {
	rom := make([]uint8, 0x10000)
	base := len(rom) - 0x4000
	rom[base] = 0x55
	rom[base+1] = 0xAA

	if !cartridge.DetectMegaCart(rom) {
		t.Fatalf("expected Mega Cart signature to be detected")
	}

	plain := make([]uint8, 0x4000)
	if cartridge.DetectMegaCart(plain) {
		t.Fatalf("did not expect a plain 16K ROM to be detected as Mega Cart")
	}
}
