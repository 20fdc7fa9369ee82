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

// bgLine draws one scanline of background pixels for whichever screen mode
// is currently active, including the horizontal overscan border.
func (v *VDP) bgLine() {
	pal := paletteTable(v.palette)

	srow := uint16(v.line >> 3) // screen row, 0-23, 8 pixels high
	prow := uint16(v.line & 7)  // row within the 8x8 pattern cell

	mode := v.screenMode()

	// Control register 4's bit 2 is the only bit that matters in Mode 2; it
	// selects one of two 0x2000-byte halves of the pattern generator table.
	offsetPgen := uint16(v.ctrl[4]&0x04) << 11

	if mode == modeText {
		v.bgLineText(pal, srow, prow)
		return
	}

	for i := 0; i < Overscan; i++ {
		v.pixel(v.backdropColor(), int(v.line), v.dotInc())
	}

	for i := uint16(0); i < 32; i++ {
		var chpat uint8
		var pindex uint8

		switch mode {
		case modeGraphics1:
			name := v.vram[v.tblPname+(srow<<5)+i]
			chpat = v.vram[v.tblPgen+(uint16(name)<<3)+prow]
			pindex = v.vram[v.tblCol+(uint16(name)>>3)]

		case modeGraphics2:
			name := uint16(v.vram[v.tblPname+(srow<<5)+i])
			name += (srow & 0x18) << 5
			offsetCol := v.tblCol & 0x2000

			m1 := (uint16(v.ctrl[4]&0x03) << 8) | 0xff
			m2 := (uint16(v.ctrl[3]&0x7f) << 3) | 0x07

			chpat = v.vram[offsetPgen+((name&m1)<<3)+prow]
			pindex = v.vram[offsetCol+((name&m2)<<3)+prow]

		case modeMulticolor:
			name := uint16(v.vram[v.tblPname+(srow<<5)+i])

			rowBit := uint16(0)
			if v.line&0x04 != 0 {
				rowBit = 1
			}
			offsetCol := offsetPgen + (name << 3) + ((srow & 0x03) << 1) + rowBit
			pindex = v.vram[offsetCol]

			fg := v.backdropColor()
			if pindex>>4 != 0 {
				fg = pal[pindex>>4]
			}
			bg := v.backdropColor()
			if pindex&0x0f != 0 {
				bg = pal[pindex&0x0f]
			}

			for p := 0; p < 4; p++ {
				v.pixel(fg, int(v.line), v.dotInc())
			}
			for p := 0; p < 4; p++ {
				v.pixel(bg, int(v.line), v.dotInc())
			}
			continue
		}

		bg := v.backdropColor()
		if pindex&0x0f != 0 {
			bg = pal[pindex&0x0f]
		}
		fg := v.backdropColor()
		if pindex>>4 != 0 {
			fg = pal[pindex>>4]
		}

		for p := uint8(0x80); p > 0; p >>= 1 {
			c := bg
			if chpat&p != 0 {
				c = fg
			}
			v.pixel(c, int(v.line), v.dotInc())
		}
	}

	for i := 0; i < Overscan; i++ {
		v.pixel(v.backdropColor(), int(v.line), v.dotInc())
	}

	v.dot = 0
}

// bgLineText draws Text Mode's 40 columns of 6x8 cells plus its wider,
// 16-pixel overscan borders (Text Mode's playfield is narrower than the
// other three modes, so the leftover width goes to the border instead).
func (v *VDP) bgLineText(pal *[16]uint32, srow, prow uint16) {
	fg := pal[(v.ctrl[7]>>4)&0x0f]
	bg := v.backdropColor()

	for p := 0; p < Overscan<<1; p++ {
		v.pixel(v.backdropColor(), int(v.line), v.dotInc())
		v.pixel(v.backdropColor(), int(v.line), p+256)
	}

	for i := uint16(0); i < 40; i++ {
		name := v.vram[v.tblPname+(srow*40)+i]
		chpat := v.vram[v.tblPgen+(uint16(name)<<3)+prow]

		for p := uint8(0x80); p > 0x02; p >>= 1 {
			c := bg
			if chpat&p != 0 {
				c = fg
			}
			v.pixel(c, int(v.line), v.dotInc())
		}
	}

	v.dot = 0
}

// dotInc returns the current dot position and advances it, mirroring the
// reference renderer's post-increment addressing.
func (v *VDP) dotInc() int {
	d := int(v.dot)
	v.dot++
	return d
}
