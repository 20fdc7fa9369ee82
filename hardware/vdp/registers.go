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

// writeRegister latches data into control register rnum (masking off its
// don't-care bits first) and, for the registers with a side effect, updates
// the derived state the renderer and interrupt logic read from.
//
//	Reg  Bit7    Bit6  Bit5  Bit4  Bit3  Bit2  Bit1     Bit0
//	0    -       -     -     -     -     -     M2       EXTVID
//	1    4/16K   BL    GINT  M1    M3    -     SI       MAG
//	2    -       -     -     -     PN13  PN12  PN11     PN10
//	3    CT13    CT12  CT11  CT10  CT9   CT8   CT7      CT6
//	4    -       -     -     -     -     PG13  PG12     PG11
//	5    -       SA13  SA12  SA11  SA10  SA9   SA8      SA7
//	6    -       -     -     -     -     SG13  SG12     SG11
//	7    TC3     TC2   TC1   TC0   BD3   BD2   BD1      BD0
func (v *VDP) writeRegister(rnum, data uint8) {
	oldGint := v.gint()

	v.ctrl[rnum] = data & ctrlDontCare[rnum]

	switch rnum {
	case 1: // Mode Control 2: GINT may now be set
		if v.intPending() && v.gint() && !oldGint {
			v.nmi()
		}
	case 2: // Pattern Name Table
		v.tblPname = uint16(v.ctrl[2]) << 10
	case 3: // Colour Table
		v.tblCol = uint16(v.ctrl[3]) << 6
	case 4: // Pattern Generator Table
		v.tblPgen = uint16(v.ctrl[4]) << 11
	case 5: // Sprite Attribute Table
		v.tblSattr = uint16(v.ctrl[5]) << 7
	case 6: // Sprite Pattern Generator
		v.tblSpgen = uint16(v.ctrl[6]) << 11
	}
}
