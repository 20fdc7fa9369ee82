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

// Package vdp emulates the TMS9928A Video Display Processor: 16KB of VRAM,
// eight write-only control registers reached through a two-step address/data
// latch, one read-only status register, a scanline-accurate renderer for the
// four ColecoVision screen modes, and a 32-sprite engine with the 5-sprite-
// per-line limit and pixel-level collision detection. Rendering writes
// directly into a caller-supplied BGRA framebuffer; the VDP owns no pixel
// storage of its own beyond VRAM.
package vdp

import "github.com/OpenEmu/JollyCV-Core/serial"

// Geometry constants for the caller-supplied framebuffer. The playfield is
// always 256x192; each side carries 8 pixels of overscan painted with the
// backdrop color.
const (
	Overscan       = 8
	Width          = 256
	Height         = 192
	WidthOverscan  = Width + 2*Overscan
	HeightOverscan = Height + 2*Overscan

	vramSize = 0x4000
)

// Region selects the scanline count, which in turn sets the frame rate.
// Visible area is 192 lines either way; only the vertical blanking interval
// differs.
type Region uint8

const (
	RegionNTSC Region = 0
	RegionPAL  Region = 1
)

const (
	scanlinesNTSC = 262
	scanlinesPAL  = 313
)

// Status register bits.
const (
	statINT = 0x80 // VBlank interrupt pending
	stat5S  = 0x40 // fifth sprite detected on some line
	statC   = 0x20 // sprite collision detected
	statFS  = 0x1F // index of the last sprite examined
)

// Control register 1 bits.
const (
	ctrl1Mag   = 0x01 // sprite magnification (doubles each pixel)
	ctrl1Size  = 0x02 // 16x16 sprites instead of 8x8
	ctrl1M3    = 0x08
	ctrl1M1    = 0x10
	ctrl1GINT  = 0x20 // enable VBlank/NMI generation
	ctrl1BL    = 0x40 // rendering enabled (blanking when clear)
	ctrl1M2bit = 0x02 // control register 0's M2 bit
)

// Screen modes, as derived from control registers 0 and 1.
const (
	modeGraphics1  = 0
	modeText       = 1
	modeGraphics2  = 2
	modeMulticolor = 4
)

// ctrlDontCare masks off the "don't care" bits of each control register
// before it is latched, so that save states and register reads never expose
// garbage the real chip never retains.
var ctrlDontCare = [8]uint8{0x03, 0xfb, 0x0f, 0xff, 0x07, 0x7f, 0x07, 0xff}

// NMI is called by the VDP when it needs to pulse the Z80's non-maskable
// interrupt line: entering VBlank with GINT set, or a register 1 write that
// turns GINT on while a VBlank interrupt is already pending.
type NMI func()

// VDP is the TMS9928A state machine. The zero value is not usable; build one
// with New.
type VDP struct {
	line uint16
	dot  uint16

	vram [vramSize]uint8

	addr   uint16
	dlatch uint8
	wlatch bool

	ctrl [8]uint8
	stat uint8

	tblPname uint16
	tblCol   uint16
	tblPgen  uint16
	tblSattr uint16
	tblSpgen uint16

	numScanlines uint16
	palette      Palette

	buf []uint32 // caller-supplied framebuffer, WidthOverscan*HeightOverscan

	nmi NMI

	// linebuf and cbuf are scratch space for sprLine, reused across
	// scanlines to avoid an allocation per line.
	linebuf [Width]uint8
	cbuf    [Width]uint8
}

// New is the preferred method of initialisation for the VDP type. nmi is
// called whenever VBlank entry or a GINT-enabling register write should
// raise the Z80's non-maskable interrupt; it must not be nil.
func New(nmi NMI) *VDP {
	v := &VDP{nmi: nmi, numScanlines: scanlinesNTSC, palette: PaletteTeatime}
	v.Reset()
	return v
}

// Reset reinitializes the VDP to its power-on state: VRAM, control
// registers, status register, address latches and derived table bases are
// all zeroed.
func (v *VDP) Reset() {
	v.line = 0
	v.dot = 0
	for i := range v.vram {
		v.vram[i] = 0
	}
	v.addr = 0
	v.dlatch = 0
	v.wlatch = false
	v.ctrl = [8]uint8{}
	v.stat = 0
	v.tblPname = 0
	v.tblCol = 0
	v.tblPgen = 0
	v.tblSattr = 0
	v.tblSpgen = 0
}

// SetBuffer installs the framebuffer Exec renders into. buf must be at least
// WidthOverscan*HeightOverscan elements; ownership stays with the caller.
func (v *VDP) SetBuffer(buf []uint32) {
	v.buf = buf
}

// SetPalette selects which of the two built-in palettes subsequent rendering
// draws from.
func (v *VDP) SetPalette(p Palette) {
	v.palette = p
}

// SetRegion selects the scanline count for subsequent frames. It takes
// effect immediately; mid-frame region changes are the caller's problem.
func (v *VDP) SetRegion(r Region) {
	if r == RegionPAL {
		v.numScanlines = scanlinesPAL
	} else {
		v.numScanlines = scanlinesNTSC
	}
}

// NumScanlines returns the scanline count for the currently selected region,
// for the frame scheduler's per-frame loop bound.
func (v *VDP) NumScanlines() int {
	return int(v.numScanlines)
}

func (v *VDP) rendering() bool {
	return v.ctrl[1]&ctrl1BL != 0
}

func (v *VDP) gint() bool {
	return v.ctrl[1]&ctrl1GINT != 0
}

func (v *VDP) intPending() bool {
	return v.stat&statINT != 0
}

func (v *VDP) backdropColor() uint32 {
	return paletteTable(v.palette)[v.ctrl[7]&0x0f]
}

func (v *VDP) screenMode() uint8 {
	return ((v.ctrl[1] & ctrl1M1) >> 4) |
		(v.ctrl[0] & ctrl1M2bit) |
		((v.ctrl[1] & ctrl1M3) >> 1)
}

// addrInc increments the 14-bit VRAM address register with wraparound.
func (v *VDP) addrInc() {
	v.addr = (v.addr + 1) & 0x3fff
}

// ReadData services an I/O read of the even port in the 0xA0 band: it
// returns the data latch's previous value, then refills the latch from VRAM
// at the current address and advances the address.
func (v *VDP) ReadData() uint8 {
	v.wlatch = false
	rb := v.dlatch
	v.dlatch = v.vram[v.addr]
	v.addrInc()
	return rb
}

// ReadStatus services an I/O read of the odd port in the 0xA0 band: it
// returns the status register's previous value, then clears the INT, 5S and
// C bits (preserving the FS field) and clears the control write latch.
func (v *VDP) ReadStatus() uint8 {
	v.wlatch = false
	sr := v.stat
	v.stat &= statFS
	return sr
}

// WriteData services an I/O write of the even port in the 0xA0 band: it
// writes the byte into VRAM at the current address, mirrors it into the data
// latch, and advances the address.
func (v *VDP) WriteData(data uint8) {
	v.wlatch = false
	v.vram[v.addr] = data
	v.dlatch = data
	v.addrInc()
}

// WriteControl services an I/O write of the odd port in the 0xA0 band: the
// two-step address/register write protocol.
func (v *VDP) WriteControl(data uint8) {
	if v.wlatch {
		v.wlatch = false

		upper := uint16(data&0x3f) << 8
		v.addr = upper | uint16(v.dlatch)

		switch data & 0xc0 {
		case 0x00: // VRAM read setup: refill the latch and advance
			v.dlatch = v.vram[v.addr]
			v.addrInc()
		case 0x80: // register write, 3-bit register index
			v.writeRegister(data&0x07, v.dlatch)
		}
		return
	}

	v.wlatch = true
	v.addr = (v.addr & 0x3f00) | uint16(data)
	v.dlatch = data
}

// Exec renders one scanline and advances the line counter, handling VBlank
// entry and end-of-frame overscan painting. The frame scheduler calls this
// exactly once per scanline.
func (v *VDP) Exec() {
	if v.rendering() && v.line < Height {
		v.bgLine()
		if v.ctrl[1]&ctrl1M1 == 0 { // sprites are not drawn in Text Mode
			v.sprLine()
		}
	} else if v.line < Height {
		v.bdLine(v.line + Overscan)
	}

	v.line++

	if v.line == Height {
		oldInt := v.intPending()
		v.stat |= statINT

		// Fire only on the INT bit's rising edge: otherwise re-entering this
		// branch after a status read that hasn't happened yet would raise a
		// second NMI for the same VBlank.
		if v.gint() && !oldInt {
			v.nmi()
		}
	}

	if v.line == v.numScanlines {
		v.line = 0
		for i := uint16(0); i < Overscan; i++ {
			v.bdLine(i)
			v.bdLine(i + Height + Overscan)
		}
	}
}

// bdLine paints one full-width overscan row with the backdrop color.
func (v *VDP) bdLine(line uint16) {
	if v.buf == nil {
		return
	}
	c := v.backdropColor()
	base := int(line) * WidthOverscan
	for i := 0; i < WidthOverscan; i++ {
		v.buf[base+i] = c
	}
}

// pixel writes a single pixel at (line, dot) in playfield coordinates,
// already offset for the vertical overscan band by the caller.
func (v *VDP) pixel(c uint32, line, dot int) {
	if v.buf == nil {
		return
	}
	v.buf[(line+Overscan)*WidthOverscan+dot] = c
}

// WriteState appends the VDP's full state, including VRAM, to w.
func (v *VDP) WriteState(w *serial.Writer) {
	w.PushU16(v.line)
	w.PushU16(v.dot)
	w.PushBlock(v.vram[:])
	w.PushU16(v.addr)
	w.PushU8(v.dlatch)
	w.PushBool(v.wlatch)
	for _, c := range v.ctrl {
		w.PushU8(c)
	}
	w.PushU8(v.stat)
	w.PushU16(v.tblCol)
	w.PushU16(v.tblPgen)
	w.PushU16(v.tblPname)
	w.PushU16(v.tblSattr)
	w.PushU16(v.tblSpgen)
}

// ReadState restores the VDP's full state from r, in the order WriteState
// wrote it. It does not recompute derived table bases separately: they are
// part of the serialized state, matching the reference implementation.
func (v *VDP) ReadState(r *serial.Reader) {
	v.line = r.PopU16()
	v.dot = r.PopU16()
	copy(v.vram[:], r.PopBlock(vramSize))
	v.addr = r.PopU16()
	v.dlatch = r.PopU8()
	v.wlatch = r.PopBool()
	for i := range v.ctrl {
		v.ctrl[i] = r.PopU8()
	}
	v.stat = r.PopU8()
	v.tblCol = r.PopU16()
	v.tblPgen = r.PopU16()
	v.tblPname = r.PopU16()
	v.tblSattr = r.PopU16()
	v.tblSpgen = r.PopU16()
}

// StateSize is the fixed number of bytes WriteState writes.
const StateSize = 2 + 2 + vramSize + 2 + 1 + 1 + 8 + 1 + 2 + 2 + 2 + 2 + 2
