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

// Package serial provides typed little-endian push/pop primitives over a
// plain byte buffer. It is the building block for the save-state format in
// hardware/savestate: every sub-chip pushes its fields in a fixed order and
// pops them back in the same order, so the resulting file is portable across
// host endianness even though the fields themselves are small integers.
package serial

import (
	"encoding/binary"

	"github.com/OpenEmu/JollyCV-Core/curated"
)

// SizeMismatch is the curated error pattern returned by a Reader when the
// underlying buffer's length differs from the fixed size the caller expects.
const SizeMismatch = "serial: buffer size %d does not match expected size %d"

// Writer accumulates bytes for a save state. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with capacity pre-allocated for a save state of
// the given size. Capacity is a hint, not a limit.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// PushU8 appends a single byte.
func (w *Writer) PushU8(v uint8) {
	w.buf = append(w.buf, v)
}

// PushBool appends a byte: 1 for true, 0 for false.
func (w *Writer) PushBool(v bool) {
	if v {
		w.PushU8(1)
	} else {
		w.PushU8(0)
	}
}

// PushU16 appends a little-endian uint16.
func (w *Writer) PushU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PushU32 appends a little-endian uint32.
func (w *Writer) PushU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PushBlock appends a fixed-size block of raw bytes verbatim.
func (w *Writer) PushBlock(block []byte) {
	w.buf = append(w.buf, block...)
}

// Reader consumes bytes from a save state in the order they were pushed.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for sequential popping. It does not copy buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// ExpectSize returns a curated error if the reader's total buffer length
// does not equal size. Callers use this once, up front, to reject a
// malformed or foreign save-state file before popping any fields.
func (r *Reader) ExpectSize(size int) error {
	if len(r.buf) != size {
		return curated.Errorf(SizeMismatch, len(r.buf), size)
	}
	return nil
}

// PopU8 pops a single byte.
func (r *Reader) PopU8() uint8 {
	v := r.buf[r.pos]
	r.pos++
	return v
}

// PopBool pops a byte and returns whether it is nonzero.
func (r *Reader) PopBool() bool {
	return r.PopU8() != 0
}

// PopU16 pops a little-endian uint16.
func (r *Reader) PopU16() uint16 {
	v := binary.LittleEndian.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v
}

// PopU32 pops a little-endian uint32.
func (r *Reader) PopU32() uint32 {
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v
}

// PopBlock pops n raw bytes and returns a copy of them.
func (r *Reader) PopBlock(n int) []byte {
	block := make([]byte, n)
	copy(block, r.buf[r.pos:r.pos+n])
	r.pos += n
	return block
}
