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

package serial_test

import (
	"testing"

	"github.com/OpenEmu/JollyCV-Core/serial"
)

func TestRoundTrip(t *testing.T) {
	w := serial.NewWriter(0)
	w.PushU8(0x42)
	w.PushBool(true)
	w.PushU16(0xBEEF)
	w.PushU32(0xDEADBEEF)
	w.PushBlock([]byte{1, 2, 3, 4})

	r := serial.NewReader(w.Bytes())
	if err := r.ExpectSize(w.Len()); err != nil {
		t.Fatalf("unexpected size mismatch: %v", err)
	}

	if got := r.PopU8(); got != 0x42 {
		t.Fatalf("PopU8: got %#x", got)
	}
	if got := r.PopBool(); got != true {
		t.Fatalf("PopBool: got %v", got)
	}
	if got := r.PopU16(); got != 0xBEEF {
		t.Fatalf("PopU16: got %#x", got)
	}
	if got := r.PopU32(); got != 0xDEADBEEF {
		t.Fatalf("PopU32: got %#x", got)
	}
	if got := r.PopBlock(4); got[0] != 1 || got[3] != 4 {
		t.Fatalf("PopBlock: got %v", got)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected buffer fully consumed, %d bytes remaining", r.Remaining())
	}
}

func TestExpectSizeMismatch(t *testing.T) {
	r := serial.NewReader(make([]byte, 10))
	if err := r.ExpectSize(11); err == nil {
		t.Fatalf("expected size mismatch error")
	}
}
