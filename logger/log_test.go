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

package logger_test

import (
	"strings"
	"testing"

	"github.com/OpenEmu/JollyCV-Core/logger"
)

func TestLogAndWrite(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	logger.Log(logger.Allow, "vdp", "vblank nmi")
	logger.Log(logger.Allow, "vdp", "vblank nmi")
	logger.Log(logger.Allow, "psg", "noise reseed")

	w := &strings.Builder{}
	logger.Write(w)

	out := w.String()
	if !strings.Contains(out, "vdp: vblank nmi (repeat x2)") {
		t.Fatalf("expected repeated entry to be collapsed, got: %q", out)
	}
	if !strings.Contains(out, "psg: noise reseed") {
		t.Fatalf("expected psg entry, got: %q", out)
	}
}

func TestTail(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	for i := 0; i < 5; i++ {
		logger.Logf(logger.Allow, "bus", "write %d", i)
	}

	w := &strings.Builder{}
	logger.Tail(w, 2)

	out := w.String()
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected exactly two tail lines, got: %q", out)
	}
	if !strings.Contains(out, "write 4") {
		t.Fatalf("expected most recent entry in tail, got: %q", out)
	}
}
