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

package controller_test

import (
	"testing"

	"github.com/OpenEmu/JollyCV-Core/hardware/controller"
)

func TestBaselineComplementsToZero(t *testing.T) {
	c := controller.New(func(port int) uint16 { return controller.Baseline })

	if got := c.Read(0, false); got != 0x7F {
		t.Fatalf("low segment baseline: got %#x, want 0x7F", got)
	}
	if got := c.Read(0, true); got != 0x7F {
		t.Fatalf("high segment baseline: got %#x, want 0x7F", got)
	}
}

func TestKeypadDigitEncoding(t *testing.T) {
	pressed := controller.Baseline | uint16(controller.KeypadCode['5'])
	c := controller.New(func(port int) uint16 { return pressed })

	got := c.Read(0, false)
	want := uint8(^pressed)
	if got != want {
		t.Fatalf("got %#x, want %#x", got, want)
	}
}

func TestJoystickNorthEncoding(t *testing.T) {
	pressed := uint16(controller.Baseline) | uint16(controller.North)<<8
	c := controller.New(func(port int) uint16 { return pressed })

	got := c.Read(1, true)
	want := uint8(^(pressed >> 8))
	if got != want {
		t.Fatalf("got %#x, want %#x", got, want)
	}
}
