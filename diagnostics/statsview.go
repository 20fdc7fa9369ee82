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

//go:build statsview
// +build statsview

package diagnostics

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const Address = "localhost:12609"
const url = "/debug/statsview"

// Launch starts a new goroutine running the statsview dashboard. It reads
// only Go runtime stats; the frame scheduler's own counters (frames/sec,
// PSG/SGM-PSG samples per frame, from hardware.System.PSGSampleCounts) are
// the caller's responsibility to print or log separately, since wiring them
// into statsview's own chart set means depending on internals of a library
// this package otherwise treats as a black box.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", Address, url)))
}

// Available returns true if a statsview dashboard is available to launch.
func Available() bool {
	return true
}
