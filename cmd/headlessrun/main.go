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

// Command headlessrun drives a machine for a fixed number of frames with no
// frontend attached, reporting either a frames-per-second figure or a
// regression digest. The Z80 interpreter is out of scope for this core (see
// hardware/cpu.Z80), so this driver exercises the frame scheduler against
// hardware/cpu.FakeZ80 rather than real game code - enough to profile the
// scheduler's own throughput and to regression-test the VDP/PSG/mixer
// plumbing's output, which is what a CPU-profiling run cares about anyway.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/OpenEmu/JollyCV-Core/cartridgeloader"
	"github.com/OpenEmu/JollyCV-Core/hardware"
	"github.com/OpenEmu/JollyCV-Core/hardware/controller"
	"github.com/OpenEmu/JollyCV-Core/hardware/cpu"
	"github.com/OpenEmu/JollyCV-Core/hardware/regression"
	"github.com/OpenEmu/JollyCV-Core/hardware/vdp"
)

func main() {
	var mode = flag.String("mode", "FPS", "run mode: FPS, DIGEST")
	var bios = flag.String("bios", "", "path to an 8192-byte BIOS image")
	var rom = flag.String("rom", "", "path to a ROM image")
	var frames = flag.Int("frames", 60, "number of frames to run")
	var profile = flag.Bool("profile", false, "write a CPU profile to cpu.profile")
	flag.Parse()

	var err error
	switch *mode {
	case "FPS":
		err = runFPS(*bios, *rom, *frames, *profile)
	case "DIGEST":
		err = runDigest(*bios, *rom, *frames)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(10)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(10)
	}
}

func newMachine(biosPath, romPath string) (*hardware.System, error) {
	bios, err := cartridgeloader.LoadBIOS(biosPath)
	if err != nil {
		return nil, err
	}
	cart, err := cartridgeloader.LoadROM(romPath)
	if err != nil {
		return nil, err
	}

	poll := func(port int) uint16 { return controller.Baseline }
	z80 := cpu.NewFakeZ80(4)

	return hardware.NewSystem(z80, bios, cart, poll, nullResampler{}, 48000)
}

type nullResampler struct{}

func (nullResampler) Resample(in []int16, inRate, outRate, quality int) []int16 {
	return in
}

func runFPS(biosPath, romPath string, frames int, profile bool) error {
	sys, err := newMachine(biosPath, romPath)
	if err != nil {
		return err
	}

	if profile {
		f, err := os.Create("cpu.profile")
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	for i := 0; i < frames; i++ {
		sys.FrameExec()
	}
	elapsed := time.Since(start)

	fmt.Printf("%d frames in %s (%.2f fps)\n", frames, elapsed, float64(frames)/elapsed.Seconds())
	return nil
}

func runDigest(biosPath, romPath string, frames int) error {
	sys, err := newMachine(biosPath, romPath)
	if err != nil {
		return err
	}

	buf := make([]uint32, vdp.WidthOverscan*vdp.HeightOverscan)
	sys.VDP.SetBuffer(buf)

	var digest regression.Digest
	for i := 0; i < frames; i++ {
		sys.FrameExec()
		digest.Update(buf, nil)
	}

	fmt.Println(digest.Hash())
	return nil
}
