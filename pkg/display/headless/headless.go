// Package headless provides a display driver that consumes frames
// without presenting them, hashing each one and optionally dumping
// them to disk as bitmaps.
package headless

import (
	"fmt"
	"path/filepath"

	"github.com/thelolagemann/pocketboy/internal/ppu"
	"github.com/thelolagemann/pocketboy/pkg/display"
	"github.com/thelolagemann/pocketboy/pkg/log"
	"github.com/thelolagemann/pocketboy/pkg/utils"
)

var (
	dumpDir   string
	dumpEvery int
)

func init() {
	display.Install("headless", &Driver{}, []display.DriverOption{
		{Name: "dump", Default: "", Value: &dumpDir, Description: "directory to dump frames to as bitmaps", Type: "string"},
		{Name: "every", Default: 60, Value: &dumpEvery, Description: "dump every nth frame", Type: "int"},
	})
}

// Driver counts and hashes frames.
type Driver struct {
	emu display.Emulator
	log log.Logger

	// Dir and Every override the command line options when set.
	Dir   string
	Every int

	frames uint64
	unique uint64
	last   uint64
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
	if d.log == nil {
		d.log = log.New()
	}
}

// Start consumes frames until the channel is closed.
func (d *Driver) Start(frames <-chan []byte) error {
	if d.log == nil {
		d.log = log.NewNullLogger()
	}
	dir, every := d.Dir, d.Every
	if dir == "" {
		dir = dumpDir
	}
	if every <= 0 {
		every = max(dumpEvery, 1)
	}

	for f := range frames {
		d.frames++
		h := utils.FrameHash(f)
		if h != d.last || d.frames == 1 {
			d.unique++
		}
		d.last = h

		if dir != "" && d.frames%uint64(every) == 0 {
			name := filepath.Join(dir, fmt.Sprintf("frame-%06d.bmp", d.frames))
			img := utils.FrameImage(f, ppu.ScreenWidth, ppu.ScreenHeight)
			if err := utils.SaveBMP(name, img); err != nil {
				return fmt.Errorf("headless: %w", err)
			}
		}
	}

	d.log.WithFields(log.Fields{
		"frames": d.frames,
		"unique": d.unique,
		"hash":   fmt.Sprintf("%016x", d.last),
	}).Infof("headless: done")
	return nil
}

func (d *Driver) Stop() error {
	return nil
}

// Frames returns the number of frames consumed.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Unique returns the number of frames that differed from the frame
// before them.
func (d *Driver) Unique() uint64 {
	return d.unique
}

// Hash returns the hash of the last frame consumed.
func (d *Driver) Hash() uint64 {
	return d.last
}
