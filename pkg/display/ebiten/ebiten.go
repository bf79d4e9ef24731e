// Package ebiten provides a display driver built on ebiten.
package ebiten

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/thelolagemann/pocketboy/internal/ppu"
	"github.com/thelolagemann/pocketboy/pkg/display"
	"github.com/thelolagemann/pocketboy/pkg/log"
	"github.com/thelolagemann/pocketboy/pkg/utils"
)

var (
	scale float64
	vsync bool
)

func init() {
	display.Install("ebiten", &Driver{}, []display.DriverOption{
		{Name: "scale", Default: 4.0, Value: &scale, Description: "initial window scale", Type: "float"},
		{Name: "vsync", Default: true, Value: &vsync, Description: "synchronise presentation with the display", Type: "bool"},
	})
}

// Driver presents frames in an ebiten window. F12 saves a screenshot
// to the working directory, and escape closes the window.
type Driver struct {
	emu display.Emulator
	log log.Logger

	frames  <-chan []byte
	screen  *ebiten.Image
	latest  []byte
	stopped atomic.Bool
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
	d.log = log.New()
}

// Start runs the ebiten game loop until the window is closed, or
// frames is closed.
func (d *Driver) Start(frames <-chan []byte) error {
	if d.log == nil {
		d.log = log.NewNullLogger()
	}
	d.frames = frames
	d.latest = make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4)

	title := "pocketboy"
	if d.emu != nil && d.emu.Title() != "" {
		title += " - " + d.emu.Title()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(ppu.ScreenWidth*scale), int(ppu.ScreenHeight*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(vsync)

	err := ebiten.RunGame(d)
	if d.emu != nil {
		d.emu.Close()
	}
	return err
}

func (d *Driver) Stop() error {
	d.stopped.Store(true)
	return nil
}

// Update takes the most recent frame without blocking the game loop.
func (d *Driver) Update() error {
	if d.stopped.Load() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

drain:
	for {
		select {
		case f, ok := <-d.frames:
			if !ok {
				return ebiten.Termination
			}
			d.latest = f
		default:
			break drain
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		d.screenshot()
	}
	return nil
}

func (d *Driver) Draw(screen *ebiten.Image) {
	if d.screen == nil {
		d.screen = ebiten.NewImage(ppu.ScreenWidth, ppu.ScreenHeight)
	}
	d.screen.WritePixels(d.latest)
	screen.DrawImage(d.screen, nil)
}

func (d *Driver) Layout(int, int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}

func (d *Driver) screenshot() {
	name := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))
	img := utils.FrameImage(append([]byte(nil), d.latest...), ppu.ScreenWidth, ppu.ScreenHeight)
	if err := utils.SavePNG(name, img); err != nil {
		d.log.Errorf("ebiten: saving screenshot: %v", err)
		return
	}
	d.log.Infof("ebiten: saved %s", name)
}
