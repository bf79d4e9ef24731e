// Package fyne provides a desktop display driver built on fyne.
package fyne

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/thelolagemann/pocketboy/internal/ppu"
	"github.com/thelolagemann/pocketboy/pkg/display"
	"github.com/thelolagemann/pocketboy/pkg/log"
	"github.com/thelolagemann/pocketboy/pkg/utils"
)

var scale float64

func init() {
	display.Install("fyne", &Driver{}, []display.DriverOption{
		{Name: "scale", Default: 4.0, Value: &scale, Description: "initial window scale", Type: "float"},
	})
}

// Driver presents frames in a fyne window, with a menu and hotkeys to
// save or copy screenshots.
type Driver struct {
	emu    display.Emulator
	log    log.Logger
	app    fyne.App
	window fyne.Window

	mu    sync.Mutex
	frame *image.RGBA
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
	d.log = log.New()
}

// Start opens the window and blocks until it is closed, or frames is
// closed.
func (d *Driver) Start(frames <-chan []byte) error {
	if d.log == nil {
		d.log = log.NewNullLogger()
	}
	d.frame = image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))

	d.app = app.NewWithID("io.github.thelolagemann.pocketboy")
	title := "pocketboy"
	if d.emu != nil && d.emu.Title() != "" {
		title += " - " + d.emu.Title()
	}
	d.window = d.app.NewWindow(title)
	d.window.SetMaster()
	d.window.SetPadded(false)

	// create the canvas
	raster := canvas.NewRaster(func(w, h int) image.Image {
		return d.Screenshot()
	})
	raster.ScaleMode = canvas.ImageScalePixels
	raster.SetMinSize(fyne.NewSize(ppu.ScreenWidth, ppu.ScreenHeight))

	d.window.SetContent(raster)
	d.window.SetMainMenu(d.menu())
	d.window.Resize(fyne.NewSize(float32(ppu.ScreenWidth*scale), float32(ppu.ScreenHeight*scale)))

	d.window.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		if handler, ok := keyHandlers[e.Name]; ok {
			handler(d)
		}
	})
	d.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyC, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		d.copyScreenshot()
	})
	d.window.SetOnClosed(func() {
		if d.emu != nil {
			d.emu.Close()
		}
	})

	go func() {
		for f := range frames {
			d.mu.Lock()
			copy(d.frame.Pix, f)
			d.mu.Unlock()
			raster.Refresh()
		}
		d.app.Quit()
	}()

	d.window.ShowAndRun()
	return nil
}

func (d *Driver) Stop() error {
	if d.app != nil {
		d.app.Quit()
	}
	return nil
}

// Screenshot returns a copy of the frame currently displayed.
func (d *Driver) Screenshot() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()

	return utils.FrameImage(append([]byte(nil), d.frame.Pix...), ppu.ScreenWidth, ppu.ScreenHeight)
}

func (d *Driver) saveScreenshot() {
	if err := utils.SaveImage(d.Screenshot()); err != nil {
		d.log.Errorf("fyne: saving screenshot: %v", err)
	}
}

func (d *Driver) copyScreenshot() {
	if err := utils.CopyImage(d.Screenshot()); err != nil {
		d.log.Errorf("fyne: copying screenshot: %v", err)
	}
}

func (d *Driver) menu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Save Screenshot", d.saveScreenshot),
			fyne.NewMenuItem("Copy Screenshot", d.copyScreenshot),
		),
		fyne.NewMenu("View",
			fyne.NewMenuItem("1x", func() { d.resize(1) }),
			fyne.NewMenuItem("2x", func() { d.resize(2) }),
			fyne.NewMenuItem("4x", func() { d.resize(4) }),
			fyne.NewMenuItem("6x", func() { d.resize(6) }),
		),
	)
}

func (d *Driver) resize(s float32) {
	d.window.Resize(fyne.NewSize(ppu.ScreenWidth*s, ppu.ScreenHeight*s))
}

var keyHandlers = map[fyne.KeyName]func(*Driver){
	fyne.KeyF12: (*Driver).saveScreenshot,
	fyne.KeyEscape: func(d *Driver) {
		d.window.Close()
	},
}
