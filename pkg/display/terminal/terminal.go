// Package terminal provides a display driver that draws frames to a
// truecolor terminal with half block characters, packing two pixel
// rows into every character cell.
package terminal

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/thelolagemann/pocketboy/internal/ppu"
	"github.com/thelolagemann/pocketboy/pkg/display"
	"github.com/thelolagemann/pocketboy/pkg/utils"
	"golang.org/x/term"
)

var width int

func init() {
	display.Install("terminal", &Driver{out: os.Stdout, in: os.Stdin}, []display.DriverOption{
		{Name: "width", Default: 0, Value: &width, Description: "columns to draw with, 0 fits the terminal", Type: "int"},
	})
}

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	home        = "\x1b[H"
	reset       = "\x1b[0m"
	upperHalf   = "▀"
)

// Driver draws frames to the terminal. Pressing q or ctrl-c closes
// the emulator when stdin is a terminal.
type Driver struct {
	emu display.Emulator
	out *os.File
	in  *os.File

	restore func()
}

func (d *Driver) Initialize(emu display.Emulator) {
	d.emu = emu
}

func (d *Driver) Start(frames <-chan []byte) error {
	cols, rows := d.size()

	if fd := int(d.in.Fd()); term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		d.restore = func() { term.Restore(fd, state) }
		defer d.Stop()
		go d.readKeys()
	}

	w := bufio.NewWriterSize(d.out, cols*rows*40)
	w.WriteString(clearScreen + hideCursor)
	defer func() {
		w.WriteString(reset + showCursor + "\r\n")
		w.Flush()
	}()

	var last uint64
	var buf bytes.Buffer
	for f := range frames {
		h := utils.FrameHash(f)
		if h == last {
			continue
		}
		last = h

		buf.Reset()
		buf.WriteString(home)
		render(&buf, f, cols, rows)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) Stop() error {
	if d.restore != nil {
		d.restore()
		d.restore = nil
	}
	return nil
}

// size returns the character cells to draw the frame into, keeping
// the aspect ratio of the screen.
func (d *Driver) size() (cols, rows int) {
	cols = width
	if cols <= 0 {
		cols = 80
		if tw, th, err := term.GetSize(int(d.out.Fd())); err == nil {
			cols = min(tw, (th-1)*2*ppu.ScreenWidth/ppu.ScreenHeight)
		}
	}
	return fitSize(cols)
}

func fitSize(cols int) (int, int) {
	cols = max(1, min(cols, ppu.ScreenWidth))
	rows := max(1, cols*ppu.ScreenHeight/ppu.ScreenWidth/2)
	return cols, rows
}

func (d *Driver) readKeys() {
	b := make([]byte, 1)
	for {
		if _, err := d.in.Read(b); err != nil {
			return
		}
		// q, ctrl-c
		if b[0] == 'q' || b[0] == 3 {
			if d.emu != nil {
				d.emu.Close()
			}
			return
		}
	}
}

// render draws an RGBA frame into cols x rows cells, sampling the
// nearest pixel for the top and bottom half of every cell.
func render(w io.Writer, f []byte, cols, rows int) {
	var line []byte
	for row := 0; row < rows; row++ {
		line = line[:0]
		top := (row * 2) * ppu.ScreenHeight / (rows * 2)
		bottom := (row*2 + 1) * ppu.ScreenHeight / (rows * 2)
		for col := 0; col < cols; col++ {
			x := col * ppu.ScreenWidth / cols
			line = colour(line, "38", f[(top*ppu.ScreenWidth+x)*4:])
			line = colour(line, "48", f[(bottom*ppu.ScreenWidth+x)*4:])
			line = append(line, upperHalf...)
		}
		line = append(line, reset+"\r\n"...)
		w.Write(line)
	}
}

// colour appends the escape selecting the rgb of px as the foreground
// (38) or background (48).
func colour(b []byte, layer string, px []byte) []byte {
	b = append(b, "\x1b["...)
	b = append(b, layer...)
	b = append(b, ";2;"...)
	b = strconv.AppendUint(b, uint64(px[0]), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(px[1]), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(px[2]), 10)
	return append(b, 'm')
}
