// Package ppu implements the display timing of the Game Boy and a
// background-only rasterizer. The PPU is advanced one dot per clock
// cycle, and renders a scanline each time a visible line begins.
package ppu

import (
	"github.com/thelolagemann/pocketboy/internal/ppu/palette"
	"github.com/thelolagemann/pocketboy/internal/types"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// DotsPerLine is the number of dots (clock cycles) in a scanline,
	// including horizontal blanking.
	DotsPerLine = 456
	// Lines is the number of scanlines in a frame, including the 10
	// lines of vertical blanking.
	Lines = 154
	// CyclesPerFrame is the number of clock cycles in a frame.
	CyclesPerFrame = DotsPerLine * Lines
)

// Bus is the memory the PPU observes and publishes LY to.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
type PPU struct {
	dot        uint16 // Current dot within line (0-455)
	line       uint8  // Current line (0-153)
	frameReady bool   // Set on entering vertical blank, cleared on wrap
	frames     uint64 // Number of vertical blanks entered

	bus     Bus
	palette palette.Palette

	frame [ScreenHeight][ScreenWidth]palette.Shade
}

// New returns a PPU in its power on state. LCDC is set to 0x91,
// selecting the 0x9800 tile map and the 0x8000 tile data, and LY to 0.
func New(b Bus) *PPU {
	p := &PPU{
		bus:     b,
		palette: palette.Greyscale,
	}
	b.Write(types.LCDC, 0x91)
	b.Write(types.LY, 0)
	return p
}

// SetPalette sets the palette used by RGBA.
func (p *PPU) SetPalette(pal palette.Palette) {
	p.palette = pal
}

// Tick advances the PPU by a single dot.
func (p *PPU) Tick() {
	p.dot++
	if p.dot < DotsPerLine {
		return
	}
	p.dot = 0
	p.line++

	switch {
	case p.line < ScreenHeight:
		p.bus.Write(types.LY, p.line)
		p.renderLine()
	case p.line == ScreenHeight:
		p.bus.Write(types.LY, p.line)
		p.frameReady = true
		p.frames++
	case p.line < Lines:
		p.bus.Write(types.LY, p.line)
	default:
		p.line = 0
		p.bus.Write(types.LY, 0)
		p.frameReady = false
		p.renderLine()
	}
}

// renderLine rasterizes the background for the current line into the
// framebuffer.
func (p *PPU) renderLine() {
	lcdc := p.bus.Read(types.LCDC)
	scy, scx := p.bus.Read(types.SCY), p.bus.Read(types.SCX)

	tileMap := types.TileMap0
	if lcdc&types.Bit3 != 0 {
		tileMap = types.TileMap1
	}
	signed := lcdc&types.Bit4 == 0

	py := p.line + scy
	row := uint16(py % 8)
	for x := 0; x < ScreenWidth; x++ {
		px := uint8(x) + scx
		tileID := p.bus.Read(tileMap + uint16(py/8)*32 + uint16(px/8))

		var tileBase uint16
		if signed {
			tileBase = uint16(int32(types.TileDataSigned) + int32(int8(tileID))*16)
		} else {
			tileBase = types.TileData + uint16(tileID)*16
		}

		lo := p.bus.Read(tileBase + row*2)
		hi := p.bus.Read(tileBase + row*2 + 1)
		b := 7 - px%8
		p.frame[p.line][x] = palette.Shade((hi>>b&1)<<1 | lo>>b&1)
	}
}

// Dot returns the current dot within the line.
func (p *PPU) Dot() uint16 {
	return p.dot
}

// Line returns the current line.
func (p *PPU) Line() uint8 {
	return p.line
}

// FrameReady reports whether the PPU is in vertical blank, with a
// complete frame in the framebuffer.
func (p *PPU) FrameReady() bool {
	return p.frameReady
}

// Frames returns the number of frames completed since power on.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// Frame returns a copy of the framebuffer.
func (p *PPU) Frame() [ScreenHeight][ScreenWidth]palette.Shade {
	return p.frame
}

// RGBA writes the framebuffer into dst as 8-bit RGBA, row by row.
// dst must hold at least ScreenWidth*ScreenHeight*4 bytes.
func (p *PPU) RGBA(dst []byte) {
	i := 0
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			c := p.palette.RGB(p.frame[y][x])
			dst[i] = c[0]
			dst[i+1] = c[1]
			dst[i+2] = c[2]
			dst[i+3] = 0xFF
			i += 4
		}
	}
}
