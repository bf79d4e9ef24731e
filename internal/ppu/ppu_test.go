package ppu

import (
	"testing"

	"github.com/thelolagemann/pocketboy/internal/mmu"
	"github.com/thelolagemann/pocketboy/internal/ppu/palette"
	"github.com/thelolagemann/pocketboy/internal/types"
)

func newTestPPU() (*PPU, *mmu.MMU) {
	m := mmu.NewMMU(nil)
	return New(m), m
}

func tick(p *PPU, n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}

func TestNew(t *testing.T) {
	p, m := newTestPPU()
	if m.Read(types.LCDC) != 0x91 {
		t.Errorf("expected LCDC to be 0x91, got 0x%02X", m.Read(types.LCDC))
	}
	if m.Read(types.LY) != 0 || p.Line() != 0 || p.Dot() != 0 {
		t.Errorf("expected PPU to start at line 0 dot 0")
	}
	if p.FrameReady() {
		t.Errorf("expected frame not to be ready")
	}
}

func TestPPU_Timing(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		p, m := newTestPPU()
		tick(p, DotsPerLine-1)
		if p.Line() != 0 || p.Dot() != DotsPerLine-1 {
			t.Errorf("expected line 0 dot 455, got line %d dot %d", p.Line(), p.Dot())
		}
		p.Tick()
		if p.Line() != 1 || p.Dot() != 0 || m.Read(types.LY) != 1 {
			t.Errorf("expected line 1 dot 0 LY 1, got line %d dot %d LY %d", p.Line(), p.Dot(), m.Read(types.LY))
		}
	})
	t.Run("vblank", func(t *testing.T) {
		p, m := newTestPPU()
		tick(p, DotsPerLine*ScreenHeight-1)
		if p.FrameReady() {
			t.Errorf("expected frame not to be ready before line 144")
		}
		p.Tick()
		if !p.FrameReady() || m.Read(types.LY) != 144 || p.Frames() != 1 {
			t.Errorf("expected frame ready at LY 144, got ready=%v LY=%d frames=%d", p.FrameReady(), m.Read(types.LY), p.Frames())
		}
		tick(p, DotsPerLine*9)
		if !p.FrameReady() || m.Read(types.LY) != 153 {
			t.Errorf("expected frame ready through LY 153, got ready=%v LY=%d", p.FrameReady(), m.Read(types.LY))
		}
	})
	t.Run("frame", func(t *testing.T) {
		p, m := newTestPPU()
		tick(p, CyclesPerFrame)
		if p.Line() != 0 || p.Dot() != 0 || m.Read(types.LY) != 0 || p.FrameReady() {
			t.Errorf("expected wrap to line 0, got line %d dot %d LY %d ready=%v", p.Line(), p.Dot(), m.Read(types.LY), p.FrameReady())
		}
		tick(p, CyclesPerFrame*2)
		if p.Frames() != 3 {
			t.Errorf("expected 3 frames, got %d", p.Frames())
		}
	})
}

// writeTile writes a tile whose every row has the given pattern bytes.
func writeTile(m *mmu.MMU, base uint16, lo, hi uint8) {
	for row := uint16(0); row < 8; row++ {
		m.Write(base+row*2, lo)
		m.Write(base+row*2+1, hi)
	}
}

func TestPPU_Rasterize(t *testing.T) {
	dark, light, white := palette.Dark, palette.Light, palette.White
	tests := []struct {
		name  string
		setup func(m *mmu.MMU)
		want  [8]palette.Shade
	}{
		{
			name: "unsigned tile data",
			setup: func(m *mmu.MMU) {
				writeTile(m, 0x8010, 0x0F, 0xF0)
				m.Write(types.TileMap0, 1)
			},
			want: [8]palette.Shade{dark, dark, dark, dark, light, light, light, light},
		},
		{
			name: "horizontal scroll",
			setup: func(m *mmu.MMU) {
				writeTile(m, 0x8010, 0x0F, 0xF0)
				m.Write(types.TileMap0, 1)
				m.Write(types.SCX, 4)
			},
			want: [8]palette.Shade{light, light, light, light, white, white, white, white},
		},
		{
			name: "vertical scroll",
			setup: func(m *mmu.MMU) {
				writeTile(m, 0x8010, 0x0F, 0xF0)
				m.Write(types.TileMap0, 1)
				m.Write(types.SCY, 8)
			},
			want: [8]palette.Shade{},
		},
		{
			name: "signed tile data",
			setup: func(m *mmu.MMU) {
				m.Write(types.LCDC, 0x81)
				writeTile(m, 0x8FF0, 0xFF, 0xFF)
				m.Write(types.TileMap0, 0xFF)
			},
			want: [8]palette.Shade{3, 3, 3, 3, 3, 3, 3, 3},
		},
		{
			name: "second tile map",
			setup: func(m *mmu.MMU) {
				m.Write(types.LCDC, 0x99)
				writeTile(m, 0x8020, 0xFF, 0x00)
				m.Write(types.TileMap1, 2)
			},
			want: [8]palette.Shade{light, light, light, light, light, light, light, light},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m := newTestPPU()
			tt.setup(m)
			tick(p, DotsPerLine)

			frame := p.Frame()
			for x, want := range tt.want {
				if frame[1][x] != want {
					t.Errorf("pixel %d: expected %s, got %s", x, want, frame[1][x])
				}
			}
		})
	}
}

func TestPPU_RendersLineZeroOnWrap(t *testing.T) {
	p, m := newTestPPU()
	writeTile(m, 0x8000, 0xFF, 0xFF)
	tick(p, CyclesPerFrame)
	if p.Frame()[0][0] != palette.Black {
		t.Errorf("expected line 0 to be rendered on wrap")
	}
}

func TestPPU_RGBA(t *testing.T) {
	p, m := newTestPPU()
	writeTile(m, 0x8000, 0x00, 0xFF)
	tick(p, DotsPerLine)

	buf := make([]byte, ScreenWidth*ScreenHeight*4)
	p.RGBA(buf)
	row := buf[ScreenWidth*4 : ScreenWidth*4+4]
	if row[0] != 0x55 || row[1] != 0x55 || row[2] != 0x55 || row[3] != 0xFF {
		t.Errorf("expected dark grey, got %v", row)
	}

	p.SetPalette(palette.Green)
	p.RGBA(buf)
	if buf[ScreenWidth*4] != 0x30 {
		t.Errorf("expected green palette, got 0x%02X", buf[ScreenWidth*4])
	}
}
