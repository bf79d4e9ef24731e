package mmu

import (
	"testing"

	"github.com/thelolagemann/pocketboy/internal/types"
)

func TestMMU_Write(t *testing.T) {
	m := NewMMU(nil)

	t.Run("ROM", func(t *testing.T) {
		for _, addr := range []uint16{0x0000, 0x0100, 0x4000, 0x7FFF} {
			m.Write(addr, 0x42)
			if got := m.Read(addr); got != 0x00 {
				t.Errorf("expected write to %04X to be ignored, got %02X", addr, got)
			}
		}
	})
	t.Run("RAM", func(t *testing.T) {
		for _, addr := range []uint16{0x8000, 0x9800, 0xC000, types.LY, 0xFFFF} {
			m.Write(addr, 0x42)
			if got := m.Read(addr); got != 0x42 {
				t.Errorf("expected 42 at %04X, got %02X", addr, got)
			}
		}
	})
}

func TestMMU_Write16(t *testing.T) {
	m := NewMMU(nil)

	t.Run("round trip", func(t *testing.T) {
		values := []uint16{0x0000, 0x0001, 0x00FF, 0x0100, 0x1234, 0x8000, 0xBEEF, 0xFFFF}
		for addr := 0x8000; addr <= 0xFFFD; addr++ {
			for _, v := range values {
				m.Write16(uint16(addr), v)
				if got := m.Read16(uint16(addr)); got != v {
					t.Fatalf("expected %04X at %04X, got %04X", v, addr, got)
				}
			}
		}
	})
	t.Run("all values", func(t *testing.T) {
		for v := 0; v <= 0xFFFF; v++ {
			m.Write16(0xC000, uint16(v))
			if got := m.Read16(0xC000); got != uint16(v) {
				t.Fatalf("expected %04X, got %04X", v, got)
			}
		}
	})
	t.Run("little endian", func(t *testing.T) {
		m.Write16(0xC000, 0xABCD)
		if m.Read(0xC000) != 0xCD || m.Read(0xC001) != 0xAB {
			t.Errorf("expected CD AB, got %02X %02X", m.Read(0xC000), m.Read(0xC001))
		}
	})
	t.Run("ROM", func(t *testing.T) {
		for addr := 0; addr < 0x8000; addr += 0x7F {
			m.Write16(uint16(addr), 0xFFFF)
			if got := m.Read16(uint16(addr)); got != 0 {
				t.Fatalf("expected write to %04X to be ignored, got %04X", addr, got)
			}
		}
	})
	t.Run("straddling boundary", func(t *testing.T) {
		// the low byte lands in ROM, only the high byte is stored
		m.Write16(0x7FFF, 0x1234)
		if m.Read(0x7FFF) != 0x00 || m.Read(0x8000) != 0x12 {
			t.Errorf("expected 00 12, got %02X %02X", m.Read(0x7FFF), m.Read(0x8000))
		}
	})
}

func TestMMU_Read16Wrap(t *testing.T) {
	m := NewMMU(nil)
	m.LoadCartridge([]byte{0x34})
	m.Write(0xFFFF, 0x12)
	if got := m.Read16(0xFFFF); got != 0x3412 {
		t.Errorf("expected 3412, got %04X", got)
	}
}

func TestMMU_BootROM(t *testing.T) {
	rom := make([]byte, 0x200)
	for i := range rom {
		rom[i] = 0xAA
	}
	boot := make([]byte, BootROMSize)
	for i := range boot {
		boot[i] = 0x55
	}

	t.Run("overlay", func(t *testing.T) {
		m := NewMMU(nil)
		m.LoadCartridge(rom)
		m.LoadBootROM(boot)

		if m.Read(0x0000) != 0x55 || m.Read(0x00FF) != 0x55 {
			t.Errorf("expected boot ROM to overlay cartridge")
		}
		if m.Read(0x0100) != 0xAA {
			t.Errorf("expected cartridge at 0100, got %02X", m.Read(0x0100))
		}
		if !m.BootROMMapped() {
			t.Errorf("expected boot ROM to be mapped")
		}
	})
	t.Run("unmap", func(t *testing.T) {
		m := NewMMU(nil)
		m.LoadCartridge(rom)
		m.LoadBootROM(boot)
		m.Write(types.BDIS, 0x01)

		if m.Read(0x0000) != 0xAA || m.Read(0x00FF) != 0xAA {
			t.Errorf("expected cartridge to be restored, got %02X", m.Read(0x0000))
		}
		if m.BootROMMapped() {
			t.Errorf("expected boot ROM to be unmapped")
		}
	})
	t.Run("keep", func(t *testing.T) {
		m := NewMMU(nil)
		m.KeepBootROM()
		m.LoadCartridge(rom)
		m.LoadBootROM(boot)
		m.Write(types.BDIS, 0x01)

		if m.Read(0x0000) != 0x55 {
			t.Errorf("expected boot ROM to remain mapped, got %02X", m.Read(0x0000))
		}
	})
}
