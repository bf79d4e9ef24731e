package types

// HardwareAddress represents the address of a hardware register. The
// registers live in the 0xFF00 - 0xFF7F window of the address space and
// are plain bytes of memory: the CPU writes them, and the display and
// tone generator observe them on every tick.
type HardwareAddress = uint16

const (
	// NR11 is the address of the NR11 hardware register, holding the
	// duty cycle of square channel 1 in bits 7-6.
	//
	//  Bit 7-6 - Wave Pattern Duty (00: 12.5%, 01: 25%, 10: 50%, 11: 75%)
	//  Bit 5-0 - Sound length data (unused)
	NR11 HardwareAddress = 0xFF11
	// NR12 is the address of the NR12 hardware register. Channel 1's DAC
	// is powered on whenever any of the upper 5 bits are set.
	NR12 HardwareAddress = 0xFF12
	// NR13 is the address of the NR13 hardware register, holding the lower
	// 8 bits of channel 1's 11-bit frequency.
	NR13 HardwareAddress = 0xFF13
	// NR14 is the address of the NR14 hardware register.
	//
	//  Bit 7   - Channel enable (trigger)
	//  Bit 2-0 - Upper 3 bits of the frequency
	NR14 HardwareAddress = 0xFF14
	// NR52 is the address of the NR52 hardware register. Bit 7 is the
	// master sound enable; while it is clear all channels are silent.
	NR52 HardwareAddress = 0xFF26

	// LCDC is the address of the LCDC hardware register, controlling the
	// layout used by the background rasterizer.
	//
	//  Bit 7 - LCD Display Enable             (0=Off, 1=On)
	//  Bit 4 - BG Tile Data Select            (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 0 - BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// SCY is the address of the SCY hardware register, the vertical
	// scroll of the background in pixels.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the SCX hardware register, the horizontal
	// scroll of the background in pixels.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the LY hardware register. It holds the line
	// currently being processed by the display (0-153), and is written
	// by the display on every line transition.
	LY HardwareAddress = 0xFF44
	// BDIS is the address of the BDIS hardware register. Writing to it
	// unmaps the boot ROM, restoring the cartridge's first 256 bytes.
	BDIS HardwareAddress = 0xFF50
)

// Memory regions of the flat address space.
const (
	// ROMEnd is the first writable address. Every write below it is
	// ignored, modelling the read-only cartridge ROM.
	ROMEnd uint16 = 0x8000
	// TileData is the start of the unsigned tile pattern area.
	TileData uint16 = 0x8000
	// TileDataSigned is the base of the signed tile pattern area used
	// when LCDC.4 is clear.
	TileDataSigned uint16 = 0x9000
	// TileMap0 is the first 32x32 background tile map.
	TileMap0 uint16 = 0x9800
	// TileMap1 is the second 32x32 background tile map.
	TileMap1 uint16 = 0x9C00
)
