// Package mmu provides the address bus for the Game Boy. The MMU is a
// flat 64kB store: the CPU reads and writes through it, and the display
// and tone generator observe the hardware registers it holds. The only
// side effect of a write is the read-only guard over the cartridge ROM,
// and the boot ROM unmapping triggered by BDIS.
package mmu

import (
	"github.com/thelolagemann/pocketboy/internal/types"
	"github.com/thelolagemann/pocketboy/pkg/log"
)

const (
	// Size is the size of the address space.
	Size = 0x10000
	// BootROMSize is the size of the region the boot ROM overlays.
	BootROMSize = 0x100
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory.
//
//	0x0000 - 0x00FF - Boot ROM (while mapped)
//	0x0000 - 0x7FFF - Cartridge ROM (read-only)
//	0x8000 - 0x97FF - Tile data
//	0x9800 - 0x9FFF - Tile maps
//	0xFF00 - 0xFF7F - Hardware registers
type MMU struct {
	raw [Size]uint8

	// cartridge bytes hidden beneath the boot ROM, restored on BDIS
	cartLow     [BootROMSize]uint8
	bootMapped  bool
	keepBootROM bool

	Log log.Logger
}

// NewMMU returns a zero-filled MMU.
func NewMMU(logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &MMU{Log: logger}
}

// Read returns the byte at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Read16 returns the little-endian word at the given address, the low
// byte being read from address and the high byte from address+1.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write writes the given value to the given address. Writes below
// types.ROMEnd are ignored, as that region is backed by ROM.
func (m *MMU) Write(address uint16, value uint8) {
	if address < types.ROMEnd {
		return
	}
	m.raw[address] = value

	if address == types.BDIS && m.bootMapped && !m.keepBootROM {
		m.unmapBootROM()
	}
}

// Write16 writes the given word as two byte writes, low byte first.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// LoadCartridge copies the cartridge image into the address space
// starting at 0x0000. Images larger than the address space are
// truncated; callers are expected to have validated the size.
func (m *MMU) LoadCartridge(rom []byte) {
	n := copy(m.raw[:], rom)
	copy(m.cartLow[:], m.raw[:BootROMSize])
	m.Log.Debugf("mmu: loaded %d bytes of cartridge", n)
}

// LoadBootROM overlays the boot ROM over 0x0000 - 0x00FF. It must be
// called after LoadCartridge, so that the cartridge's bytes can be
// restored once the boot ROM hands over control.
func (m *MMU) LoadBootROM(boot []byte) {
	copy(m.raw[:BootROMSize], boot)
	m.bootMapped = true
}

// KeepBootROM disables boot ROM unmapping: the boot ROM stays mapped
// over the cartridge for the remainder of the run.
func (m *MMU) KeepBootROM() {
	m.keepBootROM = true
}

// BootROMMapped reports whether the boot ROM is currently overlaying
// the cartridge.
func (m *MMU) BootROMMapped() bool {
	return m.bootMapped
}

// Set writes the given value to the given address, bypassing the ROM
// guard. It is intended for tests and debuggers, never the CPU.
func (m *MMU) Set(address uint16, value uint8) {
	m.raw[address] = value
}

func (m *MMU) unmapBootROM() {
	copy(m.raw[:BootROMSize], m.cartLow[:])
	m.bootMapped = false
	m.Log.Debugf("mmu: boot ROM unmapped")
}
