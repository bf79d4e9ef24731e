// Package boot provides the boot ROM for the Game Boy. Whilst this
// package is not strictly required for the emulator to function, it
// can be used to emulate the boot process of the Game Boy.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/thelolagemann/pocketboy/internal/types"
)

// Size is the length of a DMG family boot ROM.
const Size = 256

// ErrInvalidLength is returned for images that are not exactly Size bytes.
var ErrInvalidLength = errors.New("boot: invalid boot rom length")

// ROM represents a boot ROM for the Game Boy. When the Game Boy first
// powers on, the boot ROM is mapped to memory addresses 0x0000 -
// 0x00FF.
//
// The boot ROM performs a series of tasks, such as initializing the
// hardware, setting the stack pointer, scrolling the Nintendo logo, etc.
//
// Once the boot ROM has completed its tasks, it is unmapped from memory
// (by writing to the types.BDIS register), and the cartridge is mapped
// over the boot ROM, thus starting the cartridge execution.
type ROM struct {
	raw      []byte // the raw boot rom
	checksum string // the MD5 checksum of the boot rom
}

// LoadBootROM validates the length of b and returns a ROM holding it,
// along with its MD5 checksum.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(b))
	}

	// calculate checksum
	bootChecksum := md5.Sum(b)

	return &ROM{
		raw:      b,
		checksum: hex.EncodeToString(bootChecksum[:]),
	}, nil
}

// Bytes returns the raw boot rom.
func (b *ROM) Bytes() []byte {
	return b.raw
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() types.Model {
	if b == nil {
		return types.Unset
	}
	return knownBootROMChecksums[b.checksum].model
}

// Description returns a human readable name of the hardware the boot
// rom was dumped from.
func (b *ROM) Description() string {
	if b == nil {
		return "none"
	}
	if known, ok := knownBootROMChecksums[b.checksum]; ok {
		return known.name
	}
	return "unknown"
}

// knownBootROMChecksums is a map of known boot rom checksums,
// with the key being the checksum.
var knownBootROMChecksums = map[string]struct {
	model types.Model
	name  string
}{
	DMG0: {types.DMG0, "Game Boy (DMG-0)"},
	DMG:  {types.DMG, "Game Boy (DMG-01)"},
	MGB:  {types.MGB, "Game Boy Pocket"},
	SGB:  {types.SGB, "Super Game Boy"},
}

const (
	// DMG0 is the checksum of the DMG early boot ROM,
	// a variant that was found in very early DMG units and
	// only ever sold in Japan. In the case of a boot failure
	// it flashes the screen, rather than hanging after the
	// Nintendo logo.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the checksum of the DMG boot rom, which is
	// the most common boot ROM found in the original DMG-01
	// models.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB is the checksum of the MGB boot ROM, which differs
	// only by a single byte from the DMG boot ROM, loading
	// the value 0xFF into the A register, rather than 0x01.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB is the checksum of the SGB boot ROM. Instead of
	// showing a logo animation, it sends the cartridge header
	// to the SNES.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
)
