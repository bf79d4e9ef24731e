// Package cartridge holds the game ROM and the metadata parsed from its
// header. Memory bank controllers are not emulated: the first 64KiB of
// the image is all the CPU can see.
package cartridge

import (
	"errors"
	"fmt"
)

// MaxSize is the largest image that fits the flat address space.
const MaxSize = 0x10000

// ErrROMTooLarge is returned for images larger than MaxSize.
var ErrROMTooLarge = errors.New("cartridge: rom too large")

// Cartridge represents a basic game cartridge.
type Cartridge struct {
	rom    []byte
	header Header
	// images shorter than 0x150 bytes carry no header
	hasHeader bool
}

// New returns a Cartridge for the given image, parsing the header if the
// image is long enough to contain one.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrROMTooLarge, len(rom))
	}

	c := &Cartridge{rom: rom}
	if len(rom) >= 0x150 {
		// parse the cartridge header (0x0100 - 0x014F)
		header, err := parseHeader(rom[0x100:0x150])
		if err != nil {
			return nil, fmt.Errorf("cartridge: %w", err)
		}
		c.header = header
		c.hasHeader = true
	}
	return c, nil
}

// ROM returns the raw image.
func (c *Cartridge) ROM() []byte {
	return c.rom
}

func (c *Cartridge) Header() Header {
	return c.header
}

// HasHeader reports whether the image was long enough to carry a header.
func (c *Cartridge) HasHeader() bool {
	return c.hasHeader
}

// Title returns an escaped string of the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// IsROMOnly reports whether the cartridge runs without a memory bank
// controller.
func (c *Cartridge) IsROMOnly() bool {
	return !c.hasHeader || c.header.CartridgeType == ROM
}
