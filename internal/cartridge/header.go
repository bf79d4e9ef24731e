package cartridge

import (
	"bytes"
	"fmt"
	"strings"
)

type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	POCKETCAMERA      Type = 0x1F
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:              "ROM",
	MBC1:             "MBC1",
	MBC1RAM:          "MBC1+RAM",
	MBC1RAMBATT:      "MBC1+RAM+BATTERY",
	MBC2:             "MBC2",
	MBC2BATT:         "MBC2+BATTERY",
	ROMRAM:           "ROM+RAM",
	ROMRAMBATT:       "ROM+RAM+BATTERY",
	MMM01:            "MMM01",
	MBC3TIMERBATT:    "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT: "MBC3+TIMER+RAM+BATTERY",
	MBC3:             "MBC3",
	MBC3RAM:          "MBC3+RAM",
	MBC3RAMBATT:      "MBC3+RAM+BATTERY",
	MBC5:             "MBC5",
	MBC5RAM:          "MBC5+RAM",
	MBC5RAMBATT:      "MBC5+RAM+BATTERY",
	MBC5RUMBLE:       "MBC5+RUMBLE",
	POCKETCAMERA:     "POCKET CAMERA",
	HUDSONHUC1:       "HuC1",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02X)", uint8(t))
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x013F-0x0142 - ManufacturerCode of the game
	ManufacturerCode string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	// 0x0144-0x0145 - NewLicenseeCode of the game, used when
	// OldLicenseeCode is 0x33.
	NewLicenseeCode string
	SGBFlag         bool
	CartridgeType   Type
	ROMSize         uint
	RAMSize         uint
	CountryCode     uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16

	// computed over 0x0134-0x014C
	checksum uint8
}

// parseHeader parses the header of the given ROM and returns a Header.
func parseHeader(header []byte) (Header, error) {
	h := Header{}

	// check if the header is valid
	if len(header) != 0x50 {
		return h, fmt.Errorf("invalid header length: %d", len(header))
	}

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// parse the title
	if h.CartridgeGBMode == FlagOnlyDMG {
		h.Title = titleString(header[0x34:0x44])
	} else {
		h.Title = titleString(header[0x34:0x43])
	}

	h.ManufacturerCode = cleanString(header[0x3F:0x43])
	h.NewLicenseeCode = cleanString(header[0x44:0x46])
	h.SGBFlag = header[0x46] == 0x03
	h.CartridgeType = Type(header[0x47])

	// parse the ROM size (calculated by 32kB x (1 << n))
	h.ROMSize = (32 * 1024) * (1 << (header[0x48] & 0x0F))

	h.RAMSize = ramMAP[header[0x49]]
	h.CountryCode = header[0x4A]
	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]

	// the global checksum is stored big endian
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	for _, b := range header[0x34:0x4D] {
		h.checksum = h.checksum - b - 1
	}

	return h, nil
}

// titleString returns the title up to its first NUL. Later DMG titles
// share their last bytes with the manufacturer code, which follows the
// padding.
func titleString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return cleanString(b)
}

// cleanString trims the NUL padding and any non-printable bytes
// from a header string.
func cleanString(b []byte) string {
	return strings.TrimRight(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return -1
		}
		return r
	}, string(b)), " ")
}

// ChecksumValid reports whether the header checksum at 0x014D matches
// the bytes it covers.
func (h *Header) ChecksumValid() bool {
	return h.checksum == h.HeaderChecksum
}

// Licensee returns the licensee code, preferring the new licensee code
// when the old one defers to it.
func (h *Header) Licensee() string {
	if h.OldLicenseeCode == 0x33 {
		return h.NewLicenseeCode
	}
	return fmt.Sprintf("%02X", h.OldLicenseeCode)
}

// GameboyColor reports whether the cartridge flags CGB support at 0x0143.
func (h *Header) GameboyColor() bool {
	return h.CartridgeGBMode == FlagOnlyCGB || h.CartridgeGBMode == FlagSupportsCGB
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | %s | ROM: %dKiB | RAM: %dKiB | licensee: %s",
		h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024, h.Licensee())
}
