package types

import "strings"

type Model int // The Model a boot image was made for.

const (
	Unset Model = iota // Unset - Model hasn't been identified - behaves as DMG
	DMG0               // DMG0 - early Game Boy, only released in Japan
	DMG                // DMG - Standard Game Boy
	MGB                // MGB - Pocket Game Boy
	SGB                // SGB - Super Game Boy
)

var ModelNames = map[Model]string{
	DMG0:  "DMG0",
	DMG:   "DMG",
	MGB:   "MGB",
	SGB:   "SGB",
	Unset: "Unset",
}

// StringToModel converts a string to a Model.
func StringToModel(s string) Model {
	for m, n := range ModelNames {
		if n == strings.ToUpper(s) {
			return m
		}
	}

	return Unset
}

func (m Model) String() string {
	return ModelNames[m]
}

// ModelRegisters - model specific CPU registers after the boot image
// hands over to the cartridge, in the order A F B C D E H L.
var ModelRegisters = map[Model][8]uint8{
	Unset: {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D}, // default to DMG registers
	DMG0:  {0x01, 0x00, 0xFF, 0x13, 0x00, 0xC1, 0x84, 0x03},
	DMG:   {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	MGB:   {0xFF, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	SGB:   {0x01, 0x00, 0x00, 0x14, 0x00, 0x00, 0xC0, 0x60},
}
