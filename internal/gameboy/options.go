package gameboy

import (
	"github.com/thelolagemann/pocketboy/internal/cpu"
	"github.com/thelolagemann/pocketboy/internal/ppu/palette"
	"github.com/thelolagemann/pocketboy/internal/types"
	"github.com/thelolagemann/pocketboy/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance. Options are applied before the hardware is assembled.
type Opt func(gb *GameBoy)

// Debug attaches an observer that logs every retired instruction at
// debug level, with the registers as structured fields.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

// WithObserver registers an observer called after every retired
// instruction.
func WithObserver(o cpu.Observer) Opt {
	return func(gb *GameBoy) {
		gb.observers = append(gb.observers, o)
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator. The boot ROM is
// overlaid on the first 256 bytes of the cartridge and execution
// starts at 0x0000 with every register cleared.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// KeepBootROM leaves the boot ROM mapped after it writes to BDIS.
func KeepBootROM() Opt {
	return func(gb *GameBoy) {
		gb.keepBootROM = true
	}
}

// NoBios skips the boot ROM, starting the cartridge at 0x0100 with the
// registers set to the values upon completion of the boot ROM of the
// model set with AsModel, DMG by default.
func NoBios() Opt {
	return func(gb *GameBoy) {
		gb.noBios = true
	}
}

// AsModel selects the model whose post-boot registers NoBios starts
// with.
func AsModel(m types.Model) Opt {
	return func(gb *GameBoy) {
		gb.model = m
	}
}

// WithSampleRate sets the number of audio samples produced per second.
func WithSampleRate(rate int) Opt {
	return func(gb *GameBoy) {
		gb.sampleRate = rate
	}
}

// WithPalette sets the palette frames are rendered with.
func WithPalette(p palette.Palette) Opt {
	return func(gb *GameBoy) {
		gb.palette = p
	}
}

// Speed sets the speed Run paces frames at, as a multiple of the
// hardware's frame rate. A speed of 0 runs unthrottled.
func Speed(speed float64) Opt {
	return func(gb *GameBoy) {
		gb.speed = speed
	}
}
