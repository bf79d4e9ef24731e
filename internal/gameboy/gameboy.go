// Package gameboy provides an emulation of a Nintendo Game Boy.
//
// The GameBoy runs the CPU, PPU and APU in strict lock-step: every
// instruction is executed to completion, and the PPU and APU are then
// ticked once for each clock cycle it took.
package gameboy

import (
	"context"
	"fmt"
	"time"

	"github.com/thelolagemann/pocketboy/internal/apu"
	"github.com/thelolagemann/pocketboy/internal/boot"
	"github.com/thelolagemann/pocketboy/internal/cartridge"
	"github.com/thelolagemann/pocketboy/internal/cpu"
	"github.com/thelolagemann/pocketboy/internal/mmu"
	"github.com/thelolagemann/pocketboy/internal/ppu"
	"github.com/thelolagemann/pocketboy/internal/ppu/palette"
	"github.com/thelolagemann/pocketboy/internal/types"
	"github.com/thelolagemann/pocketboy/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = ppu.CyclesPerFrame // ~59.7 frames per second
	// FrameSize is the length of an RGBA frame in bytes.
	FrameSize = ppu.ScreenWidth * ppu.ScreenHeight * 4
)

// FrameDuration is the time the hardware takes to produce a frame.
var FrameDuration = time.Second * CyclesPerFrame / ClockSpeed

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	PPU       *ppu.PPU
	APU       *apu.APU
	Cartridge *cartridge.Cartridge
	Boot      *boot.ROM

	log.Logger

	bootROM     []byte
	keepBootROM bool
	noBios      bool
	model       types.Model
	debug       bool
	observers   []cpu.Observer
	sampleRate  int
	palette     palette.Palette
	speed       float64
}

// NewGameBoy returns a new GameBoy running the given ROM. Without
// options, execution starts at 0x0000 with every register cleared.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger:     log.NewNullLogger(),
		sampleRate: apu.DefaultSampleRate,
		palette:    palette.Greyscale,
		speed:      1,
		model:      types.DMG,
	}
	for _, opt := range opts {
		opt(g)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}
	g.Cartridge = cart
	if cart.HasHeader() {
		h := cart.Header()
		g.WithFields(log.Fields{
			"title":        h.Title,
			"manufacturer": h.ManufacturerCode,
			"licensee":     h.Licensee(),
			"type":         h.CartridgeType.String(),
			"cgb":          h.GameboyColor(),
		}).Infof("loaded %d bytes", len(rom))
		if !h.ChecksumValid() {
			g.Warnf("header checksum mismatch: expected 0x%02X", h.HeaderChecksum)
		}
	}
	if !cart.IsROMOnly() {
		g.Warnf("cartridge type %s is not supported, only the first 64KiB are mapped", cart.Header().CartridgeType)
	}

	g.MMU = mmu.NewMMU(g.Logger)
	g.MMU.LoadCartridge(rom)
	if g.keepBootROM {
		g.MMU.KeepBootROM()
	}

	if g.bootROM != nil && !g.noBios {
		b, err := boot.LoadBootROM(g.bootROM)
		if err != nil {
			return nil, fmt.Errorf("gameboy: %w", err)
		}
		g.Boot = b
		g.MMU.LoadBootROM(b.Bytes())
		g.Infof("using boot rom %s (%s)", b.Description(), b.Checksum())
	}

	g.CPU = cpu.NewCPU(g.MMU)
	g.PPU = ppu.New(g.MMU)
	g.PPU.SetPalette(g.palette)
	g.APU = apu.New(g.MMU, g.sampleRate)

	if g.noBios {
		g.skipBoot()
	}

	if g.debug {
		g.CPU.Observe(g.logState)
	}
	for _, o := range g.observers {
		g.CPU.Observe(o)
	}

	return g, nil
}

// skipBoot puts the CPU and the sound registers in the state the boot
// ROM of the configured model leaves them in.
func (g *GameBoy) skipBoot() {
	r := types.ModelRegisters[g.model]
	g.CPU.A, g.CPU.F, g.CPU.B, g.CPU.C = r[0], r[1], r[2], r[3]
	g.CPU.D, g.CPU.E, g.CPU.H, g.CPU.L = r[4], r[5], r[6], r[7]
	g.CPU.SP = 0xFFFE
	g.CPU.PC = 0x0100

	g.MMU.Write(types.NR11, 0xBF)
	g.MMU.Write(types.NR12, 0xF3)
	g.MMU.Write(types.NR52, 0xF1)
}

func (g *GameBoy) logState(s cpu.State) {
	g.WithFields(log.Fields{
		"pc":     fmt.Sprintf("%04X", s.PC),
		"opcode": fmt.Sprintf("%02X", s.Opcode),
		"af":     fmt.Sprintf("%02X%02X", s.A, s.F),
		"bc":     fmt.Sprintf("%02X%02X", s.B, s.C),
		"de":     fmt.Sprintf("%02X%02X", s.D, s.E),
		"hl":     fmt.Sprintf("%02X%02X", s.H, s.L),
		"sp":     fmt.Sprintf("%04X", s.SP),
		"cycles": s.Cycles,
	}).Debugf("%s", s.Name)
}

// Title returns the title of the loaded cartridge.
func (g *GameBoy) Title() string {
	return g.Cartridge.Title()
}

// Step executes a single instruction, and then ticks the PPU and APU
// once for every cycle the instruction took.
func (g *GameBoy) Step() (uint8, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		return 0, err
	}
	for i := uint8(0); i < cycles; i++ {
		g.PPU.Tick()
		g.APU.Tick()
	}
	return cycles, nil
}

// Frame will step the emulation until the PPU enters vertical blank,
// and returns the completed frame as RGBA.
func (g *GameBoy) Frame() ([]byte, error) {
	frames := g.PPU.Frames()
	for g.PPU.Frames() == frames {
		if _, err := g.Step(); err != nil {
			return nil, err
		}
	}

	frame := make([]byte, FrameSize)
	g.PPU.RGBA(frame)
	return frame, nil
}

// Run steps the emulation frame by frame, sending every completed
// frame to frames, until ctx is cancelled or the CPU fails to decode
// an instruction. Frames are paced to the hardware's frame rate scaled
// by the configured speed. Cancellation is not an error.
func (g *GameBoy) Run(ctx context.Context, frames chan<- []byte) error {
	var ticker *time.Ticker
	if g.speed > 0 {
		ticker = time.NewTicker(time.Duration(float64(FrameDuration) / g.speed))
		defer ticker.Stop()
	}

	for {
		frame, err := g.Frame()
		if err != nil {
			g.Errorf("emulation stopped: %v", err)
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case frames <- frame:
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	}
}
