// Package apu implements a minimal tone generator for the Game Boy,
// sampling the registers of square channel 1.
package apu

import (
	"sync"

	"github.com/thelolagemann/pocketboy/internal/types"
)

const (
	// ClockSpeed is the number of Tick calls per second.
	ClockSpeed = 4194304
	// DefaultSampleRate is the sample rate used when none is given.
	DefaultSampleRate = 44100
	// BufferSize is the maximum number of samples held between drains.
	// Samples produced while the buffer is full are dropped.
	BufferSize = 4096

	// Amplitude is the magnitude of the square wave.
	Amplitude = 3000
)

// dutyThresholds holds, for each NR11 duty setting, the number of
// eighths of a period the wave spends high (12.5%, 25%, 50%, 75%).
var dutyThresholds = [4]int{1, 2, 4, 6}

// Bus is the memory the APU samples its registers from.
type Bus interface {
	Read(address uint16) uint8
}

// APU represents the GameBoy's audio processing unit, reduced to the
// square wave of channel 1.
type APU struct {
	bus Bus

	phase      int // position within the current period, in ticks
	sampleRate int
	counter    int // accumulates sampleRate each tick
	level      int16

	buffer []int16
	sync.Mutex
}

// New returns an APU sampling the given bus at sampleRate samples per
// second. A sampleRate <= 0 uses DefaultSampleRate.
func New(bus Bus, sampleRate int) *APU {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &APU{
		bus:        bus,
		sampleRate: sampleRate,
		buffer:     make([]int16, 0, BufferSize),
	}
}

// SampleRate returns the number of samples produced per second.
func (a *APU) SampleRate() int {
	return a.sampleRate
}

// Tick advances the tone generator by a single clock cycle.
func (a *APU) Tick() {
	a.level = a.step()

	a.counter += a.sampleRate
	if a.counter < ClockSpeed {
		return
	}
	a.counter -= ClockSpeed

	a.Lock()
	if len(a.buffer) < BufferSize {
		a.buffer = append(a.buffer, a.level)
	}
	a.Unlock()
}

// step returns the current output level and advances the phase. The
// output is silent unless sound (NR52.7), the DAC (NR12 & 0xF8) and
// the channel (NR14.7) are all enabled.
func (a *APU) step() int16 {
	if a.bus.Read(types.NR52)&types.Bit7 == 0 {
		return 0
	}
	if a.bus.Read(types.NR12)&0xF8 == 0 {
		return 0
	}
	nr14 := a.bus.Read(types.NR14)
	if nr14&types.Bit7 == 0 {
		return 0
	}

	frequency := int(a.bus.Read(types.NR13)) | int(nr14&0x07)<<8
	waveLength := 2048 - frequency
	duty := a.bus.Read(types.NR11) >> 6 & 0x03

	// a register write may shorten the period below the current phase
	a.phase %= waveLength

	level := int16(-Amplitude)
	if a.phase*8/waveLength < dutyThresholds[duty] {
		level = Amplitude
	}
	a.phase = (a.phase + 1) % waveLength
	return level
}

// Samples drains and returns the samples produced since the last call.
func (a *APU) Samples() []int16 {
	a.Lock()
	defer a.Unlock()
	if len(a.buffer) == 0 {
		return nil
	}
	samples := make([]int16, len(a.buffer))
	copy(samples, a.buffer)
	a.buffer = a.buffer[:0]
	return samples
}
