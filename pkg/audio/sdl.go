package audio

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// maxQueued is the latency, in seconds, past which queued audio is
// dropped rather than queued further.
const maxQueued = 0.25

// SDL plays samples through the default SDL audio device.
type SDL struct {
	device     sdl.AudioDeviceID
	sampleRate int
}

// OpenSDL opens the default audio device for mono 16-bit playback.
func OpenSDL(sampleRate int) (*SDL, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, err
	}

	device, err := sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}, nil, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, err
	}
	sdl.PauseAudioDevice(device, false)

	return &SDL{device: device, sampleRate: sampleRate}, nil
}

func (s *SDL) Write(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}
	// drop samples if the device has fallen behind
	if float64(sdl.GetQueuedAudioSize(s.device)) > maxQueued*float64(s.sampleRate*2) {
		return nil
	}

	return sdl.QueueAudio(s.device, unsafe.Slice((*byte)(unsafe.Pointer(&samples[0])), len(samples)*2))
}

func (s *SDL) Close() error {
	sdl.CloseAudioDevice(s.device)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
