package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV buffers samples in memory and writes them to a 16-bit mono WAV
// file on Close.
type WAV struct {
	filename   string
	sampleRate int
	buffer     []int
}

// NewWAV returns a WAV writing to filename at the given sample rate.
func NewWAV(filename string, sampleRate int) *WAV {
	return &WAV{filename: filename, sampleRate: sampleRate}
}

func (w *WAV) Write(samples []int16) error {
	for _, s := range samples {
		w.buffer = append(w.buffer, int(s))
	}
	return nil
}

// Close encodes the buffered samples to disk.
func (w *WAV) Close() (rerr error) {
	f, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wav: %w", err)
		}
	}()

	// 1 is PCM
	enc := wav.NewEncoder(f, w.sampleRate, 16, 1, 1)
	if err := enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: w.sampleRate},
		Data:           w.buffer,
		SourceBitDepth: 16,
	}); err != nil {
		return fmt.Errorf("wav: encoding %s: %w", w.filename, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: encoding %s: %w", w.filename, err)
	}
	return nil
}
