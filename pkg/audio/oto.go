package audio

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Oto plays samples through oto. Samples are queued in a bounded
// stream that the player pulls from, padding with silence when empty.
type Oto struct {
	player *oto.Player
	stream *stream
}

// OpenOto creates the oto context and starts playback.
func OpenOto(sampleRate int) (*Oto, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   time.Millisecond * 50,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	s := &stream{limit: sampleRate / 2 * 2}
	player := ctx.NewPlayer(s)
	player.Play()

	return &Oto{player: player, stream: s}, nil
}

func (o *Oto) Write(samples []int16) error {
	return o.stream.Write(samples)
}

func (o *Oto) Close() error {
	return o.player.Close()
}

// stream is an io.Reader of little endian samples.
type stream struct {
	mu    sync.Mutex
	buf   []byte
	limit int
}

func (s *stream) Write(samples []int16) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range samples {
		s.buf = binary.LittleEndian.AppendUint16(s.buf, uint16(v))
	}
	// keep the newest samples when the reader falls behind
	if over := len(s.buf) - s.limit; over > 0 {
		over += over & 1
		s.buf = append(s.buf[:0], s.buf[over:]...)
	}
	return nil
}

// Read never blocks. It pads with silence when no samples are queued.
func (s *stream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := copy(p, s.buf)
	s.buf = append(s.buf[:0], s.buf[n:]...)
	clear(p[n:])
	return len(p), nil
}
