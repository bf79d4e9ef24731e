package web

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/thelolagemann/pocketboy/internal/ppu"
)

const (
	framePixels = ppu.ScreenWidth * ppu.ScreenHeight
	frameBytes  = framePixels * 4

	// playerByte identifies the emulator a message belongs to.
	playerByte = 1
)

// Player turns the frames produced by the emulator into the messages
// streamed to clients. Unchanged frames may be skipped, frames that
// differ by a few pixels may be sent as patches, and every payload is
// deduplicated against a cache mirrored by the clients.
type Player struct {
	currentFrame []byte
	patch        []byte
	skipped      uint32

	patchCache, frameCache *cache

	mu sync.Mutex
}

func newPlayer(cacheSize int) *Player {
	return &Player{
		currentFrame: make([]byte, frameBytes),
		patch:        make([]byte, frameBytes),
		patchCache:   newCache(cacheSize),
		frameCache:   newCache(cacheSize),
	}
}

// process compares f against the previous frame and returns the
// messages to broadcast, which may be none.
func (p *Player) process(f []byte, s settings) ([][]byte, error) {
	if len(f) != frameBytes {
		return nil, fmt.Errorf("web: expected a %d byte frame, got %d", frameBytes, len(f))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	clear(p.patch)
	dirtied := 0
	for i := 0; i < frameBytes; i += 4 {
		if !bytes.Equal(p.currentFrame[i:i+4], f[i:i+4]) {
			copy(p.patch[i:i+3], f[i:i+3])
			p.patch[i+3] = 255
			dirtied++
		}
	}
	copy(p.currentFrame, f)

	if dirtied == 0 && s.frameSkipping {
		p.skipped++
		return nil, nil
	}

	var messages [][]byte
	if p.skipped > 0 && s.frameSkipping {
		skip := make([]byte, 4)
		binary.LittleEndian.PutUint32(skip, p.skipped)
		messages = append(messages, createMessage(FrameSkip, skip))
	}
	p.skipped = 0

	// determine if we should patch the framebuffer
	buffer, e, c := p.currentFrame, Frame, p.frameCache
	if s.framePatching && dirtied*100 < s.patchRatio*framePixels {
		buffer, e, c = p.patch, FramePatch, p.patchCache
	}

	var output []byte
	if s.compression {
		var err error
		output, err = cbrotli.Encode(buffer, cbrotli.WriterOptions{Quality: s.quality})
		if err != nil {
			return messages, fmt.Errorf("web: compressing frame: %w", err)
		}
	} else {
		output = append([]byte(nil), buffer...)
	}

	hash := xxhash.Sum64(output)
	idx := make([]byte, 2)

	c.Lock()
	defer c.Unlock()
	if i := c.index(hash); i != -1 {
		binary.LittleEndian.PutUint16(idx, uint16(i))
		cached := FrameCache
		if e == FramePatch {
			cached = PatchCache
		}
		return append(messages, createMessage(cached, idx)), nil
	}

	binary.LittleEndian.PutUint16(idx, uint16(c.add(hash, output)))
	return append(messages, createMessage(e, append(idx, output...))), nil
}

// sync returns the messages that bring a newly connected client up to
// date: the current frame, and the contents of both caches.
func (p *Player) sync() ([][]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	frameData, err := cbrotli.Encode(p.currentFrame, cbrotli.WriterOptions{Quality: 9})
	if err != nil {
		return nil, fmt.Errorf("web: compressing frame: %w", err)
	}

	return [][]byte{
		createMessage(FrameSync, frameData),
		createMessage(PatchCacheSync, p.patchCache.marshal()),
		createMessage(FrameCacheSync, p.frameCache.marshal()),
	}, nil
}

// marshal encodes every filled slot as [length:4][index:2][data...].
func (c *cache) marshal() []byte {
	c.RLock()
	defer c.RUnlock()

	var data []byte
	for i, e := range c.cache {
		if len(e.data) == 0 {
			continue
		}

		data = binary.LittleEndian.AppendUint32(data, uint32(len(e.data)))
		data = binary.LittleEndian.AppendUint16(data, uint16(i))
		data = append(data, e.data...)
	}
	return data
}

func createMessage(messageType Type, data []byte) []byte {
	return append([]byte{messageType, playerByte}, data...)
}
