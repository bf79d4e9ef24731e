// Package audio provides the sinks the samples of the tone generator
// are played through or captured to.
package audio

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Source produces mono signed 16-bit samples. Samples drains every
// sample produced since the previous call.
type Source interface {
	Samples() []int16
	SampleRate() int
}

// Sink consumes mono signed 16-bit samples.
type Sink interface {
	Write(samples []int16) error
	Close() error
}

// Pump drains src into sink every interval until ctx is cancelled,
// returning the first error from the sink.
func Pump(ctx context.Context, src Source, sink Sink, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			// flush what's left
			if s := src.Samples(); len(s) > 0 {
				return sink.Write(s)
			}
			return nil
		case <-t.C:
			if s := src.Samples(); len(s) > 0 {
				if err := sink.Write(s); err != nil {
					return err
				}
			}
		}
	}
}

type multi []Sink

// Multi returns a Sink that writes to every sink given.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Write(samples []int16) error {
	var result error
	for _, s := range m {
		if err := s.Write(samples); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

func (m multi) Close() error {
	var result error
	for _, s := range m {
		if err := s.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

// Recorder keeps every sample written to it in memory.
type Recorder struct {
	mu      sync.Mutex
	samples []int16
}

func (r *Recorder) Write(samples []int16) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, samples...)
	return nil
}

func (r *Recorder) Close() error {
	return nil
}

// Samples returns a copy of the samples recorded.
func (r *Recorder) Samples() []int16 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int16(nil), r.samples...)
}
