package audio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type testSource struct {
	mu      sync.Mutex
	pending []int16
}

func (s *testSource) push(samples ...int16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, samples...)
}

func (s *testSource) Samples() []int16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

func (s *testSource) SampleRate() int { return 44100 }

type failingSink struct{ err error }

func (f failingSink) Write([]int16) error { return f.err }
func (f failingSink) Close() error        { return f.err }

func TestPump(t *testing.T) {
	src := &testSource{}
	rec := &Recorder{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Pump(ctx, src, rec, time.Millisecond)
	}()

	src.push(1, 2, 3)
	deadline := time.Now().Add(time.Second * 5)
	for len(rec.Samples()) < 3 {
		if time.Now().After(deadline) {
			t.Fatal("expected samples to be pumped")
		}
		time.Sleep(time.Millisecond)
	}

	src.push(4)
	cancel()
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	got := rec.Samples()
	want := []int16{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestPump_SinkError(t *testing.T) {
	src := &testSource{}
	src.push(1)
	want := errors.New("device lost")

	err := Pump(context.Background(), src, failingSink{want}, time.Millisecond)
	if !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestMulti(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	first, second := errors.New("first"), errors.New("second")

	m := Multi(a, failingSink{first}, b, failingSink{second})
	err := m.Write([]int16{7})
	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Errorf("expected both errors, got %v", err)
	}
	if len(a.Samples()) != 1 || len(b.Samples()) != 1 {
		t.Errorf("expected every sink to be written")
	}

	if err := Multi(a, b).Close(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStream(t *testing.T) {
	s := &stream{limit: 8}

	s.Write([]int16{1, -1})
	p := make([]byte, 6)
	n, err := s.Read(p)
	if err != nil || n != 6 {
		t.Fatalf("expected 6 bytes, got %d (%v)", n, err)
	}
	want := []byte{0x01, 0x00, 0xFF, 0xFF, 0, 0}
	if string(p) != string(want) {
		t.Errorf("expected %v padded with silence, got %v", want, p)
	}

	// only the newest 4 samples fit
	s.Write([]int16{1, 2, 3, 4, 5, 6})
	p = make([]byte, 8)
	s.Read(p)
	if want := []byte{3, 0, 4, 0, 5, 0, 6, 0}; string(p) != string(want) {
		t.Errorf("expected %v, got %v", want, p)
	}
}
