package headless

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thelolagemann/pocketboy/internal/ppu"
	"github.com/thelolagemann/pocketboy/pkg/utils"
)

func frame(v byte) []byte {
	f := make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4)
	for i := range f {
		f[i] = v
	}
	return f
}

func TestDriver(t *testing.T) {
	dir := t.TempDir()
	d := &Driver{Dir: dir, Every: 2}

	frames := make(chan []byte, 4)
	frames <- frame(0xFF)
	frames <- frame(0xFF)
	frames <- frame(0x00)
	frames <- frame(0xFF)
	close(frames)

	if err := d.Start(frames); err != nil {
		t.Fatal(err)
	}

	if d.Frames() != 4 {
		t.Errorf("expected 4 frames, got %d", d.Frames())
	}
	if d.Unique() != 3 {
		t.Errorf("expected 3 unique frames, got %d", d.Unique())
	}
	if want := utils.FrameHash(frame(0xFF)); d.Hash() != want {
		t.Errorf("expected hash %x, got %x", want, d.Hash())
	}

	for _, name := range []string{"frame-000002.bmp", "frame-000004.bmp"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to be dumped: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "frame-000001.bmp")); err == nil {
		t.Errorf("expected frame 1 not to be dumped")
	}
}

func TestDriver_DumpError(t *testing.T) {
	d := &Driver{Dir: filepath.Join(t.TempDir(), "missing"), Every: 1}

	frames := make(chan []byte, 1)
	frames <- frame(0)
	close(frames)

	if err := d.Start(frames); err == nil {
		t.Errorf("expected an error dumping to a missing directory")
	}
}
