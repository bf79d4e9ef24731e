package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	rom := []byte{0x3E, 0x05, 0x3D, 0x76}

	raw := filepath.Join(dir, "test.gb")
	if err := os.WriteFile(raw, rom, 0o644); err != nil {
		t.Fatal(err)
	}

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	w.Write(rom)
	w.Close()
	gzPath := filepath.Join(dir, "test.gb.gz")
	if err := os.WriteFile(gzPath, gz.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var zb bytes.Buffer
	zw := zip.NewWriter(&zb)
	f, _ := zw.Create("test.gb")
	f.Write(rom)
	zw.Close()
	zipPath := filepath.Join(dir, "test.ZIP")
	if err := os.WriteFile(zipPath, zb.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{raw, gzPath, zipPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := LoadFile(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(data, rom) {
				t.Errorf("expected %v, got %v", rom, data)
			}
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "missing.gb")); err == nil {
		t.Errorf("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.7z")
	if err := os.WriteFile(bad, []byte("not an archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Errorf("expected error for corrupt archive")
	}
}
