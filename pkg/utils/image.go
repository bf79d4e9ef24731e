package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
	"golang.org/x/image/bmp"
)

// FrameImage wraps an RGBA frame of the given dimensions as an image.
// The pixels are shared, not copied.
func FrameImage(rgba []byte, width, height int) *image.RGBA {
	return &image.RGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// FrameHash returns a hash of the frame, used to detect frames that
// haven't changed.
func FrameHash(rgba []byte) uint64 {
	return xxhash.Sum64(rgba)
}

// SaveBMP writes img to filename as a bitmap.
func SaveBMP(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := bmp.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("utils: encoding %s: %w", filename, err)
	}
	return file.Close()
}

// SavePNG writes img to filename as a PNG.
func SavePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("utils: encoding %s: %w", filename, err)
	}
	return file.Close()
}

// SaveImage saves img to a file chosen by the user. The format follows
// the extension, defaulting to PNG.
func SaveImage(img image.Image) error {
	// ask user where to save the image
	filename, err := dialog.File().Filter("PNG Image", "png").Filter("Bitmap", "bmp").Title("Save Image").Save()
	if err != nil {
		return err
	}

	if strings.HasSuffix(strings.ToLower(filename), ".bmp") {
		return SaveBMP(filename, img)
	}
	// does file have a .png extension?
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}
	return SavePNG(filename, img)
}

// CopyImage copies img to the system clipboard as a PNG.
func CopyImage(img image.Image) error {
	err := clipboard.Init()
	if err != nil {
		return err
	}

	// encode image to byte slice
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())
	return nil
}
