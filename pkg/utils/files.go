package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given file and performs decompression if necessary.
// gzip, zip and 7z archives are recognised by their extension; for zip
// and 7z the first file in the archive is returned. Anything else is
// returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("utils: reading %s: %w", filename, err)
		}
		defer gz.Close()
		decoder = gz
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: reading %s: %w", filename, err)
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("utils: %s: empty archive", filename)
		}

		// read the first file in the zip file
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("utils: reading %s: %w", filename, err)
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("utils: reading %s: %w", filename, err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("utils: %s: empty archive", filename)
		}

		// read the first file in the archive
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("utils: reading %s: %w", filename, err)
		}
		defer rc.Close()
		decoder = rc
	default:
		// return the data as is
		return data, nil
	}

	// read the decompressed data into a byte slice
	data, err = io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("utils: decompressing %s: %w", filename, err)
	}
	return data, nil
}
