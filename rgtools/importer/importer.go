// Package importer reads Racoon logger files into track records.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"racoon-gps/rgtools/track"
	"strings"
)

// Supported file suffixes, matched case-sensitively.
const (
	GPXExt  = ".gpx"
	TextExt = ".txt"
)

// Importer reads a whole logger file.
type Importer interface {
	Import(r io.Reader) (track.Records, error)
}

// UnsupportedError is returned for files without a known suffix.
type UnsupportedError struct {
	Path string
	Ext  string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no importer for filetype %q", e.Ext)
}

// ForPath picks the importer matching the suffix of path.
func ForPath(path string) (Importer, error) {
	switch {
	case strings.HasSuffix(path, GPXExt):
		return GPX{}, nil
	case strings.HasSuffix(path, TextExt):
		return Text{}, nil
	}
	return nil, &UnsupportedError{Path: path, Ext: filepath.Ext(path)}
}

// ImportFile opens path and imports it with the matching importer.
func ImportFile(path string) (track.Records, error) {
	imp, err := ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := imp.Import(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return recs, nil
}
