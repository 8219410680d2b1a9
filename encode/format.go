// Package encode writes rendered frames to files and streams.
package encode

import (
	"image"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Formats maps format names, as accepted on the command line, to their
// implementation.
var Formats = map[string]Format{
	"gif":    GIFFormat{},
	"jpg":    JPGFormat{},
	"png":    PNGFormat{},
	"rgb24":  RGB24Format{},
	"rgba32": RGBA32Format{},
}

// DetectFormat picks the format by the extension of filename.
func DetectFormat(filename string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return nil, false
	}
	for _, f := range Formats {
		for _, e := range f.Extensions() {
			if e == ext {
				return f, true
			}
		}
	}
	return nil, false
}

type Format interface {
	// Extensions returns all file extensions excluding '.' that this format is
	// commonly encoded into.
	Extensions() []string

	// Encode encodes a single image to the specfied io.Writer.
	Encode(w io.Writer, img image.Image) error

	// EncodeAnimation encodes a series of successive images to the specified
	// io.Writer.
	//
	// The function should consume all images from the stream until it closes.
	// The interval parameter is the time between two images.
	EncodeAnimation(w io.Writer, stream <-chan image.Image, interval time.Duration) error
}

// sequence writes the images of the stream back to back using a single image
// encoder. After a failure the rest of the stream is drained so the producer
// does not block.
func sequence(w io.Writer, stream <-chan image.Image, encode func(io.Writer, image.Image) error) error {
	for img := range stream {
		if err := encode(w, img); err != nil {
			for range stream {
			}
			return err
		}
	}
	return nil
}
