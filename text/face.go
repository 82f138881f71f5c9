// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Errors returned by face construction.
var (
	// ErrInvalidSize is returned for non-positive font sizes.
	ErrInvalidSize = errors.New("text: invalid font size")
)

// Source is a parsed font file shared by faces of different sizes.
//
// Source is safe for concurrent use: both parsed representations are
// read-only.
type Source struct {
	ximage *opentype.Font
	gotext *gotext.Font
}

// ParseSource parses TrueType/OpenType data for rasterisation (x/image) and
// shaping (go-text/typesetting).
func ParseSource(data []byte) (*Source, error) {
	xf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	gf, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &Source{ximage: xf, gotext: gf.Font}, nil
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
	defaultErr    error
)

// DefaultSource returns the Go Regular font.
func DefaultSource() (*Source, error) {
	defaultOnce.Do(func() {
		defaultSource, defaultErr = ParseSource(goregular.TTF)
	})
	return defaultSource, defaultErr
}

// Face is a Source at a given pixel size.
//
// Face is NOT safe for concurrent use; the underlying x/image face caches
// glyph state.
type Face struct {
	source *Source
	size   float64
	face   font.Face
}

// NewFace creates a face of the given pixel size (72 DPI).
func NewFace(src *Source, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	f, err := opentype.NewFace(src.ximage, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: new face: %w", err)
	}
	return &Face{source: src, size: size, face: f}, nil
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 { return f.size }

// Source returns the font the face was created from.
func (f *Face) Source() *Source { return f.source }

// Metrics returns the ascent and descent of the face in pixels.
func (f *Face) Metrics() (ascent, descent float64) {
	m := f.face.Metrics()
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}
