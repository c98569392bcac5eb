package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	font *opentype.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{data: dataCopy, font: f}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
)

// DefaultFontSource returns the embedded Go Regular font.
func DefaultFontSource() *FontSource {
	defaultOnce.Do(func() {
		s, err := NewFontSource(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("text: embedded font is invalid: %v", err))
		}
		defaultSource = s
	})
	return defaultSource
}

// Name returns the font family name, or "" when the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// Data returns the raw font bytes. The slice must not be modified.
func (s *FontSource) Data() []byte {
	return s.data
}
