package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/facile/internal/cache"
)

// advanceCacheSize bounds the number of measured strings a Shaper keeps.
const advanceCacheSize = 1024

type advanceKey struct {
	source *FontSource
	size   float64
	text   string
}

// Shaper measures text with HarfBuzz shaping via go-text/typesetting, so
// kerning and ligatures are reflected in advance widths.
//
// Shaper is safe for concurrent use. It caches parsed font.Font objects
// (which are read-only) and pools HarfbuzzShaper instances (which are not).
// Measured advances are kept in an LRU cache.
type Shaper struct {
	shaperPool sync.Pool
	advances   *cache.LRU[advanceKey, float64]

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewShaper creates a Shaper with an empty font cache.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		advances:  cache.New[advanceKey, float64](advanceCacheSize),
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance returns the horizontal advance of s in pixels when set in face.
// Each bidi run is shaped in its own direction. It returns 0 when the font
// cannot be parsed by the shaping engine.
func (s *Shaper) Advance(face *Face, str string) float64 {
	if str == "" || face == nil {
		return 0
	}

	key := advanceKey{source: face.Source(), size: face.Size(), text: str}
	return s.advances.GetOrCreate(key, func() float64 {
		return s.measure(face, str)
	})
}

func (s *Shaper) measure(face *Face, str string) float64 {
	f, err := s.font(face.Source())
	if err != nil {
		return 0
	}

	total := 0.0
	for _, run := range Runs(str) {
		total += s.shapeRun(f, face.Size(), run)
	}
	return total
}

func (s *Shaper) shapeRun(f *font.Font, size float64, run Run) float64 {
	runes := []rune(run.Text)
	if len(runes) == 0 {
		return 0
	}

	dir := di.DirectionLTR
	if run.RTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(f),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shaperPool.Put(hb)

	adv := 0.0
	for _, g := range out.Glyphs {
		adv += fixedToFloat(g.Advance)
	}
	return adv
}

// font returns the cached go-text font for source, parsing it on first use.
func (s *Shaper) font(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
