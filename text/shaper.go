// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"sync"

	"gioui.org/toast/f32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text set in sfnt fonts. Layouts are cached by
// string, font and width. A Shaper is safe for concurrent use.
type Shaper struct {
	mu    sync.Mutex
	faces map[Weight]*sfnt.Font
	cache layoutCache
}

// NewShaper returns a Shaper for the given faces. Weights without a
// face fall back to the Regular face.
func NewShaper(faces map[Weight]*sfnt.Font) *Shaper {
	s := &Shaper{faces: make(map[Weight]*sfnt.Font, len(faces))}
	for w, f := range faces {
		if f != nil {
			s.faces[w] = f
		}
	}
	return s
}

// Layout wraps s at maxWidth pixels. A maxWidth of zero or less
// leaves the text unbounded. The returned Layout must not be modified.
func (s *Shaper) Layout(str string, f Font, maxWidth float32) *Layout {
	face := s.face(f.Weight)
	if face == nil || f.Size <= 0 {
		return new(Layout)
	}
	ppem := fixed.Int26_6(f.Size*64 + .5)
	lk := layoutKey{
		weight:   f.Weight,
		ppem:     ppem,
		maxWidth: maxDot(maxWidth),
		str:      str,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.cache.Get(lk); ok {
		return l
	}
	l := layoutText(str, &opentype{Font: face, Hinting: font.HintingFull, Ppem: ppem}, lk.maxWidth)
	s.cache.Put(lk, l)
	return l
}

// Measure implements Measurer. The size is rounded up to whole
// pixels.
func (s *Shaper) Measure(str string, f Font, maxWidth float32) f32.Point {
	sz := s.Layout(str, f, maxWidth).Size()
	return f32.Pt(ceil(sz.X), ceil(sz.Y))
}

func (s *Shaper) face(w Weight) *sfnt.Font {
	if f, ok := s.faces[w]; ok {
		return f
	}
	return s.faces[Regular]
}

func layoutText(str string, f *opentype, maxDotX fixed.Int26_6) *Layout {
	m := f.metrics()
	lines := wrap(str, f, maxDotX)
	for i := range lines {
		lines[i].Ascent = m.Ascent
		// m.Height is equal to m.Ascent + m.Descent + linegap.
		// Compute the descent including the linegap.
		lines[i].Descent = m.Height - m.Ascent
	}
	return &Layout{Lines: lines}
}

func ceil(v float32) float32 {
	return float32(fixed.Int26_6(v * 64).Ceil())
}
