// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// opentype measures the glyphs of an sfnt font at a fixed size.
type opentype struct {
	Font    *sfnt.Font
	Hinting font.Hinting
	Ppem    fixed.Int26_6

	buf sfnt.Buffer
}

func (f *opentype) advance(r rune) (fixed.Int26_6, bool) {
	g, err := f.Font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, false
	}
	adv, err := f.Font.GlyphAdvance(&f.buf, g, f.Ppem, f.Hinting)
	return adv, err == nil
}

func (f *opentype) kern(r0, r1 rune) fixed.Int26_6 {
	g0, err := f.Font.GlyphIndex(&f.buf, r0)
	if err != nil {
		return 0
	}
	g1, err := f.Font.GlyphIndex(&f.buf, r1)
	if err != nil {
		return 0
	}
	adv, err := f.Font.Kern(&f.buf, g0, g1, f.Ppem, f.Hinting)
	if err != nil {
		return 0
	}
	return adv
}

func (f *opentype) metrics() font.Metrics {
	m, _ := f.Font.Metrics(&f.buf, f.Ppem, f.Hinting)
	return m
}
