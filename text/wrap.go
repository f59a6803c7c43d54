// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/image/math/fixed"
)

// metrics supplies rune advances for line wrapping.
type metrics interface {
	// advance returns the advance of r, or false if r has no glyph.
	advance(r rune) (fixed.Int26_6, bool)
	// kern returns the kerning adjustment between r0 and r1.
	kern(r0, r1 rune) fixed.Int26_6
}

// wrapper breaks paragraphs into lines no wider than max.
type wrapper struct {
	m   metrics
	max fixed.Int26_6

	lines []Line
	// The line being built.
	buf   strings.Builder
	x     fixed.Int26_6
	width fixed.Int26_6
	prev  rune
	valid bool
}

// wrap splits str into lines. Every hard newline ends a line, so a
// trailing newline yields a final empty line. The empty string yields
// no lines.
func wrap(str string, m metrics, max fixed.Int26_6) []Line {
	if str == "" {
		return nil
	}
	w := &wrapper{m: m, max: max}
	for i, para := range strings.Split(str, "\n") {
		if i > 0 {
			w.endLine()
		}
		for _, seg := range segments(para) {
			w.segment(seg)
		}
	}
	w.endLine()
	return w.lines
}

// segments splits a paragraph at its line break opportunities. Each
// segment carries its trailing white space.
func segments(para string) []string {
	if para == "" {
		return nil
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(para))
	var segs []string
	for seg.Next() {
		if s := seg.Text(); s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// segment adds an unbreakable run of text to the current line, moving
// it to a fresh line if it does not fit.
func (w *wrapper) segment(s string) {
	word := strings.TrimRightFunc(s, unicode.IsSpace)
	if w.buf.Len() > 0 && w.x+w.span(word) > w.max {
		w.endLine()
	}
	if w.buf.Len() == 0 && w.span(word) > w.max {
		// Overlong word; break between runes.
		for _, r := range s {
			w.rune(r, true)
		}
		return
	}
	for _, r := range s {
		w.rune(r, false)
	}
}

// span returns the width word would add to the current line.
func (w *wrapper) span(word string) fixed.Int26_6 {
	var x fixed.Int26_6
	prev, valid := w.prev, w.valid
	for _, r := range word {
		a, ok := w.m.advance(r)
		if !ok {
			continue
		}
		if valid {
			x += w.m.kern(prev, r)
		}
		x += a
		prev, valid = r, true
	}
	return x
}

// rune appends r to the current line. If split is set, the line is
// ended first when r would overflow it.
func (w *wrapper) rune(r rune, split bool) {
	a, ok := w.m.advance(r)
	if !ok {
		w.buf.WriteRune(r)
		return
	}
	var k fixed.Int26_6
	if w.valid {
		k = w.m.kern(w.prev, r)
	}
	space := unicode.IsSpace(r)
	if split && !space && w.buf.Len() > 0 && w.x+k+a > w.max {
		w.endLine()
		k = 0
	}
	w.buf.WriteRune(r)
	w.x += k + a
	if !space {
		w.width = w.x
	}
	w.prev, w.valid = r, true
}

func (w *wrapper) endLine() {
	w.lines = append(w.lines, Line{
		Text:  w.buf.String(),
		Width: w.width,
	})
	w.buf.Reset()
	w.x, w.width = 0, 0
	w.prev, w.valid = 0, false
}
