// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures word-wrapped text for sizing label components.

Text is broken into lines on Unicode line break opportunities (UAX #14)
and on hard newlines. A word wider than the available width is broken
between runes. Nothing is rasterized; a Layout only records the lines
and their widths.
*/
package text

import (
	"math"

	"gioui.org/toast/f32"
	"golang.org/x/image/math/fixed"
)

// Weight is a font weight.
type Weight uint8

// Font specifies the face and size of a run of text.
type Font struct {
	Weight Weight
	// Size is the font size in pixels.
	Size float32
}

// Measurer computes the size of wrapped text.
type Measurer interface {
	// Measure returns the size of s set in f and wrapped at maxWidth.
	// A maxWidth of zero or less leaves the text unbounded.
	Measure(s string, f Font, maxWidth float32) f32.Point
}

// A Line contains the measurements of a line of text.
type Line struct {
	Text string
	// Width is the width of the line without trailing white space.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including
	// the line gap.
	Descent fixed.Int26_6
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
}

const (
	Regular Weight = iota
	Bold
)

// Size returns the width of the widest line and the sum of the line
// heights.
func (l *Layout) Size() f32.Point {
	var w, h fixed.Int26_6
	for _, line := range l.Lines {
		if line.Width > w {
			w = line.Width
		}
		h += line.Ascent + line.Descent
	}
	return f32.Pt(float32(w)/64, float32(h)/64)
}

// maxDot converts a width in pixels to the wrapping limit, treating
// non-positive widths as unbounded.
func maxDot(maxWidth float32) fixed.Int26_6 {
	if maxWidth <= 0 || maxWidth >= math.MaxInt32/64 {
		return fixed.Int26_6(math.MaxInt32)
	}
	return fixed.Int26_6(maxWidth * 64)
}

func (w Weight) String() string {
	switch w {
	case Regular:
		return "Regular"
	case Bold:
		return "Bold"
	default:
		panic("unreachable")
	}
}
