// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/math/fixed"

	"gioui.org/toast/f32"
)

// Cells measures text in terminal cells: every rune advances by its
// display width and every line is one cell high. The font is ignored.
type Cells struct{}

type cellMetrics struct{}

// Measure implements Measurer.
func (Cells) Measure(s string, _ Font, maxWidth float32) f32.Point {
	l := Cells{}.Layout(s, maxWidth)
	return l.Size()
}

// Layout wraps s at maxWidth cells.
func (Cells) Layout(s string, maxWidth float32) *Layout {
	lines := wrap(s, cellMetrics{}, maxDot(maxWidth))
	for i := range lines {
		lines[i].Ascent = fixed.I(1)
	}
	return &Layout{Lines: lines}
}

// Lines returns the text of the lines of s wrapped at maxWidth cells.
func (c Cells) Lines(s string, maxWidth float32) []string {
	l := c.Layout(s, maxWidth)
	lines := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		lines[i] = line.Text
	}
	return lines
}

func (cellMetrics) advance(r rune) (fixed.Int26_6, bool) {
	return fixed.I(runewidth.RuneWidth(r)), true
}

func (cellMetrics) kern(r0, r1 rune) fixed.Int26_6 { return 0 }
