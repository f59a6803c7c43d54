// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"gioui.org/toast/f32"
	"gioui.org/toast/layout"
	"gioui.org/toast/text"
)

// Label is a component displaying wrapped text.
type Label struct {
	Base
	Text   string
	Font   text.Font
	Shaper text.Measurer
}

// NewLabel returns a label measuring txt with s.
func NewLabel(spec layout.Spec, s text.Measurer, f text.Font, txt string) *Label {
	return &Label{
		Base:   NewBase(spec),
		Text:   txt,
		Font:   f,
		Shaper: s,
	}
}

// Measure wraps the text to the container's maximum width less the
// label's horizontal insets, rounded up to whole units. Empty labels
// measure zero.
func (l *Label) Measure(c layout.Container) f32.Point {
	if l.Text == "" || l.Shaper == nil {
		return f32.Point{}
	}
	var max float32
	if w := c.MaxWidth(); w > 0 {
		max = w - l.Spec().Insets.Horizontal()
		if max < 1 {
			max = 1
		}
	}
	sz := l.Shaper.Measure(l.Text, l.Font, max)
	return f32.Pt(ceil(sz.X), ceil(sz.Y))
}

func ceil(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
