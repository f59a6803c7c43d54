// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/toast/f32"
	"gioui.org/toast/layout"
)

// ProgressStyle selects the appearance of a progress indicator.
type ProgressStyle uint8

const (
	Bar ProgressStyle = iota
	Pie
	Ring
	// ColouredBar is a hairline bar.
	ColouredBar
)

// Progress is a determinate progress indicator.
type Progress struct {
	Base
	Style     ProgressStyle
	Size      f32.Point
	LineWidth float32

	value float32
}

// NewProgress returns a progress indicator at zero progress.
func NewProgress(spec layout.Spec, style ProgressStyle, size f32.Point) *Progress {
	return &Progress{
		Base:  NewBase(spec),
		Style: style,
		Size:  size,
	}
}

func (p *Progress) Measure(layout.Container) f32.Point {
	return p.Size
}

// Progress returns the completed fraction in [0, 1].
func (p *Progress) Progress() float32 {
	return p.value
}

// SetProgress sets the completed fraction, clamped to [0, 1].
func (p *Progress) SetProgress(v float32) {
	p.value = clamp1(v)
}

// Filled returns the completed part of a bar's frame. For pie and
// ring styles it returns the whole frame.
func (p *Progress) Filled() f32.Rectangle {
	r := p.Frame()
	switch p.Style {
	case Bar, ColouredBar:
		r.Max.X = r.Min.X + r.Dx()*p.value
	}
	return r
}

// clamp1 limits v to range [0..1].
func clamp1(v float32) float32 {
	switch {
	case v >= 1:
		return 1
	case v > 0:
		return v
	default:
		return 0
	}
}

func (s ProgressStyle) String() string {
	switch s {
	case Bar:
		return "Bar"
	case Pie:
		return "Pie"
	case Ring:
		return "Ring"
	case ColouredBar:
		return "ColouredBar"
	default:
		panic("unreachable")
	}
}
