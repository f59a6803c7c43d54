// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"golang.org/x/exp/shiny/iconvg"

	"gioui.org/toast/f32"
	"gioui.org/toast/layout"
)

// ResultStyle selects the symbol of a result indicator.
type ResultStyle uint8

const (
	// Success is a check mark.
	Success ResultStyle = iota
	// Error is a cross.
	Error
)

// Result is a success or error symbol.
type Result struct {
	Base
	Style     ResultStyle
	Width     float32
	LineWidth float32

	icon   []byte
	aspect float32
}

// NewResult returns a result indicator of the given width.
func NewResult(spec layout.Spec, style ResultStyle, width float32) *Result {
	return &Result{
		Base:  NewBase(spec),
		Style: style,
		Width: width,
	}
}

// SetIcon replaces the symbol with IconVG data. The indicator then
// takes the aspect ratio of the icon's view box. Nil data restores
// the default symbol.
func (r *Result) SetIcon(data []byte) error {
	if data == nil {
		r.icon, r.aspect = nil, 0
		return nil
	}
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return err
	}
	dx, dy := m.ViewBox.AspectRatio()
	r.icon, r.aspect = data, dy/dx
	return nil
}

// Icon returns the IconVG data set by SetIcon.
func (r *Result) Icon() []byte {
	return r.icon
}

// Measure returns the width and a height following the symbol: two
// thirds of the width for a check mark, square for a cross.
func (r *Result) Measure(layout.Container) f32.Point {
	switch {
	case r.icon != nil:
		return f32.Pt(r.Width, r.Width*r.aspect)
	case r.Style == Success:
		return f32.Pt(r.Width, r.Width*2/3)
	default:
		return f32.Pt(r.Width, r.Width)
	}
}

func (s ResultStyle) String() string {
	switch s {
	case Success:
		return "Success"
	case Error:
		return "Error"
	default:
		panic("unreachable")
	}
}
