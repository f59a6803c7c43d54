// SPDX-License-Identifier: Unlicense OR MIT

/*
Package toast implements toast overlays: transient blocks of messages
and indicators centered over a host view.

A Toast owns an ordered chain of components. Layout places the chain
with the relative layout engine of package layout, sizes the content
block to fit, and centers the block in the host bounds:

	th := material.NewTheme()
	t := toast.Message(th, "Saved", "All changes are stored")
	content := t.Layout(f32.Pt(320, 480))

Component frames are relative to the content block; Content returns
the block in host coordinates. Presentation, animation and timing are
left to the host.
*/
package toast

import (
	"image/color"
	"log"

	"gioui.org/toast/f32"
	"gioui.org/toast/layout"
	"gioui.org/toast/widget"
	"gioui.org/toast/widget/material"
)

// Toast is a block of components laid out as a chain.
type Toast struct {
	Theme *material.Theme
	// Log, if not nil, receives layout diagnostics.
	Log *log.Logger

	canvas  *layout.Canvas
	seq     layout.Sequence
	dirty   bool
	content f32.Rectangle
}

// New returns a toast with the components cs. Repeated components
// are dropped.
func New(th *material.Theme, cs ...layout.Component) *Toast {
	return &Toast{
		Theme:  th,
		canvas: layout.NewCanvas(th.MaxWidthPx()),
		seq:    *layout.NewSequence(cs...),
		dirty:  true,
	}
}

// Add appends c to the chain.
func (t *Toast) Add(c layout.Component) error {
	if err := t.seq.Append(c); err != nil {
		return err
	}
	t.Invalidate()
	return nil
}

// Remove removes c from the chain and reports whether it was present.
func (t *Toast) Remove(c layout.Component) bool {
	if !t.seq.Remove(c) {
		return false
	}
	t.Invalidate()
	return true
}

// Set replaces the chain with cs.
func (t *Toast) Set(cs ...layout.Component) error {
	if err := t.seq.Set(cs...); err != nil {
		return err
	}
	t.Invalidate()
	return nil
}

// Components returns the chain in layout order. The returned slice
// must not be modified.
func (t *Toast) Components() []layout.Component {
	return t.seq.Components()
}

// Invalidate marks the layout as stale. The next call to Layout lays
// out the components again. Call Invalidate after changing a
// component or the theme.
func (t *Toast) Invalidate() {
	t.dirty = true
}

// Layout lays out the components if needed and centers the content
// block in a host of size bounds. It returns the content block in
// host coordinates.
func (t *Toast) Layout(bounds f32.Point) f32.Rectangle {
	if t.dirty {
		t.layout()
	}
	sz := t.canvas.Size()
	o := bounds.Mul(.5).Sub(sz.Mul(.5))
	t.content = f32.Rectangle{Max: sz}.At(o)
	if t.Log != nil && (sz.X > bounds.X || sz.Y > bounds.Y) {
		t.Log.Printf("toast: content %v overflows bounds %v", sz, bounds)
	}
	return t.content
}

func (t *Toast) layout() {
	t.canvas.SetMaxWidth(t.Theme.MaxWidthPx())
	t.canvas.Reset()
	e := layout.Engine{Skipped: t.skipped}
	e.Pass(t.seq.Components(), &t.seq, t.canvas)
	t.dirty = false
}

func (t *Toast) skipped(c layout.Component, err error) {
	if t.Log != nil {
		t.Log.Printf("toast: skipped component %d: %v", c.ID(), err)
	}
}

// ContentSize returns the size of the content block as of the last
// layout.
func (t *Toast) ContentSize() f32.Point {
	return t.canvas.Size()
}

// Content returns the content block in host coordinates as of the
// last call to Layout.
func (t *Toast) Content() f32.Rectangle {
	return t.content
}

// Backdrop returns the color dimming the host behind the toast.
func (t *Toast) Backdrop() color.NRGBA {
	return color.NRGBA{A: uint8(clamp1(t.Theme.Opacity)*255 + .5)}
}

// Hit reports whether the toast consumes pointer input at p, in host
// coordinates. Input on the content block is always consumed; input
// elsewhere passes through only for touch-through themes.
func (t *Toast) Hit(p f32.Point) bool {
	if t.content.Contains(p) {
		return true
	}
	return !t.Theme.TouchThrough
}

// Progress returns the progress of the first progress indicator, or
// zero if there is none.
func (t *Toast) Progress() float32 {
	if p := t.progress(); p != nil {
		return p.Progress()
	}
	return 0
}

// SetProgress sets the progress of the first progress indicator.
func (t *Toast) SetProgress(v float32) {
	if p := t.progress(); p != nil {
		p.SetProgress(v)
		t.Invalidate()
	}
}

func (t *Toast) progress() *widget.Progress {
	for _, c := range t.seq.Components() {
		if p, ok := c.(*widget.Progress); ok {
			return p
		}
	}
	return nil
}

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
