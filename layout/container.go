// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "gioui.org/toast/f32"

// Container is the auto-sizing space components are laid out into.
type Container interface {
	// Size returns the current content size.
	Size() f32.Point
	// MaxWidth returns the preferred maximum width of the content.
	// It is a hint for text measurement; the engine does not
	// enforce it.
	MaxWidth() float32
	// Extend grows the content size by the given amount.
	Extend(by f32.Point)
}

// Canvas is a Container whose size only grows between resets.
type Canvas struct {
	size     f32.Point
	maxWidth float32
}

// NewCanvas returns an empty canvas with the given width hint.
func NewCanvas(maxWidth float32) *Canvas {
	return &Canvas{maxWidth: maxWidth}
}

func (c *Canvas) Size() f32.Point {
	return c.size
}

func (c *Canvas) MaxWidth() float32 {
	return c.maxWidth
}

// SetMaxWidth updates the width hint. It takes effect on the next pass.
func (c *Canvas) SetMaxWidth(w float32) {
	c.maxWidth = w
}

// Extend grows the canvas. Negative amounts are ignored.
func (c *Canvas) Extend(by f32.Point) {
	if by.X > 0 {
		c.size.X += by.X
	}
	if by.Y > 0 {
		c.size.Y += by.Y
	}
}

// Reset sets the content size to zero.
func (c *Canvas) Reset() {
	c.size = f32.Point{}
}
