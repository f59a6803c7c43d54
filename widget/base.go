// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/toast/f32"
	"gioui.org/toast/layout"
)

// Base holds the identity, layout spec and frame shared by every
// widget. It implements layout.Component except for Measure.
type Base struct {
	id    layout.ID
	spec  layout.Spec
	frame f32.Rectangle
}

// NewBase returns a Base with a fresh identity.
func NewBase(spec layout.Spec) Base {
	return Base{id: layout.NewID(), spec: spec}
}

// ID returns the identity of the widget, assigning one on first use
// for zero Bases.
func (b *Base) ID() layout.ID {
	if b.id == 0 {
		b.id = layout.NewID()
	}
	return b.id
}

func (b *Base) Spec() layout.Spec {
	return b.spec
}

// SetSpec replaces the layout spec. It takes effect on the next
// layout pass.
func (b *Base) SetSpec(s layout.Spec) {
	b.spec = s
}

func (b *Base) Frame() f32.Rectangle {
	return b.frame
}

func (b *Base) SetFrame(r f32.Rectangle) {
	b.frame = r
}
