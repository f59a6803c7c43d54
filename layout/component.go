// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"sync/atomic"

	"gioui.org/toast/f32"
)

// ID identifies a component. IDs are never reused within a process.
type ID uint64

// Component is an element of a toast's content chain. Components
// compute their own intrinsic size; their position is decided by the
// layout engine alone.
type Component interface {
	// ID returns the stable identity of the component. Sequence
	// membership is decided by ID, never by value equality.
	ID() ID
	// Spec returns the layout specification of the component.
	Spec() Spec
	// Measure returns the intrinsic size of the component for
	// the given container. The size is recomputed on every call.
	Measure(c Container) f32.Point
	// Frame returns the last frame assigned to the component.
	Frame() f32.Rectangle
	// SetFrame is called by the engine to position the component.
	SetFrame(r f32.Rectangle)
}

var lastID uint64

// NewID returns a fresh component identity.
func NewID() ID {
	return ID(atomic.AddUint64(&lastID, 1))
}
