// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"gioui.org/toast/f32"
	"gioui.org/toast/layout"
)

// ActivityStyle selects the appearance of an activity indicator.
type ActivityStyle uint8

const (
	// Normal is a spinning arc.
	Normal ActivityStyle = iota
	// BreachedRing is a ring with a rotating gap.
	BreachedRing
)

// Activity is an indeterminate activity indicator.
type Activity struct {
	Base
	Style     ActivityStyle
	Size      f32.Point
	LineWidth float32
	// Period is the duration of one revolution.
	Period time.Duration

	animating bool
}

// NewActivity returns a stopped activity indicator of the given size.
func NewActivity(spec layout.Spec, style ActivityStyle, size f32.Point) *Activity {
	return &Activity{
		Base:   NewBase(spec),
		Style:  style,
		Size:   size,
		Period: time.Second,
	}
}

func (a *Activity) Measure(layout.Container) f32.Point {
	return a.Size
}

func (a *Activity) Start() {
	a.animating = true
}

func (a *Activity) Stop() {
	a.animating = false
}

func (a *Activity) Animating() bool {
	return a.animating
}

// Phase returns the fraction of a revolution completed at now, in
// [0, 1). A stopped indicator is at phase 0.
func (a *Activity) Phase(now time.Time) float32 {
	if !a.animating || a.Period <= 0 {
		return 0
	}
	dt := time.Duration(now.UnixNano()) % a.Period
	return float32(dt) / float32(a.Period)
}

func (s ActivityStyle) String() string {
	switch s {
	case Normal:
		return "Normal"
	case BreachedRing:
		return "BreachedRing"
	default:
		panic("unreachable")
	}
}
