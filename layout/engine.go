// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"math"

	"gioui.org/toast/f32"
)

// Engine lays out a chain of components. The zero Engine is ready to
// use. Engines hold no state between passes.
type Engine struct {
	// Skipped, if not nil, is called for every component a pass
	// could not place.
	Skipped func(c Component, err error)
}

var errNoPredecessor = errors.New("layout: component has no predecessor")

// ErrInvalidDistribution is reported to Engine.Skipped for components
// whose distribution edge is not on its axis.
var ErrInvalidDistribution = errors.New("layout: distribution edge is not on its axis")

// Layout lays out items, in order, into c.
func Layout(c Container, items ...Component) {
	Engine{}.Pass(items, NewSequence(items...), c)
}

// Pass lays out items into c, taking roles and neighbours from p.
//
// The first component sits at its own inset origin and every later
// component is placed next to its predecessor according to its Spec,
// growing c as it goes. When all components are placed, the block is
// shifted so that its top left margin corner is at the origin.
//
// Components unknown to p keep their frame and do not grow c, and so
// do components after the first whose Distribution is not Valid.
func (e Engine) Pass(items []Component, p Provider, c Container) {
	placed := make([]Component, 0, len(items))
	for _, item := range items {
		if err := place(item, p, c); err != nil {
			if e.Skipped != nil {
				e.Skipped(item, err)
			}
			continue
		}
		placed = append(placed, item)
	}
	normalize(placed)
}

func place(comp Component, p Provider, c Container) error {
	o, err := p.Order(comp)
	if err != nil {
		return err
	}
	spec := comp.Spec()
	in := spec.Insets
	if o.Role == Start {
		size := measure(comp, c)
		comp.SetFrame(f32.Rect(in.Left, in.Top, size.X, size.Y))
		c.Extend(size.Add(in.Size()))
		return nil
	}
	if !spec.Distribution.Valid() {
		return ErrInvalidDistribution
	}
	before := p.Before(comp)
	if len(before) == 0 {
		return errNoPredecessor
	}
	prev := before[len(before)-1]
	size := measure(comp, c)

	d := spec.Distribution
	axis, cross := d.Axis, d.Axis.Cross()
	trailing := d.Edge.trailing()
	// A predecessor heading the other way on this axis, and not itself
	// the anchor, is passed on its far side.
	if prev.Spec().Distribution == d.Opposite() && len(p.Before(prev)) > 0 {
		trailing = !trailing
	}

	pf := prev.Frame()
	var m float32
	if trailing {
		m = axis.along(pf.Max) + prev.Spec().Insets.trailing(axis) + in.leading(axis)
	} else {
		m = axis.along(pf.Min) - in.leading(axis) - in.trailing(axis) - axis.along(size)
	}

	sz := cross.along(size)
	extent := cross.along(c.Size())
	var off float32
	switch spec.Alignment {
	case Leading:
		off = cross.along(pf.Min)
	case Trailing:
		off = cross.along(pf.Max) - sz
	case Center:
		off = cross.along(pf.Center()) - sz*.5
	case Filling:
		off = in.leading(cross) + (extent-(sz+in.leading(cross)+in.trailing(cross)))*.5
	}

	comp.SetFrame(f32.Rectangle{Max: size}.At(axis.point(m, off)))
	grow := sz + in.leading(cross) + in.trailing(cross) - extent
	if grow < 0 {
		grow = 0
	}
	c.Extend(axis.point(axis.along(size)+in.leading(axis)+in.trailing(axis), grow))
	return nil
}

// measure returns the intrinsic size of comp with negative dimensions
// treated as zero.
func measure(comp Component, c Container) f32.Point {
	sz := comp.Measure(c)
	if sz.X < 0 {
		sz.X = 0
	}
	if sz.Y < 0 {
		sz.Y = 0
	}
	return sz
}

// normalize shifts cs so that the smallest margin corner is at the
// origin.
func normalize(cs []Component) {
	if len(cs) == 0 {
		return
	}
	min := f32.Pt(math.MaxFloat32, math.MaxFloat32)
	for _, c := range cs {
		o := c.Frame().Min
		in := c.Spec().Insets
		if x := o.X - in.Left; x < min.X {
			min.X = x
		}
		if y := o.Y - in.Top; y < min.Y {
			min.Y = y
		}
	}
	if min == (f32.Point{}) {
		return
	}
	for _, c := range cs {
		c.SetFrame(c.Frame().Sub(min))
	}
}
