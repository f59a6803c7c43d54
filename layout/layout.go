// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "gioui.org/toast/f32"

// Insets are the margins around a component. Insets are spacing, not
// padding: they separate a component from its neighbours and from the
// edges of the content block.
type Insets struct {
	Top, Left, Bottom, Right float32
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Edge is a side of a component's predecessor.
type Edge uint8

// Alignment positions a component on the axis perpendicular to its
// distribution.
type Alignment uint8

// Distribution is the axis a component extends the chain on, and the
// side of its predecessor it prefers to sit on.
type Distribution struct {
	Axis Axis
	Edge Edge
}

// Spec is the layout specification of a component.
type Spec struct {
	Insets       Insets
	Distribution Distribution
	Alignment    Alignment
}

const (
	Horizontal Axis = iota
	Vertical
)

const (
	Left Edge = iota
	Right
	Top
	Bottom
)

const (
	// Leading aligns to the leading edge of the predecessor.
	Leading Alignment = iota
	// Trailing aligns to the trailing edge of the predecessor.
	Trailing
	// Center aligns to the center of the predecessor.
	Center
	// Filling centers within the content block's extent at the time
	// the component is placed.
	Filling
)

// UniformInsets returns Insets with v on every edge.
func UniformInsets(v float32) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// Horizontal returns the sum of the left and right insets.
func (in Insets) Horizontal() float32 {
	return in.Left + in.Right
}

// Vertical returns the sum of the top and bottom insets.
func (in Insets) Vertical() float32 {
	return in.Top + in.Bottom
}

// Size returns the total insets along each axis.
func (in Insets) Size() f32.Point {
	return f32.Pt(in.Horizontal(), in.Vertical())
}

// leading returns the inset before the content along a.
func (in Insets) leading(a Axis) float32 {
	if a == Horizontal {
		return in.Left
	}
	return in.Top
}

// trailing returns the inset after the content along a.
func (in Insets) trailing(a Axis) float32 {
	if a == Horizontal {
		return in.Right
	}
	return in.Bottom
}

// HorizontalAt returns the horizontal distribution with edge e, which
// must be Left or Right.
func HorizontalAt(e Edge) Distribution {
	return Distribution{Axis: Horizontal, Edge: e}
}

// VerticalAt returns the vertical distribution with edge e, which must
// be Top or Bottom.
func VerticalAt(e Edge) Distribution {
	return Distribution{Axis: Vertical, Edge: e}
}

// Valid reports whether the edge of d lies on its axis.
func (d Distribution) Valid() bool {
	switch d.Axis {
	case Horizontal:
		return d.Edge == Left || d.Edge == Right
	case Vertical:
		return d.Edge == Top || d.Edge == Bottom
	}
	return false
}

// Opposite returns d with its edge on the other side of the axis.
func (d Distribution) Opposite() Distribution {
	d.Edge = d.Edge.opposite()
	return d
}

// DefaultSpec returns the spec components are created with: 15 units
// of spacing on every edge, placed below the predecessor and centered
// under it.
func DefaultSpec() Spec {
	return Spec{
		Insets:       UniformInsets(15),
		Distribution: VerticalAt(Bottom),
		Alignment:    Center,
	}
}

// Cross returns the axis perpendicular to a.
func (a Axis) Cross() Axis {
	return a ^ 1
}

// along returns the coordinate of p along a.
func (a Axis) along(p f32.Point) float32 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// point returns the point with coordinate along on a and cross on the
// other axis.
func (a Axis) point(along, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Pt(along, cross)
	}
	return f32.Pt(cross, along)
}

// trailing reports whether e is the right or bottom side.
func (e Edge) trailing() bool {
	return e == Right || e == Bottom
}

func (e Edge) opposite() Edge {
	return e ^ 1
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (e Edge) String() string {
	switch e {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		panic("unreachable")
	}
}

func (a Alignment) String() string {
	switch a {
	case Leading:
		return "Leading"
	case Trailing:
		return "Trailing"
	case Center:
		return "Center"
	case Filling:
		return "Filling"
	default:
		panic("unreachable")
	}
}

func (d Distribution) String() string {
	return d.Axis.String() + "(" + d.Edge.String() + ")"
}
