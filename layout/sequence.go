// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// Role is the position class of a component within its sequence.
type Role uint8

const (
	Start Role = iota
	Middle
	End
)

// Order is the result of an order query. Index is the position of the
// component in its sequence.
type Order struct {
	Role  Role
	Index int
}

// Provider is a read-only view over an ordered list of components.
type Provider interface {
	// Components returns the components in layout order.
	Components() []Component
	// Order returns the role of c. It fails with an error matching
	// ErrNotInSequence if c is not tracked.
	Order(c Component) (Order, error)
	// Before returns the components strictly before c, or nil if c
	// is first or absent.
	Before(c Component) []Component
	// After returns the components strictly after c, or nil if c is
	// last or absent.
	After(c Component) []Component
}

var (
	// ErrNotInSequence matches every *NotInSequenceError.
	ErrNotInSequence = errors.New("layout: component not in sequence")
	// ErrDuplicate is returned when a component is added to a
	// sequence that already holds it.
	ErrDuplicate = errors.New("layout: component already in sequence")
)

// NotInSequenceError is returned by Order for untracked components.
type NotInSequenceError struct {
	ID ID
}

func (e *NotInSequenceError) Error() string {
	return fmt.Sprintf("layout: component %d not in sequence", e.ID)
}

func (e *NotInSequenceError) Is(target error) bool {
	return target == ErrNotInSequence
}

// Sequence is an ordered list of components. Insertion order is the
// layout order: the first component anchors the chain. The zero value
// is an empty sequence.
type Sequence struct {
	items []Component
}

// NewSequence returns a sequence of cs. Repeated components after the
// first occurrence are dropped.
func NewSequence(cs ...Component) *Sequence {
	s := new(Sequence)
	for _, c := range cs {
		if s.Index(c) == -1 {
			s.items = append(s.items, c)
		}
	}
	return s
}

// Components returns the components in order. The returned slice must
// not be modified.
func (s *Sequence) Components() []Component {
	return s.items
}

// Len returns the number of components in s.
func (s *Sequence) Len() int {
	return len(s.items)
}

// Index returns the position of c in s, or -1.
func (s *Sequence) Index(c Component) int {
	id := c.ID()
	return slices.IndexFunc(s.items, func(e Component) bool {
		return e.ID() == id
	})
}

// Append adds c to the end of s.
func (s *Sequence) Append(c Component) error {
	return s.Insert(len(s.items), c)
}

// Insert adds c at position i, shifting later components back.
func (s *Sequence) Insert(i int, c Component) error {
	if s.Index(c) != -1 {
		return fmt.Errorf("insert %d: %w", c.ID(), ErrDuplicate)
	}
	if i < 0 || i > len(s.items) {
		return fmt.Errorf("layout: insert index %d out of range [0,%d]", i, len(s.items))
	}
	s.items = slices.Insert(s.items, i, c)
	return nil
}

// Remove removes c from s and reports whether it was present.
func (s *Sequence) Remove(c Component) bool {
	i := s.Index(c)
	if i == -1 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Set replaces the content of s with cs. On error s is unchanged.
func (s *Sequence) Set(cs ...Component) error {
	var next Sequence
	for _, c := range cs {
		if err := next.Append(c); err != nil {
			return err
		}
	}
	s.items = next.items
	return nil
}

func (s *Sequence) Order(c Component) (Order, error) {
	i := s.Index(c)
	if len(s.items) == 0 || i == -1 {
		return Order{}, &NotInSequenceError{ID: c.ID()}
	}
	switch i {
	case 0:
		return Order{Role: Start}, nil
	case len(s.items) - 1:
		return Order{Role: End, Index: i}, nil
	default:
		return Order{Role: Middle, Index: i}, nil
	}
}

func (s *Sequence) Before(c Component) []Component {
	i := s.Index(c)
	if i <= 0 {
		return nil
	}
	return slices.Clone(s.items[:i])
}

func (s *Sequence) After(c Component) []Component {
	i := s.Index(c)
	if i == -1 || i == len(s.items)-1 {
		return nil
	}
	return slices.Clone(s.items[i+1:])
}

func (r Role) String() string {
	switch r {
	case Start:
		return "Start"
	case Middle:
		return "Middle"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}

func (o Order) String() string {
	if o.Role == Middle {
		return fmt.Sprintf("Middle(%d)", o.Index)
	}
	return o.Role.String()
}
