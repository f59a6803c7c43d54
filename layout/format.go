// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strconv"
	"strings"
)

type formatState struct {
	orig string
	expr string
}

type formatError string

// ParseSpec parses a Spec from a format string, similar to how a
// function call is written.
//
// The format is an optional inset wrapping an edge, and the edge
// wraps an alignment. For example,
//
//	inset(15, bottom(center))
//
// is equivalent to DefaultSpec(), and
//
//	right(leading)
//
// places a component with no insets to the right of its predecessor,
// aligned with its top edge.
//
// Insets are either: one value for uniform insets; two values for
// top/bottom and right/left insets; three values for top, right/left
// and bottom insets; or four values for top, right, bottom, left
// insets. Values may be signed and may have an exponent, as in -5 or
// 1e-05.
//
// Edges are left, right, top and bottom. Alignments are leading,
// trailing, center and filling.
//
// If the format is invalid, the error marks the error position with
// a cross, ✗.
func ParseSpec(format string) (s Spec, err error) {
	state := formatState{
		orig: format,
		expr: format,
	}
	defer func() {
		if e := recover(); e != nil {
			ferr, ok := e.(formatError)
			if !ok {
				panic(e)
			}
			pos := len(state.orig) - len(state.expr)
			msg := state.orig[:pos] + "✗" + state.orig[pos:]
			err = fmt.Errorf("ParseSpec: %s:%d: %s", msg, pos, ferr)
		}
	}()
	s = parseSpec(&state)
	skipWhitespace(&state)
	if state.expr != "" {
		errorf("unexpected %q after spec", state.expr)
	}
	return s, nil
}

// Format returns the format string of s, as accepted by ParseSpec.
func (s Spec) Format() string {
	var b strings.Builder
	in := s.Insets
	if in != (Insets{}) {
		b.WriteString("inset(")
		switch {
		case in == UniformInsets(in.Top):
			b.WriteString(formatFloat(in.Top))
		case in.Top == in.Bottom && in.Left == in.Right:
			fmt.Fprintf(&b, "%s, %s", formatFloat(in.Top), formatFloat(in.Right))
		case in.Left == in.Right:
			fmt.Fprintf(&b, "%s, %s, %s", formatFloat(in.Top), formatFloat(in.Right), formatFloat(in.Bottom))
		default:
			fmt.Fprintf(&b, "%s, %s, %s, %s", formatFloat(in.Top), formatFloat(in.Right), formatFloat(in.Bottom), formatFloat(in.Left))
		}
		b.WriteString(", ")
	}
	fmt.Fprintf(&b, "%s(%s)", strings.ToLower(s.Distribution.Edge.String()), strings.ToLower(s.Alignment.String()))
	if in != (Insets{}) {
		b.WriteString(")")
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s Spec) MarshalText() ([]byte, error) {
	if !s.Distribution.Valid() {
		return nil, fmt.Errorf("layout: invalid distribution %v", s.Distribution)
	}
	return []byte(s.Format()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Spec) UnmarshalText(text []byte) error {
	v, err := ParseSpec(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func parseSpec(state *formatState) Spec {
	name := parseName(state)
	if name == "" {
		errorf("missing layout name")
	}
	expect(state, "(")
	var s Spec
	inset := name == "inset"
	if inset {
		s.Insets = parseInset(state)
		name = parseName(state)
		expect(state, "(")
	}
	d, ok := edgeFor(name)
	if !ok {
		errorf("invalid edge %q", name)
	}
	s.Distribution = d
	align := parseName(state)
	a, ok := alignmentFor(align)
	if !ok {
		errorf("invalid alignment %q", align)
	}
	s.Alignment = a
	expect(state, ")")
	if inset {
		expect(state, ")")
	}
	return s
}

func parseInset(state *formatState) Insets {
	v1 := parseFloat(state)
	expect(state, ",")
	if !isDigit(peek(state)) {
		return UniformInsets(v1)
	}
	v2 := parseFloat(state)
	expect(state, ",")
	if !isDigit(peek(state)) {
		return Insets{Top: v1, Right: v2, Bottom: v1, Left: v2}
	}
	v3 := parseFloat(state)
	expect(state, ",")
	if !isDigit(peek(state)) {
		return Insets{Top: v1, Right: v2, Bottom: v3, Left: v2}
	}
	v4 := parseFloat(state)
	expect(state, ",")
	return Insets{Top: v1, Right: v2, Bottom: v3, Left: v4}
}

func parseName(state *formatState) string {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		switch {
		case c == '(' || c == ',' || c == ')' || isSpace(c):
			fname := state.expr[:i]
			state.expr = state.expr[i:]
			return fname
		case c < 'a' || 'z' < c:
			errorf("invalid character '%c' in layout name", c)
		}
	}
	state.expr = state.expr[i:]
	errorf("missing ( after layout function")
	return ""
}

func parseFloat(state *formatState) float32 {
	skipWhitespace(state)
	i := 0
	for i < len(state.expr) && inNumber(state.expr, i) {
		i++
	}
	expr := state.expr[:i]
	v, err := strconv.ParseFloat(expr, 32)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return float32(v)
}

func peek(state *formatState) rune {
	skipWhitespace(state)
	if len(state.expr) == 0 {
		errorf("unexpected end")
	}
	return rune(state.expr[0])
}

func expect(state *formatState, str string) {
	skipWhitespace(state)
	n := len(str)
	if len(state.expr) < n || state.expr[:n] != str {
		errorf("expected %q", str)
	}
	state.expr = state.expr[n:]
}

func skipWhitespace(state *formatState) {
	for len(state.expr) > 0 && isSpace(state.expr[0]) {
		state.expr = state.expr[1:]
	}
}

func isSpace(c byte) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}

// inNumber reports whether the byte at i continues the number that
// starts expr. Signs are allowed first and after an exponent mark.
func inNumber(expr string, i int) bool {
	switch c := expr[i]; c {
	case '.', 'e', 'E':
		return true
	case '-', '+':
		return i == 0 || expr[i-1] == 'e' || expr[i-1] == 'E'
	default:
		return '0' <= c && c <= '9'
	}
}

// isDigit reports whether c starts a number.
func isDigit(c rune) bool {
	return '0' <= c && c <= '9' || c == '.' || c == '-' || c == '+'
}

func edgeFor(name string) (Distribution, bool) {
	switch name {
	case "left":
		return HorizontalAt(Left), true
	case "right":
		return HorizontalAt(Right), true
	case "top":
		return VerticalAt(Top), true
	case "bottom":
		return VerticalAt(Bottom), true
	default:
		return Distribution{}, false
	}
}

func alignmentFor(name string) (Alignment, bool) {
	for _, a := range []Alignment{Leading, Trailing, Center, Filling} {
		if name == strings.ToLower(a.String()) {
			return a, true
		}
	}
	return 0, false
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func errorf(f string, args ...interface{}) {
	panic(formatError(fmt.Sprintf(f, args...)))
}

func (e formatError) Error() string {
	return string(e)
}
