// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strings"
	"testing"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		format string
		want   Spec
	}{
		{"inset(15, bottom(center))", DefaultSpec()},
		{" inset( 15 , bottom( center ) ) ", DefaultSpec()},
		{"right(leading)", Spec{Distribution: HorizontalAt(Right)}},
		{"left(filling)", Spec{Distribution: HorizontalAt(Left), Alignment: Filling}},
		{"inset(4, 8, top(trailing))", Spec{
			Insets:       Insets{Top: 4, Right: 8, Bottom: 4, Left: 8},
			Distribution: VerticalAt(Top),
			Alignment:    Trailing,
		}},
		{"inset(1, 2, 3, bottom(leading))", Spec{
			Insets:       Insets{Top: 1, Right: 2, Bottom: 3, Left: 2},
			Distribution: VerticalAt(Bottom),
		}},
		{"inset(1, 2, 3, 4.5, right(center))", Spec{
			Insets:       Insets{Top: 1, Right: 2, Bottom: 3, Left: 4.5},
			Distribution: HorizontalAt(Right),
			Alignment:    Center,
		}},
	}
	for _, tc := range tests {
		got, err := ParseSpec(tc.format)
		if err != nil {
			t.Errorf("ParseSpec(%q): %v", tc.format, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSpec(%q) = %+v, want %+v", tc.format, got, tc.want)
		}
		// Formatting round trips.
		again, err := ParseSpec(got.Format())
		if err != nil || again != got {
			t.Errorf("ParseSpec(%q) = %+v, %v", got.Format(), again, err)
		}
	}
}

func TestSpecTextRoundTrip(t *testing.T) {
	tests := []Insets{
		UniformInsets(-5),
		UniformInsets(1e-05),
		{Top: -0.5, Right: 2e+10, Bottom: 3, Left: -1e-07},
		{Top: 1, Right: -2, Bottom: 1, Left: -2},
	}
	for _, in := range tests {
		s := Spec{Insets: in, Distribution: VerticalAt(Bottom), Alignment: Center}
		b, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Spec
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q): %v", b, err)
			continue
		}
		if got != s {
			t.Errorf("UnmarshalText(%q) = %+v, want %+v", b, got, s)
		}
	}
}

func TestParseSpecErrors(t *testing.T) {
	tests := []struct {
		format, marked string
	}{
		{"", "✗"},
		{"inset(15)", "inset(15✗)"},
		{"middle(center)", "middle(✗center)"},
		{"bottom(centre)", "bottom(centre✗)"},
		{"bottom(center", "bottom(center✗"},
		{"inset(15, bottom(center)", "inset(15, bottom(center)✗"},
		{"bottom(center) x", "bottom(center) ✗x"},
		{"Bottom(center)", "✗Bottom(center)"},
		{"inset(1-2, bottom(center))", "inset(1✗-2, bottom(center))"},
		{"inset(-, bottom(center))", "inset(✗-, bottom(center))"},
	}
	for _, tc := range tests {
		_, err := ParseSpec(tc.format)
		if err == nil {
			t.Errorf("ParseSpec(%q) succeeded", tc.format)
			continue
		}
		if !strings.Contains(err.Error(), tc.marked) {
			t.Errorf("ParseSpec(%q) = %v, want mark %q", tc.format, err, tc.marked)
		}
	}
}

func TestSpecText(t *testing.T) {
	b, err := DefaultSpec().MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "inset(15, bottom(center))"; got != want {
		t.Errorf("MarshalText = %q, want %q", got, want)
	}
	var s Spec
	if err := s.UnmarshalText(b); err != nil || s != DefaultSpec() {
		t.Errorf("UnmarshalText = %+v, %v", s, err)
	}
	bad := Spec{Distribution: Distribution{Axis: Horizontal, Edge: Top}}
	if _, err := bad.MarshalText(); err == nil {
		t.Error("MarshalText accepted an invalid distribution")
	}
}
