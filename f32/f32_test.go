// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestRect(t *testing.T) {
	r := Rect(10, -5, 30, 20)
	if got, want := r.Min, Pt(10, -5); got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
	if got, want := r.Max, Pt(40, 15); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
	if got, want := r.Size(), Pt(30, 20); got != want {
		t.Errorf("Size = %v, want %v", got, want)
	}
	if got, want := r.Center(), Pt(25, 5); got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}

func TestRectangleAt(t *testing.T) {
	r := Rect(10, 10, 4, 6).At(Pt(-2, 3))
	if want := Rect(-2, 3, 4, 6); r != want {
		t.Errorf("At = %v, want %v", r, want)
	}
}

func TestRectangleUnion(t *testing.T) {
	tests := map[string]struct {
		r, s, want Rectangle
	}{
		"disjoint": {
			r:    Rect(0, 0, 10, 10),
			s:    Rect(20, -5, 5, 5),
			want: Rectangle{Min: Pt(0, -5), Max: Pt(25, 10)},
		},
		"empty receiver": {
			r:    Rectangle{},
			s:    Rect(3, 4, 1, 1),
			want: Rect(3, 4, 1, 1),
		},
		"empty argument": {
			r:    Rect(3, 4, 1, 1),
			s:    Rect(100, 100, 0, 10),
			want: Rect(3, 4, 1, 1),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Union(tt.s); got != tt.want {
				t.Errorf("Union = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectangleContains(t *testing.T) {
	r := Rect(0, 0, 10, 10)
	if !r.Contains(Pt(0, 0)) {
		t.Error("top left corner should be inside")
	}
	if r.Contains(Pt(10, 5)) {
		t.Error("right edge should be outside")
	}
	if (Rectangle{}).Contains(Pt(0, 0)) {
		t.Error("empty rectangle contains nothing")
	}
}
