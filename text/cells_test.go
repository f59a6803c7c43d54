// SPDX-License-Identifier: Unlicense OR MIT

package text_test

import (
	"fmt"
	"testing"

	"gioui.org/toast/f32"
	"gioui.org/toast/text"
)

func TestCellsMeasure(t *testing.T) {
	var m text.Measurer = text.Cells{}
	tests := []struct {
		str  string
		max  float32
		want f32.Point
	}{
		{"", 10, f32.Pt(0, 0)},
		{"Done", 0, f32.Pt(4, 1)},
		{"Uploading files", 10, f32.Pt(9, 2)},
		{"日本語", 0, f32.Pt(6, 1)},
		{"one\ntwo\nthree", 0, f32.Pt(5, 3)},
	}
	for _, tc := range tests {
		if got := m.Measure(tc.str, text.Font{}, tc.max); got != tc.want {
			t.Errorf("Measure(%q, %v) = %v, want %v", tc.str, tc.max, got, tc.want)
		}
	}
}

func ExampleCells_Lines() {
	for _, l := range (text.Cells{}).Lines("Please wait while the update installs", 16) {
		fmt.Printf("%q\n", l)
	}
	// Output:
	// "Please wait "
	// "while the update "
	// "installs"
}
