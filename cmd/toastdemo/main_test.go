// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gioui.org/toast/f32"
	"gioui.org/toast/widget/material"
)

func TestRender(t *testing.T) {
	th, err := loadTheme("")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		kind, style string
		want        []string
	}{
		{"message", "", []string{"Saved", "Changes stored"}},
		{"success", "", []string{"✔", "Saved"}},
		{"error", "", []string{"✘", "Saved"}},
		{"activity", "ring", []string{"Saved"}},
		{"progress", "", []string{"█", "░", "Saved"}},
		{"progress", "pie", []string{"◑", "Saved"}},
	}
	for _, tc := range tests {
		tt, err := newToast(th, tc.kind, tc.style, "Saved", "Changes stored")
		if err != nil {
			t.Fatalf("%s: %v", tc.kind, err)
		}
		tt.SetProgress(.5)
		bounds := f32.Pt(60, 30)
		tt.Layout(bounds)
		out := render(tt, bounds, time.Unix(0, 0))
		for _, w := range tc.want {
			if !strings.Contains(out, w) {
				t.Errorf("%s/%s: output lacks %q:\n%s", tc.kind, tc.style, w, out)
			}
		}
		if n := strings.Count(out, "\n") + 1; n != 30 {
			t.Errorf("%s: output has %d lines, want 30", tc.kind, n)
		}
	}
}

func TestNewToastErrors(t *testing.T) {
	th := material.NewTheme()
	for _, args := range [][2]string{
		{"", ""},
		{"banner", ""},
		{"activity", "square"},
		{"progress", "dial"},
	} {
		if _, err := newToast(th, args[0], args[1], "x", ""); err == nil {
			t.Errorf("newToast(%q, %q) succeeded", args[0], args[1])
		}
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("metric:\n  pxPerDp: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := loadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Metric.PxPerDp != .5 {
		t.Errorf("theme metric overridden: %+v", th.Metric)
	}
	if _, err := loadTheme(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("missing theme loaded")
	}
}
