// SPDX-License-Identifier: Unlicense OR MIT

package material_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"gioui.org/toast/f32"
	"gioui.org/toast/layout"
	"gioui.org/toast/text"
	"gioui.org/toast/unit"
	"gioui.org/toast/widget"
	"gioui.org/toast/widget/material"
)

func TestNewTheme(t *testing.T) {
	th := material.NewTheme()
	if got, want := th.Spec(), layout.DefaultSpec(); got != want {
		t.Errorf("Spec = %+v, want %+v", got, want)
	}
	if th.MaxWidthPx() != 270 {
		t.Errorf("MaxWidthPx = %v", th.MaxWidthPx())
	}
	if th.ContentOpacity != 0.89 || th.Opacity != 0 || th.Content != material.Normal {
		t.Errorf("content defaults = %v %v %v", th.Content, th.ContentOpacity, th.Opacity)
	}
	if th.Shaper == nil {
		t.Error("no default shaper")
	}
}

func TestIndicatorSizes(t *testing.T) {
	th := material.NewTheme()
	tests := []struct {
		name string
		c    layout.Component
		want f32.Point
	}{
		{"activity", material.Activity(th, widget.Normal), f32.Pt(37, 37)},
		{"bar", material.Progress(th, widget.Bar), f32.Pt(180, 12)},
		{"pie", material.Progress(th, widget.Pie), f32.Pt(37, 37)},
		{"ring", material.Progress(th, widget.Ring), f32.Pt(37, 37)},
		{"coloured bar", material.Progress(th, widget.ColouredBar), f32.Pt(180, 1)},
		{"success", material.Result(th, widget.Success), f32.Pt(28, 28*2/3.)},
		{"error", material.Result(th, widget.Error), f32.Pt(20, 20)},
		{"success icon", material.ResultIcon(th, widget.Success), f32.Pt(28, 28)},
	}
	for _, tc := range tests {
		if got := tc.c.Measure(nil); got != tc.want {
			t.Errorf("%s: Measure = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMetric(t *testing.T) {
	th := material.NewTheme()
	th.Metric = unit.Metric{PxPerDp: 2, PxPerSp: 3}
	if got := material.Activity(th, widget.Normal).Measure(nil); got != f32.Pt(74, 74) {
		t.Errorf("activity at 2px/dp = %v", got)
	}
	if got := th.Spec().Insets; got != layout.UniformInsets(30) {
		t.Errorf("insets at 2px/dp = %+v", got)
	}
	if got := material.Title(th, "x").Font; got != (text.Font{Weight: text.Bold, Size: 42}) {
		t.Errorf("title font at 3px/sp = %+v", got)
	}
	if got := material.Detail(th, "x").Font.Size; got != 36 {
		t.Errorf("detail size at 3px/sp = %v", got)
	}
}

func TestParseTheme(t *testing.T) {
	th, err := material.ParseTheme([]byte(`
metric:
  pxPerDp: 2
insets: 10
maxWidth: 300
opacity: 0.3
content: Translucent
touchThrough: true
indicator:
  activity: 40
`))
	if err != nil {
		t.Fatal(err)
	}
	if th.Metric.PxPerDp != 2 || th.Insets != 10 || th.MaxWidth != 300 {
		t.Errorf("sizes not applied: %+v", th)
	}
	if th.Opacity != 0.3 || th.Content != material.Translucent || !th.TouchThrough {
		t.Errorf("appearance not applied: %v %v %v", th.Opacity, th.Content, th.TouchThrough)
	}
	if th.Indicator.Activity != 40 || th.Indicator.Pie != 37 {
		t.Errorf("indicators = %+v", th.Indicator)
	}
	if th.TitleSize != 14 || th.ContentOpacity != 0.89 {
		t.Error("missing fields lost their defaults")
	}
}

func TestThemeLayout(t *testing.T) {
	th, err := material.ParseTheme([]byte(`
metric:
  pxPerDp: 2
layout: inset(4, 8, right(center))
`))
	if err != nil {
		t.Fatal(err)
	}
	want := layout.Spec{
		Insets:       layout.Insets{Top: 8, Right: 16, Bottom: 8, Left: 16},
		Distribution: layout.HorizontalAt(layout.Right),
		Alignment:    layout.Center,
	}
	if got := material.Detail(th, "x").Spec(); got != want {
		t.Errorf("Spec = %+v, want %+v", got, want)
	}
	if th.Layout.Insets.Top != 4 {
		t.Error("Spec modified the theme layout")
	}
}

func TestParseThemeErrors(t *testing.T) {
	for _, doc := range []string{
		"insets: [1, 2",
		"content: Sparkly",
		"opacity: 2",
		"maxWidth: -1",
		"insets: -15",
		"textSize: -12",
		"indicator:\n  barWidth: -180",
		"indicator:\n  success: -28",
		"indicator:\n  lineWidth: -2",
		"layout: inset(-5, bottom(center))",
		"layout: sideways(center)",
		"fonts:\n  regular: /nonexistent/font.ttf",
	} {
		if _, err := material.ParseTheme([]byte(doc)); err == nil {
			t.Errorf("ParseTheme(%q) succeeded", doc)
		}
	}
}

func TestParseThemeNamesNegativeSize(t *testing.T) {
	_, err := material.ParseTheme([]byte("indicator:\n  barWidth: -180"))
	if err == nil || !strings.Contains(err.Error(), "indicator.barWidth") {
		t.Errorf("ParseTheme error = %v, want it to name indicator.barWidth", err)
	}
	if _, err := material.ParseTheme([]byte("indicator:\n  barWidth: 0")); err != nil {
		t.Errorf("ParseTheme rejected a zero width: %v", err)
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	font := filepath.Join(dir, "mono.ttf")
	if err := os.WriteFile(font, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "toast.yaml")
	doc := "titleSize: 20\nfonts:\n  regular: " + font + "\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	th, err := material.LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.TitleSize != 20 {
		t.Errorf("TitleSize = %v", th.TitleSize)
	}
	// Every rune of a monospaced font has the same advance.
	f := text.Font{Size: 12}
	if a, b := th.Shaper.Measure("iiii", f, 0), th.Shaper.Measure("MMMM", f, 0); a != b {
		t.Errorf("mono font not loaded: %v != %v", a, b)
	}

	_, err = material.LoadTheme(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing theme: %v", err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("insets: {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := material.LoadTheme(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("bad theme error %v does not name the file", err)
	}
}

func TestLabels(t *testing.T) {
	th := material.NewTheme()
	th.Shaper = text.Cells{}
	title := material.Title(th, "Saved")
	detail := material.Detail(th, "")
	cv := layout.NewCanvas(th.MaxWidthPx())
	layout.Layout(cv, title, detail)
	if got := title.Frame().Size(); got != f32.Pt(5, 1) {
		t.Errorf("title size = %v", got)
	}
	if got := detail.Frame().Size(); got != (f32.Point{}) {
		t.Errorf("empty detail size = %v", got)
	}
}
