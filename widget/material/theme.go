// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
	"gopkg.in/yaml.v3"

	"gioui.org/toast/font/gofont"
	"gioui.org/toast/font/opentype"
	"gioui.org/toast/layout"
	"gioui.org/toast/text"
	"gioui.org/toast/unit"
)

// ContentStyle is the background style of a toast's content block.
type ContentStyle uint8

const (
	// Normal is a dark block with ContentOpacity.
	Normal ContentStyle = iota
	// Coloured is a block in the accent color.
	Coloured
	// Translucent is a blurred, see-through block.
	Translucent
)

// Theme holds the sizes and spacing of toast components. The zero
// Theme is not useful; start from NewTheme.
type Theme struct {
	Metric unit.Metric `yaml:"metric"`
	// TextSize is the size of detail text.
	TextSize unit.Sp `yaml:"textSize"`
	// TitleSize is the size of bold title text.
	TitleSize unit.Sp `yaml:"titleSize"`
	// Insets is the spacing around every component.
	Insets unit.Dp `yaml:"insets"`
	// Layout, if set, replaces the default component spec. Its
	// insets are in dp and take precedence over Insets.
	Layout *layout.Spec `yaml:"layout"`
	// MaxWidth is the width text wraps at, including insets.
	MaxWidth     unit.Dp `yaml:"maxWidth"`
	CornerRadius unit.Dp `yaml:"cornerRadius"`
	// Opacity is the opacity of the dimming backdrop behind a toast.
	Opacity        float32      `yaml:"opacity"`
	Content        ContentStyle `yaml:"content"`
	ContentOpacity float32      `yaml:"contentOpacity"`
	// TouchThrough lets pointer input outside the content block
	// reach the views behind the toast.
	TouchThrough bool `yaml:"touchThrough"`
	Indicator    struct {
		Activity    unit.Dp `yaml:"activity"`
		BarWidth    unit.Dp `yaml:"barWidth"`
		BarHeight   unit.Dp `yaml:"barHeight"`
		Pie         unit.Dp `yaml:"pie"`
		Ring        unit.Dp `yaml:"ring"`
		HairlineBar unit.Dp `yaml:"hairlineBar"`
		Success     unit.Dp `yaml:"success"`
		Error       unit.Dp `yaml:"error"`
		LineWidth   unit.Dp `yaml:"lineWidth"`
	} `yaml:"indicator"`
	// Fonts name font files replacing the Go fonts.
	Fonts struct {
		Regular string `yaml:"regular"`
		Bold    string `yaml:"bold"`
	} `yaml:"fonts"`

	// Shaper measures label text.
	Shaper text.Measurer `yaml:"-"`
}

// NewTheme returns the default theme, measuring text with the Go fonts.
func NewTheme() *Theme {
	t := &Theme{
		TextSize:       12,
		TitleSize:      14,
		Insets:         15,
		MaxWidth:       270,
		CornerRadius:   2,
		Content:        Normal,
		ContentOpacity: 0.89,
		Shaper:         text.NewShaper(gofont.Collection()),
	}
	t.Indicator.Activity = 37
	t.Indicator.BarWidth = 180
	t.Indicator.BarHeight = 12
	t.Indicator.Pie = 37
	t.Indicator.Ring = 37
	t.Indicator.HairlineBar = 1
	t.Indicator.Success = 28
	t.Indicator.Error = 20
	t.Indicator.LineWidth = 2
	return t
}

// LoadTheme reads the YAML theme at path over the defaults.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTheme parses a YAML theme over the defaults. Font files named
// by the theme are loaded into a new Shaper.
func ParseTheme(data []byte) (*Theme, error) {
	t := NewTheme()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if err := t.validateSizes(); err != nil {
		return nil, err
	}
	switch {
	case t.Opacity < 0 || t.Opacity > 1:
		return nil, fmt.Errorf("opacity %g is outside [0, 1]", t.Opacity)
	case t.ContentOpacity < 0 || t.ContentOpacity > 1:
		return nil, fmt.Errorf("contentOpacity %g is outside [0, 1]", t.ContentOpacity)
	}
	if t.Fonts.Regular == "" && t.Fonts.Bold == "" {
		return t, nil
	}
	faces := make(map[text.Weight]*sfnt.Font)
	for w, path := range map[text.Weight]string{text.Regular: t.Fonts.Regular, text.Bold: t.Fonts.Bold} {
		if path == "" {
			faces[w] = gofont.Collection()[w]
			continue
		}
		f, err := opentype.Load(path)
		if err != nil {
			return nil, err
		}
		faces[w] = f
	}
	t.Shaper = text.NewShaper(faces)
	return t, nil
}

func (t *Theme) validateSizes() error {
	ind := &t.Indicator
	for _, s := range []struct {
		name string
		v    float32
	}{
		{"textSize", float32(t.TextSize)},
		{"titleSize", float32(t.TitleSize)},
		{"insets", float32(t.Insets)},
		{"maxWidth", float32(t.MaxWidth)},
		{"cornerRadius", float32(t.CornerRadius)},
		{"indicator.activity", float32(ind.Activity)},
		{"indicator.barWidth", float32(ind.BarWidth)},
		{"indicator.barHeight", float32(ind.BarHeight)},
		{"indicator.pie", float32(ind.Pie)},
		{"indicator.ring", float32(ind.Ring)},
		{"indicator.hairlineBar", float32(ind.HairlineBar)},
		{"indicator.success", float32(ind.Success)},
		{"indicator.error", float32(ind.Error)},
		{"indicator.lineWidth", float32(ind.LineWidth)},
	} {
		if s.v < 0 {
			return fmt.Errorf("%s %v is negative", s.name, s.v)
		}
	}
	if t.Layout != nil {
		in := t.Layout.Insets
		if in.Top < 0 || in.Left < 0 || in.Bottom < 0 || in.Right < 0 {
			return fmt.Errorf("layout insets %+v are negative", in)
		}
	}
	return nil
}

// Spec returns the layout spec of components. Unless Layout is set,
// components have the theme insets on every edge and are placed below
// their predecessor, centered under it.
func (t *Theme) Spec() layout.Spec {
	if t.Layout != nil {
		s := *t.Layout
		in := &s.Insets
		m := t.Metric
		in.Top, in.Left = m.Dp(unit.Dp(in.Top)), m.Dp(unit.Dp(in.Left))
		in.Bottom, in.Right = m.Dp(unit.Dp(in.Bottom)), m.Dp(unit.Dp(in.Right))
		return s
	}
	s := layout.DefaultSpec()
	s.Insets = layout.UniformInsets(t.Metric.Dp(t.Insets))
	return s
}

// MaxWidthPx returns MaxWidth in pixels.
func (t *Theme) MaxWidthPx() float32 {
	return t.Metric.Dp(t.MaxWidth)
}

func (s ContentStyle) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Coloured:
		return "Coloured"
	case Translucent:
		return "Translucent"
	default:
		panic("unreachable")
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ContentStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ContentStyle) UnmarshalText(b []byte) error {
	for _, c := range []ContentStyle{Normal, Coloured, Translucent} {
		if string(b) == c.String() {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown content style %q", b)
}
