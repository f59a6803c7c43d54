// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gioui.org/toast"
	"gioui.org/toast/f32"
	"gioui.org/toast/text"
	"gioui.org/toast/widget"
	"gioui.org/toast/widget/material"
)

var spinner = []rune{'|', '/', '-', '\\'}

// grid is a block of terminal cells.
type grid [][]rune

func newGrid(sz f32.Point) grid {
	w, h := cells(sz.X), cells(sz.Y)
	g := make(grid, h)
	for i := range g {
		g[i] = []rune(strings.Repeat(" ", w))
	}
	return g
}

// put writes s at cell (x, y), clipped to the grid. Wide runes take
// their display width in cells.
func (g grid) put(x, y int, s string) {
	if y < 0 || y >= len(g) {
		return
	}
	row := g[y]
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x >= 0 && x+w <= len(row) {
			row[x] = r
			// Later cells of a wide rune are covered by it.
			for i := 1; i < w; i++ {
				row[x+i] = 0
			}
		}
		x += w
	}
}

func (g grid) String() string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = strings.Map(func(r rune) rune {
			if r == 0 {
				return -1
			}
			return r
		}, string(row))
	}
	return strings.Join(lines, "\n")
}

// render draws the laid out components of t and centers the result
// in a host of size bounds.
func render(t *toast.Toast, bounds f32.Point, now time.Time) string {
	g := newGrid(t.ContentSize())
	for _, c := range t.Components() {
		r := c.Frame()
		x, y := cells(r.Min.X), cells(r.Min.Y)
		mid := r.Center()
		switch c := c.(type) {
		case *widget.Label:
			for i, l := range (text.Cells{}).Lines(c.Text, r.Dx()) {
				g.put(x, y+i, strings.TrimRight(l, " "))
			}
		case *widget.Activity:
			i := int(c.Phase(now)*float32(len(spinner))) % len(spinner)
			g.put(cells(mid.X)-1, cells(mid.Y)-1, string(spinner[i]))
		case *widget.Progress:
			g.put(x, cells(mid.Y)-1, bar(c))
		case *widget.Result:
			sym := "✔"
			if c.Style == widget.Error {
				sym = "✘"
			}
			g.put(cells(mid.X)-1, cells(mid.Y)-1, sym)
		}
	}
	card := cardStyle(t.Theme).Render(g.String())
	return lipgloss.Place(cells(bounds.X), cells(bounds.Y), lipgloss.Center, lipgloss.Center, card)
}

func bar(p *widget.Progress) string {
	w := cells(p.Frame().Dx())
	if p.Style == widget.Pie || p.Style == widget.Ring {
		return strings.Repeat(" ", w/2) + pie(p.Progress())
	}
	done := cells(p.Filled().Dx())
	return strings.Repeat("█", done) + strings.Repeat("░", w-done)
}

func pie(v float32) string {
	quarters := []string{"○", "◔", "◑", "◕", "●"}
	return quarters[int(v*4+.5)]
}

func cardStyle(th *material.Theme) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(lipgloss.Color("15"))
	switch th.Content {
	case material.Coloured:
		s = s.BorderForeground(lipgloss.Color("33")).Background(lipgloss.Color("25"))
	case material.Translucent:
		s = s.BorderForeground(lipgloss.Color("250"))
	default:
		s = s.BorderForeground(lipgloss.Color("240")).Background(lipgloss.Color("236"))
	}
	return s
}

// cells rounds a size in cells to whole cells.
func cells(v float32) int {
	return int(math.Round(float64(v)))
}
