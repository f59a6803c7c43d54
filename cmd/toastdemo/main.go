// SPDX-License-Identifier: Unlicense OR MIT

// Command toastdemo lays out a toast and previews it in the terminal.
//
// Sizes are converted to terminal cells and text is measured in cells,
// so the preview shows the placement of components rather than their
// appearance.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gioui.org/toast"
	"gioui.org/toast/f32"
	"gioui.org/toast/text"
	"gioui.org/toast/unit"
	"gioui.org/toast/widget"
	"gioui.org/toast/widget/material"
)

var (
	kind      = flag.String("kind", "message", "toast kind (message, success, error, activity, progress).")
	title     = flag.String("title", "Saved", "title text.")
	detail    = flag.String("detail", "", "detail text, for -kind message.")
	progress  = flag.Float64("progress", .5, "progress for -kind progress.")
	style     = flag.String("style", "", "indicator style (activity: normal, ring; progress: bar, pie, ring, coloured).")
	themePath = flag.String("theme", "", "YAML theme file.")
	width     = flag.Int("width", 80, "host width in cells.")
	height    = flag.Int("height", 24, "host height in cells.")
	verbose   = flag.Bool("v", false, "log component frames.")
)

// cellsPerDp scales the theme to terminal cells.
const cellsPerDp = .2

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("toastdemo: ")
	if err := mainErr(); err != nil {
		log.Fatal(err)
	}
}

func mainErr() error {
	th, err := loadTheme(*themePath)
	if err != nil {
		return err
	}
	t, err := newToast(th, *kind, *style, *title, *detail)
	if err != nil {
		return err
	}
	t.SetProgress(float32(*progress))
	if *verbose {
		t.Log = log.Default()
	}
	bounds := f32.Pt(float32(*width), float32(*height))
	content := t.Layout(bounds)
	if *verbose {
		log.Printf("content %v", content)
		for _, c := range t.Components() {
			log.Printf("%T %d %v", c, c.ID(), c.Frame())
		}
	}
	fmt.Println(render(t, bounds, time.Now()))
	return nil
}

func loadTheme(path string) (*material.Theme, error) {
	th := material.NewTheme()
	if path != "" {
		var err error
		if th, err = material.LoadTheme(path); err != nil {
			return nil, err
		}
	}
	if th.Metric == (unit.Metric{}) {
		th.Metric = unit.Metric{PxPerDp: cellsPerDp, PxPerSp: cellsPerDp}
	}
	th.Shaper = text.Cells{}
	return th, nil
}

func newToast(th *material.Theme, kind, style, title, detail string) (*toast.Toast, error) {
	switch kind {
	case "message":
		return toast.Message(th, title, detail), nil
	case "success":
		return toast.WithResult(th, widget.Success, title), nil
	case "error":
		return toast.WithResult(th, widget.Error, title), nil
	case "activity":
		s := widget.Normal
		switch style {
		case "", "normal":
		case "ring":
			s = widget.BreachedRing
		default:
			return nil, fmt.Errorf("invalid activity -style %s", style)
		}
		return toast.WithActivity(th, s, title), nil
	case "progress":
		styles := map[string]widget.ProgressStyle{
			"":         widget.Bar,
			"bar":      widget.Bar,
			"pie":      widget.Pie,
			"ring":     widget.Ring,
			"coloured": widget.ColouredBar,
		}
		s, ok := styles[style]
		if !ok {
			return nil, fmt.Errorf("invalid progress -style %s", style)
		}
		return toast.WithProgress(th, s, title), nil
	case "":
		return nil, errors.New("specify a -kind")
	default:
		return nil, fmt.Errorf("invalid -kind %s", kind)
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: toastdemo [flags]\n\n")
		flag.PrintDefaults()
	}
}
