// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/toast/f32"
	"gioui.org/toast/text"
	"gioui.org/toast/widget"
)

// Title returns a bold label for the headline of a toast.
func Title(th *Theme, txt string) *widget.Label {
	f := text.Font{Weight: text.Bold, Size: th.Metric.Sp(th.TitleSize)}
	return widget.NewLabel(th.Spec(), th.Shaper, f, txt)
}

// Detail returns a label for the body text of a toast.
func Detail(th *Theme, txt string) *widget.Label {
	f := text.Font{Size: th.Metric.Sp(th.TextSize)}
	return widget.NewLabel(th.Spec(), th.Shaper, f, txt)
}

// Activity returns a stopped activity indicator.
func Activity(th *Theme, style widget.ActivityStyle) *widget.Activity {
	sz := th.Metric.Dp(th.Indicator.Activity)
	a := widget.NewActivity(th.Spec(), style, f32.Pt(sz, sz))
	a.LineWidth = th.Metric.Dp(th.Indicator.LineWidth)
	if style == widget.BreachedRing {
		a.LineWidth *= 1.5
	}
	return a
}

// Progress returns a progress indicator at zero progress.
func Progress(th *Theme, style widget.ProgressStyle) *widget.Progress {
	m := th.Metric
	var sz f32.Point
	switch style {
	case widget.Bar:
		sz = f32.Pt(m.Dp(th.Indicator.BarWidth), m.Dp(th.Indicator.BarHeight))
	case widget.Pie:
		sz = f32.Pt(m.Dp(th.Indicator.Pie), m.Dp(th.Indicator.Pie))
	case widget.Ring:
		sz = f32.Pt(m.Dp(th.Indicator.Ring), m.Dp(th.Indicator.Ring))
	case widget.ColouredBar:
		sz = f32.Pt(m.Dp(th.Indicator.BarWidth), m.Dp(th.Indicator.HairlineBar))
	}
	p := widget.NewProgress(th.Spec(), style, sz)
	p.LineWidth = m.Dp(th.Indicator.LineWidth) * .5
	return p
}

// Result returns a check mark or cross.
func Result(th *Theme, style widget.ResultStyle) *widget.Result {
	w := th.Indicator.Success
	if style == widget.Error {
		w = th.Indicator.Error
	}
	r := widget.NewResult(th.Spec(), style, th.Metric.Dp(w))
	r.LineWidth = th.Metric.Dp(th.Indicator.LineWidth)
	return r
}

// ResultIcon returns a result indicator drawn with the material
// design check or close icon.
func ResultIcon(th *Theme, style widget.ResultStyle) *widget.Result {
	r := Result(th, style)
	data := icons.ActionDone
	if style == widget.Error {
		data = icons.NavigationClose
	}
	if err := r.SetIcon(data); err != nil {
		panic(err)
	}
	return r
}
