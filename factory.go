// SPDX-License-Identifier: Unlicense OR MIT

package toast

import (
	"gioui.org/toast/layout"
	"gioui.org/toast/widget"
	"gioui.org/toast/widget/material"
)

// Message returns a toast with a title and a detail line. Empty
// strings are left out.
func Message(th *material.Theme, msg, detail string) *Toast {
	return New(th, labels(th, msg, detail)...)
}

// WithResult returns a toast with a result symbol above msg.
func WithResult(th *material.Theme, style widget.ResultStyle, msg string) *Toast {
	return withIndicator(th, material.Result(th, style), msg)
}

// WithActivity returns a toast with a running activity indicator
// above msg.
func WithActivity(th *material.Theme, style widget.ActivityStyle, msg string) *Toast {
	a := material.Activity(th, style)
	a.Start()
	return withIndicator(th, a, msg)
}

// WithProgress returns a toast with a progress indicator above msg.
// Use SetProgress to advance it.
func WithProgress(th *material.Theme, style widget.ProgressStyle, msg string) *Toast {
	return withIndicator(th, material.Progress(th, style), msg)
}

func withIndicator(th *material.Theme, ind layout.Component, msg string) *Toast {
	return New(th, append([]layout.Component{ind}, labels(th, msg, "")...)...)
}

func labels(th *material.Theme, msg, detail string) []layout.Component {
	var cs []layout.Component
	if msg != "" {
		cs = append(cs, material.Title(th, msg))
	}
	if detail != "" {
		cs = append(cs, material.Detail(th, detail))
	}
	return cs
}
