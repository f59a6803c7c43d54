// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the leaf components of a toast: text
// labels and activity, progress and result indicators. Widgets only
// compute their intrinsic size; their frames are assigned by the
// layout engine. Theme packages such as `widget/material` construct
// widgets with consistent sizes and spacing.
package widget
