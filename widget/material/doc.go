// SPDX-License-Identifier: Unlicense OR MIT

// Package material constructs toast components in a consistent style.
//
// To maximize reusability and visual consistency, the sizes, spacing
// and text measurement of components are defined by a Theme:
//
//	th := material.NewTheme()
//	title := material.Title(th, "Saved")
//
// A Theme is plain data. It can be adjusted in code or read from YAML
// with LoadTheme and ParseTheme; fields missing from the document keep
// their defaults.
package material
