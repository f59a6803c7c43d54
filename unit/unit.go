// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Pixels, or px, are display dependent. Toast frames are expressed in
pixels; themes are expressed in dp and sp and converted through a
Metric when components are created.
*/
package unit

import (
	"fmt"
	"math"
)

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32 `yaml:"pxPerDp"`
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32 `yaml:"pxPerSp"`
}

// Dp represents device independent pixels. 1 dp will
// have the same apparent size across platforms and
// display resolutions.
type Dp float32

// Sp is like UnitDp but for font sizes.
type Sp float32

// Dp converts v to pixels.
func (c Metric) Dp(v Dp) float32 {
	return float32(v) * nonZero(c.PxPerDp)
}

// Sp converts v to pixels.
func (c Metric) Sp(v Sp) float32 {
	return float32(v) * nonZero(c.PxPerSp)
}

// DpToSp converts v dp to sp.
func (c Metric) DpToSp(v Dp) Sp {
	return Sp(float32(v) * nonZero(c.PxPerDp) / nonZero(c.PxPerSp))
}

// SpToDp converts v sp to dp.
func (c Metric) SpToDp(v Sp) Dp {
	return Dp(float32(v) * nonZero(c.PxPerSp) / nonZero(c.PxPerDp))
}

// PxToDp converts v px to dp.
func (c Metric) PxToDp(v float32) Dp {
	return Dp(v / nonZero(c.PxPerDp))
}

// Ceil converts v to pixels rounded up to the next whole pixel.
func (c Metric) Ceil(v Dp) float32 {
	return float32(math.Ceil(float64(c.Dp(v))))
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
