// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts for text measurement.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"gioui.org/toast/font/opentype"
	"gioui.org/toast/text"
)

var (
	regOnce    sync.Once
	reg        *sfnt.Font
	once       sync.Once
	collection map[text.Weight]*sfnt.Font
)

func loadRegular() {
	regOnce.Do(func() {
		reg = parse(goregular.TTF)
	})
}

// Regular returns the Go regular font.
func Regular() *sfnt.Font {
	loadRegular()
	return reg
}

// Collection returns the Go regular and bold fonts. The map is shared
// and must not be modified.
func Collection() map[text.Weight]*sfnt.Font {
	loadRegular()
	once.Do(func() {
		collection = map[text.Weight]*sfnt.Font{
			text.Regular: reg,
			text.Bold:    parse(gobold.TTF),
		}
	})
	return collection
}

func parse(ttf []byte) *sfnt.Font {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	return face
}
