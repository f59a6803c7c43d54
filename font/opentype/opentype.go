// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses OpenType and TrueType font files for text
// measurement.
package opentype

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// Parse parses a single font from source bytes.
func Parse(src []byte) (*sfnt.Font, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("opentype: %w", err)
	}
	return f, nil
}

// ParseCollection parses an OpenType font file, with support for
// collections. Single font files are returned as a slice with length 1.
func ParseCollection(src []byte) ([]*sfnt.Font, error) {
	c, err := sfnt.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("opentype: %w", err)
	}
	fonts := make([]*sfnt.Font, c.NumFonts())
	for i := range fonts {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("opentype: font %d: %w", i, err)
		}
		fonts[i] = f
	}
	return fonts, nil
}

// Load reads and parses the first font of the file at path.
func Load(path string) (*sfnt.Font, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fonts, err := ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fonts[0], nil
}
