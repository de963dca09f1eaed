// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package faceview renders a uPD16432B state snapshot on the host: as an
// image for development and documentation, or as a line in a terminal.
// It exists so faceplate code can be exercised without the faceplate.
package faceview

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"periph.io/x/devices/v3/upd16432b"
)

// Pictograph describes one symbol on the Premium 4 faceplate: the
// pictograph RAM byte that drives it and the bit within that byte.
type Pictograph struct {
	Name  string
	Block int
	Mask  byte
}

// Pictographs lists the symbols the Premium 4 faceplate wires up.
var Pictographs = []Pictograph{
	{Name: "PERIOD", Block: 0, Mask: 0x10},
	{Name: "MIX", Block: 0, Mask: 0x01},
	{Name: "METAL", Block: 2, Mask: 0x02},
	{Name: "DOLBY", Block: 2, Mask: 0x20},
	{Name: "AM/FM", Block: 5, Mask: 0x01},
	{Name: "CD", Block: 5, Mask: 0x04},
	{Name: "TAPE", Block: 5, Mask: 0x10},
}

// Colors of the rendition: a dark panel with amber segments, like the
// original vacuum fluorescent look.
var (
	panelColor = color.NRGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}
	litColor   = color.NRGBA{R: 0xff, G: 0xa0, B: 0x00, A: 0xff}
	dimColor   = color.NRGBA{R: 0x30, G: 0x2a, B: 0x1e, A: 0xff}
)

const glyphCols = 5

// Opts defines the options for Render.
type Opts struct {
	// Scale is the square pixel size of one LCD dot.
	Scale int
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{Scale: 4}

// geometry for a given dot scale. The character window starts at
// (margin, margin); character cell i starts at margin+i*cellW and dot
// (col, row) inside it covers a scale-sized square.
func geometry(s int) (margin, cellW, cellH, width, height int) {
	margin = 2 * s
	cellW = (glyphCols + 1) * s
	cellH = (upd16432b.GlyphRows + 1) * s
	width = 2*margin + upd16432b.VisibleChars*cellW
	height = 2*margin + cellH + 4*s
	return
}

var (
	faceOnce sync.Once
	faceErr  error
	ttf      *truetype.Font
)

func fontFace(size float64) (font.Face, error) {
	faceOnce.Do(func() {
		ttf, faceErr = truetype.Parse(goregular.TTF)
	})
	if faceErr != nil {
		return nil, fmt.Errorf("faceview: %w", faceErr)
	}
	return truetype.NewFace(ttf, &truetype.Options{Size: size}), nil
}

// Render draws the faceplate as seen with the given controller RAM: the
// visible character window on top, the pictograph row below. Character
// codes 0x00-0x0F are rasterized dot by dot from the snapshot's character
// generator RAM; all other codes go through the ROM font.
func Render(snap upd16432b.Snapshot, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	s := opts.Scale
	if s <= 0 {
		return nil, fmt.Errorf("faceview: invalid scale %d", s)
	}
	margin, cellW, cellH, width, height := geometry(s)

	dc := gg.NewContext(width, height)
	dc.SetColor(panelColor)
	dc.Clear()

	face, err := fontFace(float64(cellH) * 0.9)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	for i := 0; i < upd16432b.VisibleChars; i++ {
		code := snap.DisplayData[i]
		x := margin + i*cellW
		if int(code) < upd16432b.GlyphCount {
			drawGlyph(dc, snap.Chargen[:], int(code), x, margin, s)
			continue
		}
		dc.SetColor(litColor)
		dc.DrawStringAnchored(string(romRune(code)), float64(x+cellW/2), float64(margin+cellH/2), 0.5, 0.5)
	}

	small, err := fontFace(float64(3 * s))
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(small)
	y := margin + cellH + 2*s
	x := margin
	for _, p := range Pictographs {
		if snap.Pictograph[p.Block]&p.Mask != 0 {
			dc.SetColor(litColor)
		} else {
			dc.SetColor(dimColor)
		}
		dc.DrawStringAnchored(p.Name, float64(x), float64(y), 0, 0.5)
		w, _ := dc.MeasureString(p.Name)
		x += int(w) + 2*s
	}

	return dc.Image(), nil
}

// drawGlyph rasterizes one chargen glyph dot by dot. Row bytes put the
// leftmost pixel in bit 4.
func drawGlyph(dc *gg.Context, chargen []byte, code, x, y, s int) {
	dc.SetColor(litColor)
	for r := 0; r < upd16432b.GlyphRows; r++ {
		row := chargen[code*upd16432b.GlyphRows+r]
		for c := 0; c < glyphCols; c++ {
			if row&(1<<(glyphCols-1-c)) == 0 {
				continue
			}
			dc.DrawRectangle(float64(x+c*s), float64(y+r*s), float64(s), float64(s))
		}
	}
	dc.Fill()
}

// romRune maps a ROM font character code to a displayable rune. The
// controller's internal font tracks ASCII over the printable range; the
// handful of katakana codes above it are not mapped.
func romRune(code byte) rune {
	if code >= 0x20 && code <= 0x7d {
		return rune(code)
	}
	return ' '
}
