// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package faceview

import (
	"bytes"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"periph.io/x/devices/v3/upd16432b"
)

// TermOpts represents the options available for a Terminal.
type TermOpts struct {
	// Writer overrides where output goes. Defaults to a colorable stdout.
	Writer io.Writer
	// Palette maps colors to the terminal's capabilities.
	Palette *ansi256.Palette

	_ struct{}
}

// Terminal writes a one line rendition of the faceplate to a terminal,
// overdrawing itself on every Show. Permits watching a faceplate session
// without any hardware attached.
type Terminal struct {
	w       io.Writer
	palette ansi256.Palette
	buf     bytes.Buffer
}

// NewTerminal returns a Terminal writing to stdout.
func NewTerminal(opts *TermOpts) *Terminal {
	if opts == nil {
		opts = &TermOpts{}
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Terminal{w: w, palette: *p}
}

func (t *Terminal) String() string {
	return "faceview.Terminal"
}

// Show writes one rendition of the snapshot: the character window in
// brackets, then a colored cell per pictograph with its name. Chargen
// codes have no terminal representation and show as '#'.
func (t *Terminal) Show(snap upd16432b.Snapshot) error {
	t.buf.Reset()
	_, _ = t.buf.WriteString("\r\033[0m[")
	for i := 0; i < upd16432b.VisibleChars; i++ {
		code := snap.DisplayData[i]
		if int(code) < upd16432b.GlyphCount {
			_ = t.buf.WriteByte('#')
			continue
		}
		_, _ = t.buf.WriteRune(romRune(code))
	}
	_, _ = t.buf.WriteString("] ")
	for _, p := range Pictographs {
		c := dimColor
		if snap.Pictograph[p.Block]&p.Mask != 0 {
			c = litColor
		}
		_, _ = t.buf.WriteString(t.palette.Block(c))
		_ = t.buf.WriteByte(' ')
		_, _ = t.buf.WriteString(p.Name)
		_ = t.buf.WriteByte(' ')
	}
	_, _ = t.buf.WriteString("\033[0m")
	_, err := t.buf.WriteTo(t.w)
	return err
}
