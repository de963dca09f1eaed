// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package upd16432b

// span is one contiguous run of element writes into a RAM area. addr is an
// Address Setting argument (a byte address, or a glyph code for chargen)
// and data holds the values in ascending address order.
type span struct {
	addr int
	data []byte
}

// diffBytes compares the wanted contents of a byte-addressed RAM area
// against its shadow and returns the spans that must be written, in
// ascending address order. Only strictly adjacent dirty bytes share a
// span; a clean byte between two dirty ones splits the run, so a span
// never carries a byte the hardware already shows.
func diffBytes(cur []byte, sh *shadowArea) []span {
	var spans []span
	for addr := 0; addr < len(cur); {
		if !sh.differs(addr, cur[addr]) {
			addr++
			continue
		}
		start := addr
		for addr < len(cur) && sh.differs(addr, cur[addr]) {
			addr++
		}
		spans = append(spans, span{addr: start, data: cur[start:addr]})
	}
	return spans
}

// diffGlyphs is the chargen variant of diffBytes. The addressable element
// is a whole glyph: if any of its row bytes differs from the shadow the
// full glyph is rewritten, and span addresses are glyph codes rather than
// byte offsets. Adjacent dirty glyphs coalesce into one auto-increment
// burst.
func diffGlyphs(cur []byte, sh *shadowArea) []span {
	dirty := func(g int) bool {
		for r := 0; r < GlyphRows; r++ {
			if sh.differs(g*GlyphRows+r, cur[g*GlyphRows+r]) {
				return true
			}
		}
		return false
	}
	var spans []span
	for g := 0; g < GlyphCount; {
		if !dirty(g) {
			g++
			continue
		}
		start := g
		for g < GlyphCount && dirty(g) {
			g++
		}
		spans = append(spans, span{addr: start, data: cur[start*GlyphRows : g*GlyphRows]})
	}
	return spans
}

// encodeArea turns the dirty spans of one RAM area into bus frames: a Data
// Setting frame selecting the area, then one Address Setting frame per
// span carrying its data. Each frame is a single strobe-scoped bus
// transaction. Span data rides the controller's address auto-increment, so
// a run of any length costs one frame.
func encodeArea(area ramArea, spans []span) [][]byte {
	frames := make([][]byte, 0, 1+len(spans))
	frames = append(frames, []byte{area.dataSetting()})
	for _, s := range spans {
		f := make([]byte, 1, 1+len(s.data))
		f[0] = cmdAddressSetting | byte(s.addr)
		f = append(f, s.data...)
		frames = append(frames, f)
	}
	return frames
}

// commitSpans records transmitted spans in the shadow. Called only after
// every frame of the cycle was accepted by the bus.
func commitSpans(area ramArea, spans []span, sh *shadowArea) {
	for _, s := range spans {
		base := s.addr * area.elemSize()
		for i, v := range s.data {
			sh.set(base+i, v)
		}
	}
}
