// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package upd16432b

// shadowArea is the driver's record of what one controller RAM area
// physically holds. A byte participates in differencing only once it is
// known; unknown bytes are unconditionally dirty so they get rewritten on
// the next cycle. Only the refresh path writes here, and only after the
// bus accepted the corresponding frame.
type shadowArea struct {
	values []byte
	known  []bool
}

func newShadowArea(n int) *shadowArea {
	return &shadowArea{
		values: make([]byte, n),
		known:  make([]bool, n),
	}
}

// differs reports whether addr must be rewritten to hold v.
func (s *shadowArea) differs(addr int, v byte) bool {
	return !s.known[addr] || s.values[addr] != v
}

// set records that the hardware now holds v at addr.
func (s *shadowArea) set(addr int, v byte) {
	s.values[addr] = v
	s.known[addr] = true
}

// markAllUnknown forces a full rewrite of the area on the next cycle.
func (s *shadowArea) markAllUnknown() {
	for i := range s.known {
		s.known[i] = false
	}
}

// markUnknownRange invalidates n bytes starting at addr, wrapping past the
// end of the area the way the controller's address counter does. Used when
// a raw command wrote past the differencing engine.
func (s *shadowArea) markUnknownRange(addr, n int) {
	if n >= len(s.known) {
		s.markAllUnknown()
		return
	}
	for i := 0; i < n; i++ {
		s.known[(addr+i)%len(s.known)] = false
	}
}

// setKnownZero records that the hardware holds zeros across the whole
// area, which is what the clear transaction leaves behind.
func (s *shadowArea) setKnownZero() {
	for i := range s.values {
		s.values[i] = 0
		s.known[i] = true
	}
}

// shadow aggregates the per-area shadows, indexed by ramArea.
type shadow [numAreas]*shadowArea

func newShadow() shadow {
	var sh shadow
	for a := ramArea(0); a < numAreas; a++ {
		sh[a] = newShadowArea(a.size())
	}
	return sh
}

func (sh shadow) markAllUnknown() {
	for _, a := range sh {
		a.markAllUnknown()
	}
}
