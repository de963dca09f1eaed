// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package upd16432b

import (
	"fmt"
	"sync"
)

// State is the logical model of a uPD16432B: what the faceplate should be
// showing. It is typically fed by replaying the head unit's bus frames
// through Process, but can also be driven directly through the setters.
//
// State is safe for concurrent use. A producer (for instance an interrupt
// driven bus capture) may mutate it while the driver is mid refresh; each
// byte is read coherently and any write that races a refresh is picked up
// by the next one.
type State struct {
	mu          sync.Mutex
	displayData [DisplayDataSize]byte
	pictograph  [PictographSize]byte
	chargen     [ChargenSize]byte

	// Bus decoding context set by the last Data Setting command.
	area      ramArea
	address   int
	increment bool
}

// NewState returns a State in power-on reset: all RAM zeroed, no RAM area
// selected.
func NewState() *State {
	return &State{area: areaNone}
}

// Reset returns the model to power-on reset. The physical equivalent is
// Dev.ClearDisplay, so a Reset followed by an update cycle is free.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayData = [DisplayDataSize]byte{}
	s.pictograph = [PictographSize]byte{}
	s.chargen = [ChargenSize]byte{}
	s.area = areaNone
	s.address = 0
	s.increment = false
}

// Snapshot is a self-contained copy of the controller RAM, taken at one
// instant. It is what a refresh cycle diffs and what faceview renders.
type Snapshot struct {
	DisplayData [DisplayDataSize]byte
	Pictograph  [PictographSize]byte
	Chargen     [ChargenSize]byte
}

// Snapshot copies the current RAM contents.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		DisplayData: s.displayData,
		Pictograph:  s.pictograph,
		Chargen:     s.chargen,
	}
}

// ram returns the backing slice for an area. Caller holds s.mu.
func (s *State) ram(a ramArea) []byte {
	switch a {
	case areaDisplayData:
		return s.displayData[:]
	case areaPictograph:
		return s.pictograph[:]
	default:
		return s.chargen[:]
	}
}

// Process applies one bus frame from the head unit to the model: a command
// byte followed by its data bytes, exactly as captured between two strobe
// edges. Unsupported commands are ignored like the real chip ignores them;
// only an empty frame is an error.
func (s *State) Process(frame []byte) error {
	if len(frame) == 0 {
		return fmt.Errorf("upd16432b: empty command frame")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch frame[0] & cmdMask {
	case cmdDisplaySetting:
		// Drive mode only, no RAM effect.
	case cmdDataSetting:
		s.area = areaOf(frame[0])
		s.increment = frame[0]&incrementOff == 0
		if s.area == areaChargen || s.area == areaNone {
			// The chip ignores the increment-off bit for chargen and for
			// unrecognized areas.
			s.increment = true
		}
		s.address = 0
	case cmdAddressSetting:
		if s.area == areaNone {
			break
		}
		addr := int(frame[0] & addrMask)
		if addr > s.area.maxAddr() {
			// Out of range addresses reset the counter.
			addr = 0
		}
		s.address = addr * s.area.elemSize()
		for _, v := range frame[1:] {
			s.ram(s.area)[s.address] = v
			if s.increment {
				// The address counter wraps at the end of the area.
				s.address = (s.address + 1) % s.area.size()
			}
		}
	case cmdStatus:
		// Key scan readout, not part of the display model.
	}
	return nil
}

// SetDisplayData writes character codes starting at addr. Character codes
// 0x00-0x0F reference character generator glyphs, the rest the internal
// ROM font.
func (s *State) SetDisplayData(addr int, codes ...byte) error {
	if addr < 0 || addr+len(codes) > DisplayDataSize {
		return fmt.Errorf("upd16432b: display data write [%d,%d) out of range", addr, addr+len(codes))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.displayData[addr:], codes)
	return nil
}

// SetPictograph sets one pictograph RAM byte. Each bit lights one symbol.
func (s *State) SetPictograph(block int, mask byte) error {
	if block < 0 || block >= PictographSize {
		return fmt.Errorf("upd16432b: pictograph block %d out of range", block)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pictograph[block] = mask
	return nil
}

// SetGlyph programs one character generator glyph. rows holds GlyphRows row
// bytes, leftmost pixel in bit 4.
func (s *State) SetGlyph(code int, rows []byte) error {
	if code < 0 || code >= GlyphCount {
		return fmt.Errorf("upd16432b: glyph code %d out of range", code)
	}
	if len(rows) != GlyphRows {
		return fmt.Errorf("upd16432b: glyph needs %d rows, got %d", GlyphRows, len(rows))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.chargen[code*GlyphRows:], rows)
	return nil
}
