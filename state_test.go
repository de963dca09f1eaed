// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package upd16432b

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProcessDisplayData(t *testing.T) {
	s := NewState()
	frames := [][]byte{
		{0x40},                     // Data Setting: display data, increment on
		{0x80, 'N', 'O', ' ', 'C'}, // Address Setting 0 + data
		{0x84, 'O', 'D', 'E'},      // overwrite starting at 4
	}
	for _, f := range frames {
		if err := s.Process(f); err != nil {
			t.Fatal(err)
		}
	}
	snap := s.Snapshot()
	want := []byte{'N', 'O', ' ', 'C', 'O', 'D', 'E'}
	if diff := cmp.Diff(snap.DisplayData[:len(want)], want); diff != "" {
		t.Errorf("display data difference (-got +want):\n%s", diff)
	}
}

func TestProcessIncrementOff(t *testing.T) {
	s := NewState()
	frames := [][]byte{
		{0x40 | 0x08},    // Data Setting: display data, increment off
		{0x83, 1, 2, 3},  // every byte lands on address 3
	}
	for _, f := range frames {
		if err := s.Process(f); err != nil {
			t.Fatal(err)
		}
	}
	snap := s.Snapshot()
	if snap.DisplayData[3] != 3 {
		t.Errorf("displayData[3] = %d, want 3", snap.DisplayData[3])
	}
	if snap.DisplayData[4] != 0 {
		t.Errorf("displayData[4] = %d, want 0", snap.DisplayData[4])
	}
}

func TestProcessChargenIgnoresIncrementOff(t *testing.T) {
	// The chip auto-increments through chargen rows even when the Data
	// Setting frame asked for increment off.
	s := NewState()
	rows := []byte{1, 2, 3, 4, 5, 6, 7}
	frames := [][]byte{
		{0x42 | 0x08},                 // Data Setting: chargen, increment off
		append([]byte{0x80}, rows...), // glyph 0
	}
	for _, f := range frames {
		if err := s.Process(f); err != nil {
			t.Fatal(err)
		}
	}
	snap := s.Snapshot()
	if diff := cmp.Diff(snap.Chargen[:GlyphRows], rows); diff != "" {
		t.Errorf("chargen difference (-got +want):\n%s", diff)
	}
}

func TestProcessChargenAddressing(t *testing.T) {
	s := NewState()
	rows := []byte{0x04, 0x0a, 0x11, 0x1f, 0x11, 0x11, 0x00}
	frames := [][]byte{
		{0x42},                        // Data Setting: chargen
		append([]byte{0x82}, rows...), // glyph 2
	}
	for _, f := range frames {
		if err := s.Process(f); err != nil {
			t.Fatal(err)
		}
	}
	snap := s.Snapshot()
	if diff := cmp.Diff(snap.Chargen[2*GlyphRows:3*GlyphRows], rows); diff != "" {
		t.Errorf("chargen difference (-got +want):\n%s", diff)
	}
}

func TestProcessPictograph(t *testing.T) {
	s := NewState()
	for _, f := range [][]byte{{0x41}, {0x80, 0x01, 0x00, 0x20}} {
		if err := s.Process(f); err != nil {
			t.Fatal(err)
		}
	}
	snap := s.Snapshot()
	if snap.Pictograph[0] != 0x01 || snap.Pictograph[2] != 0x20 {
		t.Errorf("pictograph = %v", snap.Pictograph)
	}
}

func TestProcessEdgeCases(t *testing.T) {
	s := NewState()
	if err := s.Process(nil); err == nil {
		t.Error("expected an error for an empty frame")
	}
	// Data for an area that was never selected is dropped.
	if err := s.Process([]byte{0x85, 1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot(); got != (Snapshot{}) {
		t.Error("write without a selected RAM area mutated the model")
	}
	// An out of range address resets the counter.
	if err := s.Process([]byte{0x41}); err != nil {
		t.Fatal(err)
	}
	if err := s.Process([]byte{0x80 | 0x20, 0x7f}); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot(); got.Pictograph[0] != 0x7f {
		t.Errorf("pictograph[0] = 0x%x, want 0x7f", got.Pictograph[0])
	}
	// Writes walking off the end of the area wrap back to address 0.
	if err := s.Process([]byte{0x86, 1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	got := s.Snapshot()
	if got.Pictograph[6] != 1 || got.Pictograph[7] != 2 {
		t.Errorf("pictograph = %v", got.Pictograph)
	}
	if got.Pictograph[0] != 3 || got.Pictograph[1] != 4 {
		t.Errorf("pictograph = %v, want bytes 3 and 4 wrapped to the start", got.Pictograph)
	}
	// Display Setting and Status frames leave RAM alone.
	before := s.Snapshot()
	for _, f := range [][]byte{{0x04}, {0xc0}} {
		if err := s.Process(f); err != nil {
			t.Fatal(err)
		}
	}
	if s.Snapshot() != before {
		t.Error("non-write command mutated the model")
	}
}

func TestSettersBounds(t *testing.T) {
	s := NewState()
	if err := s.SetDisplayData(DisplayDataSize-1, 1, 2); err == nil {
		t.Error("expected an out of range error from SetDisplayData")
	}
	if err := s.SetPictograph(PictographSize, 0xff); err == nil {
		t.Error("expected an out of range error from SetPictograph")
	}
	if err := s.SetGlyph(GlyphCount, make([]byte, GlyphRows)); err == nil {
		t.Error("expected an out of range error from SetGlyph")
	}
	if err := s.SetGlyph(0, []byte{1, 2}); err == nil {
		t.Error("expected a row count error from SetGlyph")
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	if err := s.SetDisplayData(0, 'X'); err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if s.Snapshot() != (Snapshot{}) {
		t.Error("Reset left RAM contents behind")
	}
	if s.area != areaNone || s.address != 0 || s.increment {
		t.Errorf("Reset left bus context behind: area=%d address=%d increment=%v",
			s.area, s.address, s.increment)
	}
}
