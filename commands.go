// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package upd16432b

// RAM geometry of the uPD16432B.
const (
	// DisplayDataSize is the number of character code bytes in display data
	// RAM. The Premium 4 faceplate wires 11 of them to visible positions.
	DisplayDataSize = 25
	// PictographSize is the number of pictograph RAM bytes. Each bit drives
	// one pictograph symbol.
	PictographSize = 8
	// GlyphCount is the number of programmable characters in character
	// generator RAM, addressed by character codes 0x00-0x0F.
	GlyphCount = 16
	// GlyphRows is the number of row bytes per programmable character. The
	// low 5 bits of each row are pixels, leftmost pixel in bit 4.
	GlyphRows = 7
	// ChargenSize is the total character generator RAM size in bytes.
	ChargenSize = GlyphCount * GlyphRows
)

// VisibleChars is the size of the character window the Premium 4 faceplate
// exposes, at display data addresses 0 through VisibleChars-1.
const VisibleChars = 11

// Command bytes. Every bus frame starts with one command byte; the top two
// bits select the command, the rest are its argument.
const (
	cmdDisplaySetting byte = 0x00
	cmdDataSetting    byte = 0x40
	cmdAddressSetting byte = 0x80
	cmdStatus         byte = 0xc0

	cmdMask byte = 0xc0
)

// Data Setting command argument bits. The low bits select which RAM area
// subsequent Address Setting frames write into.
const (
	ramDisplayData byte = 0x00
	ramPictograph  byte = 0x01
	ramChargen     byte = 0x02

	ramMask byte = 0x07
	// incrementOff freezes the address counter so every data byte lands on
	// the same address.
	incrementOff byte = 0x08
)

// Display Setting command argument bits.
const (
	// displayOn enables the LCD drive outputs. Without it the panel is
	// blanked regardless of RAM contents.
	displayOn byte = 0x04
)

// addrMask extracts the address argument of an Address Setting command.
const addrMask byte = 0x3f

// ramArea identifies one of the controller's writable RAM areas. The order
// here is also the update order of a refresh cycle: character generator
// glyphs land before the display data codes that reference them.
type ramArea int

const (
	areaChargen ramArea = iota
	areaDisplayData
	areaPictograph
	numAreas

	areaNone ramArea = -1
)

// dataSetting returns the Data Setting command byte selecting this area.
func (a ramArea) dataSetting() byte {
	switch a {
	case areaDisplayData:
		return cmdDataSetting | ramDisplayData
	case areaPictograph:
		return cmdDataSetting | ramPictograph
	default:
		return cmdDataSetting | ramChargen
	}
}

// size returns the RAM area size in bytes.
func (a ramArea) size() int {
	switch a {
	case areaDisplayData:
		return DisplayDataSize
	case areaPictograph:
		return PictographSize
	default:
		return ChargenSize
	}
}

// elemSize is the number of bytes one address step covers. Chargen
// addresses select whole glyphs.
func (a ramArea) elemSize() int {
	if a == areaChargen {
		return GlyphRows
	}
	return 1
}

// maxAddr is the highest valid Address Setting argument for the area.
func (a ramArea) maxAddr() int {
	return a.size()/a.elemSize() - 1
}

// areaOf maps Data Setting argument bits to a ramArea. Unsupported modes
// (LCD segment RAM reads and the like) map to areaNone.
func areaOf(mode byte) ramArea {
	switch mode & ramMask {
	case ramDisplayData:
		return areaDisplayData
	case ramPictograph:
		return areaPictograph
	case ramChargen:
		return areaChargen
	default:
		return areaNone
	}
}

// initFrames is the fixed power-up sequence: switch the LCD drive on.
func initFrames() [][]byte {
	return [][]byte{{cmdDisplaySetting | displayOn}}
}

// clearFrames is the fixed clear transaction: zero every writable RAM
// area. After it runs, the panel is blank and its entire contents are
// known.
func clearFrames() [][]byte {
	frames := make([][]byte, 0, 2*numAreas)
	for a := ramArea(0); a < numAreas; a++ {
		f := make([]byte, 1, 1+a.size())
		f[0] = cmdAddressSetting
		f = append(f, make([]byte, a.size())...)
		frames = append(frames, []byte{a.dataSetting()}, f)
	}
	return frames
}
