// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package faceview_test

import (
	"image/png"
	"log"
	"os"

	"periph.io/x/devices/v3/upd16432b"
	"periph.io/x/devices/v3/upd16432b/faceview"
)

// Render a faceplate state both to a PNG and to the terminal.
func Example() {
	state := upd16432b.NewState()
	if err := state.SetDisplayData(0, []byte("TAPE PLAY  ")...); err != nil {
		log.Fatal(err)
	}
	if err := state.SetPictograph(5, 0x10); err != nil {
		log.Fatal(err)
	}
	snap := state.Snapshot()

	img, err := faceview.Render(snap, nil)
	if err != nil {
		log.Fatal(err)
	}
	f, err := os.Create("faceplate.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}

	if err := faceview.NewTerminal(nil).Show(snap); err != nil {
		log.Fatal(err)
	}
}
