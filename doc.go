// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package upd16432b mirrors the state of an emulated NEC uPD16432B LCD
// controller onto a real radio faceplate over SPI.
//
// The uPD16432B drives the front panel display of several 1990s car radios
// (Volkswagen Premium 4 among others): an 11 character alphanumeric window,
// a row of pictograph symbols, and 16 slots of programmable 5x7 character
// RAM. Head units talk to it over a strobed, LSB-first serial bus.
//
// This driver is the output half of a faceplate pass-through: some other
// component (typically an emulation of the controller itself, see State)
// maintains what the panel should show, and Dev keeps the physical panel in
// sync. The driver does differential updates: it keeps a shadow copy of the
// controller RAM it last wrote and only transmits the bytes that changed,
// using the controller's address auto-increment to burst contiguous runs.
// An idle panel costs zero bus traffic.
//
// A transmission fault aborts the cycle without touching the shadow, so the
// next update naturally retransmits whatever the panel may have missed. No
// retry logic is needed beyond calling UpdateIfDirty periodically.
//
// The faceview subpackage renders the same state on a host machine, either
// as an image or in a terminal, for development without the hardware.
//
// # Datasheet
//
// https://datasheetspdf.com/datasheet/uPD16432B.html
package upd16432b
