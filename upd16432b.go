// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package upd16432b

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Freq: 500 * physic.KiloHertz,
}

// Opts defines the options for the device.
type Opts struct {
	// Freq is the bus clock. The controller tops out at 1MHz; the stock
	// head unit clocks it well below that.
	Freq physic.Frequency
}

// Dev is an open handle to the faceplate.
//
// Dev methods are serialized internally, so one refresh cycle is always
// fully transmitted before the next begins.
type Dev struct {
	mu sync.Mutex
	c  conn.Conn
	sh shadow

	// RAM area and increment mode the controller currently has selected,
	// tracked so raw SendCommand frames can invalidate the right shadow
	// bytes.
	rawArea      ramArea
	rawIncrement bool
}

// New returns a Dev connected to a uPD16432B faceplate on the given SPI
// port.
//
// The controller is strobed LSB-first; the port must support
// spi.LSBFirst. New switches the LCD drive on and runs the clear
// transaction, so the panel starts blank and the first UpdateIfDirty
// transmits exactly the nonzero parts of the model.
func New(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	freq := opts.Freq
	if freq == 0 {
		freq = DefaultOpts.Freq
	}
	if freq < 0 || freq > physic.MegaHertz {
		return nil, fmt.Errorf("upd16432b: invalid bus frequency %s", freq)
	}
	c, err := p.Connect(freq, spi.Mode0|spi.LSBFirst, 8)
	if err != nil {
		return nil, wrap(err)
	}
	return newDev(c)
}

// newDev finishes initialization over an established connection.
func newDev(c conn.Conn) (*Dev, error) {
	d := &Dev{c: c, sh: newShadow(), rawArea: areaNone}
	for _, f := range initFrames() {
		if err := d.c.Tx(f, nil); err != nil {
			return nil, wrap(err)
		}
	}
	if err := d.ClearDisplay(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("upd16432b.Dev{%s}", d.c)
}

// ClearDisplay sends the fixed clear transaction, zeroing every RAM area
// on the hardware. The shadow records the zeros as known, so a model that
// is also blank costs nothing to sync afterwards.
func (d *Dev) ClearDisplay() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range clearFrames() {
		if err := d.c.Tx(f, nil); err != nil {
			// The clear may have partially applied; anything we thought we
			// knew about the hardware is now suspect.
			d.sh.markAllUnknown()
			return wrap(err)
		}
	}
	for _, a := range d.sh {
		a.setKnownZero()
	}
	d.rawArea = areaPictograph
	d.rawIncrement = true
	return nil
}

// UpdateIfDirty runs one refresh cycle: it snapshots the model, diffs it
// against the shadow of the hardware, and transmits only the differences.
// If nothing changed, nothing is sent.
//
// On a bus fault the cycle aborts and the shadow is not committed; calling
// UpdateIfDirty again retransmits whatever the hardware may have missed.
// Call it periodically, or whenever the model changed.
func (d *Dev) UpdateIfDirty(s *State) error {
	snap := s.Snapshot()
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateLocked(&snap)
}

// Refresh retransmits the whole model unconditionally, for when the
// hardware was reset or repowered behind the driver's back.
func (d *Dev) Refresh(s *State) error {
	snap := s.Snapshot()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sh.markAllUnknown()
	return d.updateLocked(&snap)
}

func (d *Dev) updateLocked(snap *Snapshot) error {
	var dirty [numAreas][]span
	n := 0
	for a := ramArea(0); a < numAreas; a++ {
		cur := areaBytes(snap, a)
		if a == areaChargen {
			dirty[a] = diffGlyphs(cur, d.sh[a])
		} else {
			dirty[a] = diffBytes(cur, d.sh[a])
		}
		n += len(dirty[a])
	}
	if n == 0 {
		return nil
	}
	for a := ramArea(0); a < numAreas; a++ {
		if len(dirty[a]) == 0 {
			continue
		}
		for i, f := range encodeArea(a, dirty[a]) {
			if err := d.c.Tx(f, nil); err != nil {
				return wrap(err)
			}
			if i == 0 {
				d.rawArea = a
				d.rawIncrement = true
			}
		}
	}
	for a := ramArea(0); a < numAreas; a++ {
		commitSpans(a, dirty[a], d.sh[a])
	}
	return nil
}

// SendCommand transmits one raw command frame, bypassing the differencing
// engine. It is meant for pass-through setups where the head unit's own
// frames are forwarded verbatim.
//
// Raw frames that write RAM invalidate the addressed shadow bytes, so a
// later UpdateIfDirty remains correct no matter what was sent.
func (d *Dev) SendCommand(frame []byte) error {
	if len(frame) == 0 {
		return fmt.Errorf("upd16432b: empty command frame")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.c.Tx(frame, nil); err != nil {
		return wrap(err)
	}
	switch frame[0] & cmdMask {
	case cmdDataSetting:
		d.rawArea = areaOf(frame[0])
		d.rawIncrement = frame[0]&incrementOff == 0
		if d.rawArea == areaChargen || d.rawArea == areaNone {
			// The chip ignores the increment-off bit for chargen and for
			// unrecognized areas.
			d.rawIncrement = true
		}
	case cmdAddressSetting:
		if d.rawArea == areaNone || len(frame) == 1 {
			break
		}
		addr := int(frame[0] & addrMask)
		if addr > d.rawArea.maxAddr() {
			addr = 0
		}
		n := len(frame) - 1
		if !d.rawIncrement {
			n = 1
		}
		d.sh[d.rawArea].markUnknownRange(addr*d.rawArea.elemSize(), n)
	}
	return nil
}

// Halt implements conn.Resource. It blanks the panel by switching the LCD
// drive off; the controller RAM and the shadow stay intact.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return wrap(d.c.Tx([]byte{cmdDisplaySetting}, nil))
}

// areaBytes returns the snapshot bytes backing one RAM area.
func areaBytes(snap *Snapshot, a ramArea) []byte {
	switch a {
	case areaDisplayData:
		return snap.DisplayData[:]
	case areaPictograph:
		return snap.Pictograph[:]
	default:
		return snap.Chargen[:]
	}
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("upd16432b: %w", err)
}

var _ conn.Resource = &Dev{}
