// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// Spot controls auto-spotting and the PSK Reporter interface (the spot.*
// methods).
type Spot struct{ c *Client }

// Spot returns the spotter controls.
func (c *Client) Spot() Spot { return Spot{c} }

// Auto reports whether the auto-spotter is enabled.
func (s Spot) Auto() (bool, error) {
	var b bool
	err := s.c.Call("spot.get_auto", &b)
	return b, err
}

// SetAuto enables or disables the auto-spotter and returns the old state.
func (s Spot) SetAuto(on bool) (bool, error) {
	var old bool
	err := s.c.Call("spot.set_auto", &old, on)
	return old, err
}

// ToggleAuto toggles the auto-spotter and returns the new state.
func (s Spot) ToggleAuto() (bool, error) {
	var b bool
	err := s.c.Call("spot.toggle_auto", &b)
	return b, err
}

// PSKRepCount returns the number of callsigns spotted in the current
// session.
func (s Spot) PSKRepCount() (int, error) {
	var n int
	err := s.c.Call("spot.pskrep.get_count", &n)
	return n, err
}
