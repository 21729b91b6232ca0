// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// Rig controls the transceiver fldigi is interfaced with, if any (the rig.*
// methods). With no active rig control these calls return remote faults;
// the convenience accessors on Client fall back to the main.* equivalents
// in that case.
type Rig struct{ c *Client }

// Rig returns the rig controls.
func (c *Client) Rig() Rig { return Rig{c} }

// Name returns the rig name previously set with SetName.
func (r Rig) Name() (string, error) {
	var s string
	err := r.c.Call("rig.get_name", &s)
	return s, err
}

// SetName sets the rig name shown on the main window title bar.
func (r Rig) SetName(name string) error { return r.c.Call("rig.set_name", nil, name) }

func (r Rig) Frequency() (Frequency, error) {
	var f float64
	err := r.c.Call("rig.get_frequency", &f)
	return Frequency(f), err
}

// SetFrequency sets the rig frequency and returns the old value.
func (r Rig) SetFrequency(f Frequency) (Frequency, error) {
	var old float64
	err := r.c.Call("rig.set_frequency", &old, float64(f))
	return Frequency(old), err
}

// Mode returns the rig's operating mode (e.g. "USB").
func (r Rig) Mode() (string, error) {
	var s string
	err := r.c.Call("rig.get_mode", &s)
	return s, err
}

func (r Rig) SetMode(mode string) error { return r.c.Call("rig.set_mode", nil, mode) }

// Modes returns the list of operating modes selectable on the rig.
func (r Rig) Modes() ([]string, error) {
	var modes []string
	err := r.c.Call("rig.get_modes", &modes)
	return modes, err
}

// SetModes sets the list of operating modes selectable on the rig.
func (r Rig) SetModes(modes []string) error { return r.c.Call("rig.set_modes", nil, modes) }

// Bandwidth returns the name of the rig's current bandwidth setting.
func (r Rig) Bandwidth() (string, error) {
	var s string
	err := r.c.Call("rig.get_bandwidth", &s)
	return s, err
}

func (r Rig) SetBandwidth(bw string) error { return r.c.Call("rig.set_bandwidth", nil, bw) }

// Bandwidths returns the list of bandwidth names selectable on the rig.
func (r Rig) Bandwidths() ([]string, error) {
	var bws []string
	err := r.c.Call("rig.get_bandwidths", &bws)
	return bws, err
}

func (r Rig) SetBandwidths(bws []string) error { return r.c.Call("rig.set_bandwidths", nil, bws) }

// TakeControl switches rig control to XML-RPC.
func (r Rig) TakeControl() error { return r.c.Call("rig.take_control", nil) }

// ReleaseControl switches rig control back to the previous setting.
func (r Rig) ReleaseControl() error { return r.c.Call("rig.release_control", nil) }
