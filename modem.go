// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// Modem selects and configures the active digital modem (the modem.*
// methods).
type Modem struct{ c *Client }

// Modem returns the modem controls.
func (c *Client) Modem() Modem { return Modem{c} }

// Name returns the name of the active modem (e.g. "BPSK31").
func (m Modem) Name() (string, error) {
	var s string
	err := m.c.Call("modem.get_name", &s)
	return s, err
}

// Names returns the names of all available modems.
func (m Modem) Names() ([]string, error) {
	var names []string
	err := m.c.Call("modem.get_names", &names)
	return names, err
}

// ID returns the numeric id of the active modem.
func (m Modem) ID() (int, error) {
	var id int
	err := m.c.Call("modem.get_id", &id)
	return id, err
}

// MaxID returns the highest modem id available.
func (m Modem) MaxID() (int, error) {
	var id int
	err := m.c.Call("modem.get_max_id", &id)
	return id, err
}

// SetByName selects the modem with the given name and returns the name of
// the previously active modem.
func (m Modem) SetByName(name string) (string, error) {
	var old string
	err := m.c.Call("modem.set_by_name", &old, name)
	return old, err
}

// SetByID selects the modem with the given id and returns the previous id.
func (m Modem) SetByID(id int) (int, error) {
	var old int
	err := m.c.Call("modem.set_by_id", &old, id)
	return old, err
}

// Carrier returns the modem carrier frequency (audio Hz).
func (m Modem) Carrier() (int, error) {
	var hz int
	err := m.c.Call("modem.get_carrier", &hz)
	return hz, err
}

// SetCarrier sets the modem carrier frequency and returns the old value.
func (m Modem) SetCarrier(hz int) (int, error) {
	var old int
	err := m.c.Call("modem.set_carrier", &old, hz)
	return old, err
}

// IncCarrier increments the carrier by hz and returns the new value.
func (m Modem) IncCarrier(hz int) (int, error) {
	var n int
	err := m.c.Call("modem.inc_carrier", &n, hz)
	return n, err
}

func (m Modem) AFCSearchRange() (int, error) {
	var hz int
	err := m.c.Call("modem.get_afc_search_range", &hz)
	return hz, err
}

func (m Modem) SetAFCSearchRange(hz int) (int, error) {
	var old int
	err := m.c.Call("modem.set_afc_search_range", &old, hz)
	return old, err
}

func (m Modem) IncAFCSearchRange(hz int) (int, error) {
	var n int
	err := m.c.Call("modem.inc_afc_search_range", &n, hz)
	return n, err
}

// Bandwidth returns the modem bandwidth in Hz.
func (m Modem) Bandwidth() (int, error) {
	var hz int
	err := m.c.Call("modem.get_bandwidth", &hz)
	return hz, err
}

// SetBandwidth sets the modem bandwidth and returns the old value.
func (m Modem) SetBandwidth(hz int) (int, error) {
	var old int
	err := m.c.Call("modem.set_bandwidth", &old, hz)
	return old, err
}

func (m Modem) IncBandwidth(hz int) (int, error) {
	var n int
	err := m.c.Call("modem.inc_bandwidth", &n, hz)
	return n, err
}

// Quality returns the modem signal quality in the range [0, 100].
func (m Modem) Quality() (float64, error) {
	var q float64
	err := m.c.Call("modem.get_quality", &q)
	return q, err
}

// SearchUp searches upward in frequency.
func (m Modem) SearchUp() error { return m.c.Call("modem.search_up", nil) }

// SearchDown searches downward in frequency.
func (m Modem) SearchDown() error { return m.c.Call("modem.search_down", nil) }

// Olivia holds the Olivia-specific modem settings.
type Olivia struct{ c *Client }

// Olivia returns the Olivia-specific modem controls.
func (m Modem) Olivia() Olivia { return Olivia{m.c} }

func (o Olivia) Bandwidth() (int, error) {
	var hz int
	err := o.c.Call("modem.olivia.get_bandwidth", &hz)
	return hz, err
}

func (o Olivia) SetBandwidth(hz int) error {
	return o.c.Call("modem.olivia.set_bandwidth", nil, hz)
}

func (o Olivia) Tones() (int, error) {
	var n int
	err := o.c.Call("modem.olivia.get_tones", &n)
	return n, err
}

func (o Olivia) SetTones(n int) error { return o.c.Call("modem.olivia.set_tones", nil, n) }
