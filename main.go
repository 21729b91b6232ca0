// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// Main controls the main application window: TRX state, dial frequency,
// squelch, AFC and the RSID/TXID/lock toggles (the main.* methods).
type Main struct{ c *Client }

// Main returns the main window controls.
func (c *Client) Main() Main { return Main{c} }

// Frequency returns the dial frequency.
func (m Main) Frequency() (Frequency, error) {
	var f float64
	err := m.c.Call("main.get_frequency", &f)
	return Frequency(f), err
}

// SetFrequency sets the dial frequency and returns the old value.
func (m Main) SetFrequency(f Frequency) (Frequency, error) {
	var old float64
	err := m.c.Call("main.set_frequency", &old, float64(f))
	return Frequency(old), err
}

// IncFrequency increments the dial frequency by df and returns the new value.
func (m Main) IncFrequency(df Frequency) (Frequency, error) {
	var f float64
	err := m.c.Call("main.inc_frequency", &f, float64(df))
	return Frequency(f), err
}

func (m Main) AFC() (bool, error) {
	var b bool
	err := m.c.Call("main.get_afc", &b)
	return b, err
}

// SetAFC enables or disables AFC and returns the old state.
func (m Main) SetAFC(on bool) (bool, error) {
	var old bool
	err := m.c.Call("main.set_afc", &old, on)
	return old, err
}

// ToggleAFC toggles AFC and returns the new state.
func (m Main) ToggleAFC() (bool, error) {
	var b bool
	err := m.c.Call("main.toggle_afc", &b)
	return b, err
}

func (m Main) Squelch() (bool, error) {
	var b bool
	err := m.c.Call("main.get_squelch", &b)
	return b, err
}

// SetSquelch enables or disables the squelch and returns the old state.
func (m Main) SetSquelch(on bool) (bool, error) {
	var old bool
	err := m.c.Call("main.set_squelch", &old, on)
	return old, err
}

// ToggleSquelch toggles the squelch and returns the new state.
func (m Main) ToggleSquelch() (bool, error) {
	var b bool
	err := m.c.Call("main.toggle_squelch", &b)
	return b, err
}

// SquelchLevel returns the squelch level.
func (m Main) SquelchLevel() (float64, error) {
	var level float64
	err := m.c.Call("main.get_squelch_level", &level)
	return level, err
}

// SetSquelchLevel sets the squelch level and returns the old level.
func (m Main) SetSquelchLevel(level float64) (float64, error) {
	var old float64
	err := m.c.Call("main.set_squelch_level", &old, level)
	return old, err
}

func (m Main) Reverse() (bool, error) {
	var b bool
	err := m.c.Call("main.get_reverse", &b)
	return b, err
}

// SetReverse sets the reverse sideband state and returns the old state.
func (m Main) SetReverse(on bool) (bool, error) {
	var old bool
	err := m.c.Call("main.set_reverse", &old, on)
	return old, err
}

// ToggleReverse toggles the reverse sideband state and returns the new state.
func (m Main) ToggleReverse() (bool, error) {
	var b bool
	err := m.c.Call("main.toggle_reverse", &b)
	return b, err
}

// Lock reports whether the transmit frequency is locked.
func (m Main) Lock() (bool, error) {
	var b bool
	err := m.c.Call("main.get_lock", &b)
	return b, err
}

// SetLock locks or unlocks the transmit frequency and returns the old state.
func (m Main) SetLock(on bool) (bool, error) {
	var old bool
	err := m.c.Call("main.set_lock", &old, on)
	return old, err
}

// ToggleLock toggles the transmit frequency lock and returns the new state.
func (m Main) ToggleLock() (bool, error) {
	var b bool
	err := m.c.Call("main.toggle_lock", &b)
	return b, err
}

// TXID reports whether a RSID is transmitted at the start of transmissions.
func (m Main) TXID() (bool, error) {
	var b bool
	err := m.c.Call("main.get_txid", &b)
	return b, err
}

func (m Main) SetTXID(on bool) (bool, error) {
	var old bool
	err := m.c.Call("main.set_txid", &old, on)
	return old, err
}

func (m Main) ToggleTXID() (bool, error) {
	var b bool
	err := m.c.Call("main.toggle_txid", &b)
	return b, err
}

// RSID reports whether RSID reception is enabled.
func (m Main) RSID() (bool, error) {
	var b bool
	err := m.c.Call("main.get_rsid", &b)
	return b, err
}

func (m Main) SetRSID(on bool) (bool, error) {
	var old bool
	err := m.c.Call("main.set_rsid", &old, on)
	return old, err
}

func (m Main) ToggleRSID() (bool, error) {
	var b bool
	err := m.c.Call("main.toggle_rsid", &b)
	return b, err
}

// TRXStatus returns the transceiver status: "rx", "tx" or "tune".
func (m Main) TRXStatus() (string, error) {
	var s string
	err := m.c.Call("main.get_trx_status", &s)
	return s, err
}

// TRXState returns the transceiver state: "RX" or "TX".
func (m Main) TRXState() (string, error) {
	var s string
	err := m.c.Call("main.get_trx_state", &s)
	return s, err
}

// Rx puts the modem in receive mode.
func (m Main) Rx() error { return m.c.Call("main.rx", nil) }

// Tx puts the modem in transmit mode. Whatever is in the transmit buffer
// (see Text.AddTx) is sent.
func (m Main) Tx() error { return m.c.Call("main.tx", nil) }

// Tune puts the modem in tune mode (steady carrier).
func (m Main) Tune() error { return m.c.Call("main.tune", nil) }

// Abort aborts a transmit or tune in progress.
func (m Main) Abort() error { return m.c.Call("main.abort", nil) }

// WFSideband returns the waterfall sideband, "USB" or "LSB".
func (m Main) WFSideband() (string, error) {
	var s string
	err := m.c.Call("main.get_wf_sideband", &s)
	return s, err
}

func (m Main) SetWFSideband(sideband string) error {
	return m.c.Call("main.set_wf_sideband", nil, sideband)
}

// RunMacro executes macro number n.
func (m Main) RunMacro(n int) error { return m.c.Call("main.run_macro", nil, n) }

// MaxMacroID returns the highest macro number available.
func (m Main) MaxMacroID() (int, error) {
	var n int
	err := m.c.Call("main.get_max_macro_id", &n)
	return n, err
}
