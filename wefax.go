// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// Wefax controls weather-fax reception (the wefax.* methods). The wefax
// methods all return a status string; an empty string means success.
type Wefax struct{ c *Client }

// Wefax returns the weather-fax controls.
func (c *Client) Wefax() Wefax { return Wefax{c} }

func (w Wefax) status(method string, args ...interface{}) (string, error) {
	var s string
	err := w.c.Call(method, &s, args...)
	return s, err
}

// StateString returns the current reception state as text.
func (w Wefax) StateString() (string, error) { return w.status("wefax.state_string") }

// SkipAPT skips the APT detection phase.
func (w Wefax) SkipAPT() (string, error) { return w.status("wefax.skip_apt") }

// SkipPhasing skips the phasing detection phase.
func (w Wefax) SkipPhasing() (string, error) { return w.status("wefax.skip_phasing") }

// AbortTx cancels the image transmission in progress.
func (w Wefax) AbortTx() (string, error) { return w.status("wefax.set_tx_abort_flag") }

// EndReception ends the image reception in progress.
func (w Wefax) EndReception() (string, error) { return w.status("wefax.end_reception") }

// StartManualReception starts reception in manual mode.
func (w Wefax) StartManualReception() (string, error) {
	return w.status("wefax.start_manual_reception")
}

// SetADIFLog enables or disables logging of received images to the ADIF log.
func (w Wefax) SetADIFLog(enable bool) (string, error) {
	return w.status("wefax.set_adif_log", enable)
}

// SetMaxLines sets the maximum number of lines per received image.
func (w Wefax) SetMaxLines(n int) (string, error) {
	return w.status("wefax.set_max_lines", n)
}

// ReceivedFile waits up to timeout seconds for a received image and returns
// its file name.
func (w Wefax) ReceivedFile(timeout int) (string, error) {
	return w.status("wefax.get_received_file", timeout)
}
