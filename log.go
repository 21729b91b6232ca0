// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// Log accesses the QSO logging fields of the main window (the log.*
// methods). All fields are strings, as on the wire.
type Log struct{ c *Client }

// Log returns the QSO log field accessors.
func (c *Client) Log() Log { return Log{c} }

func (l Log) get(method string) (string, error) {
	var s string
	err := l.c.Call(method, &s)
	return s, err
}

// Call returns the call field.
func (l Log) Call() (string, error)    { return l.get("log.get_call") }
func (l Log) SetCall(v string) error   { return l.c.Call("log.set_call", nil, v) }
func (l Log) Name() (string, error)    { return l.get("log.get_name") }
func (l Log) SetName(v string) error   { return l.c.Call("log.set_name", nil, v) }
func (l Log) QTH() (string, error)     { return l.get("log.get_qth") }
func (l Log) SetQTH(v string) error    { return l.c.Call("log.set_qth", nil, v) }
func (l Log) Locator() (string, error) { return l.get("log.get_locator") }
func (l Log) SetLocator(v string) error {
	return l.c.Call("log.set_locator", nil, v)
}

func (l Log) RSTIn() (string, error)   { return l.get("log.get_rst_in") }
func (l Log) SetRSTIn(v string) error  { return l.c.Call("log.set_rst_in", nil, v) }
func (l Log) RSTOut() (string, error)  { return l.get("log.get_rst_out") }
func (l Log) SetRSTOut(v string) error { return l.c.Call("log.set_rst_out", nil, v) }

func (l Log) SerialNumber() (string, error) { return l.get("log.get_serial_number") }
func (l Log) SetSerialNumber(v string) error {
	return l.c.Call("log.set_serial_number", nil, v)
}
func (l Log) SerialNumberSent() (string, error) { return l.get("log.get_serial_number_sent") }

func (l Log) Exchange() (string, error)  { return l.get("log.get_exchange") }
func (l Log) SetExchange(v string) error { return l.c.Call("log.set_exchange", nil, v) }

// Frequency returns the logged frequency field (a string, as displayed).
func (l Log) Frequency() (string, error) { return l.get("log.get_frequency") }
func (l Log) TimeOn() (string, error)    { return l.get("log.get_time_on") }
func (l Log) TimeOff() (string, error)   { return l.get("log.get_time_off") }

// Azimuth returns the AZ field.
func (l Log) Azimuth() (string, error)  { return l.get("log.get_az") }
func (l Log) Band() (string, error)     { return l.get("log.get_band") }
func (l Log) State() (string, error)    { return l.get("log.get_state") }
func (l Log) Province() (string, error) { return l.get("log.get_province") }
func (l Log) Country() (string, error)  { return l.get("log.get_country") }
func (l Log) Notes() (string, error)    { return l.get("log.get_notes") }

// Clear clears all log fields.
func (l Log) Clear() error { return l.c.Call("log.clear", nil) }
