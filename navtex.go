// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// Navtex sends and receives NAVTEX messages (the navtex.* methods).
type Navtex struct{ c *Client }

// Navtex returns the NAVTEX controls.
func (c *Client) Navtex() Navtex { return Navtex{c} }

// Message waits up to timeout seconds for the next NAVTEX message and
// returns it, or an empty string on timeout.
func (n Navtex) Message(timeout int) (string, error) {
	var s string
	err := n.c.Call("navtex.get_message", &s, timeout)
	return s, err
}

// SendMessage transmits a NAVTEX message. The returned string is the
// server's status text.
func (n Navtex) SendMessage(msg string) (string, error) {
	var s string
	err := n.c.Call("navtex.send_message", &s, msg)
	return s, err
}
