// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// IO controls fldigi's ARQ and KISS data ports (the io.* methods).
type IO struct{ c *Client }

// IO returns the data port controls.
func (c *Client) IO() IO { return IO{c} }

// InUse returns the name of the data port in use ("ARQ" or "KISS").
func (i IO) InUse() (string, error) {
	var s string
	err := i.c.Call("io.in_use", &s)
	return s, err
}

// EnableKISS switches the data port to KISS.
func (i IO) EnableKISS() error { return i.c.Call("io.enable_kiss", nil) }

// EnableARQ switches the data port to ARQ.
func (i IO) EnableARQ() error { return i.c.Call("io.enable_arq", nil) }
