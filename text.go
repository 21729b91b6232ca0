// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// Text accesses the receive and transmit text widgets (the text.* methods).
type Text struct{ c *Client }

// Text returns the text widget controls.
func (c *Client) Text() Text { return Text{c} }

// RxLength returns the number of characters in the receive widget.
func (t Text) RxLength() (int, error) {
	var n int
	err := t.c.Call("text.get_rx_length", &n)
	return n, err
}

// Rx returns the characters in the range [start, end) of the receive widget.
func (t Text) Rx(start, end int) ([]byte, error) {
	var b []byte
	err := t.c.Call("text.get_rx", &b, start, end)
	return b, err
}

// ClearRx clears the receive widget.
func (t Text) ClearRx() error { return t.c.Call("text.clear_rx", nil) }

// AddTx appends text to the transmit widget.
func (t Text) AddTx(s string) error { return t.c.Call("text.add_tx", nil, s) }

// AddTxBytes appends bytes to the transmit widget.
func (t Text) AddTxBytes(b []byte) error { return t.c.Call("text.add_tx_bytes", nil, b) }

// ClearTx clears the transmit widget.
func (t Text) ClearTx() error { return t.c.Call("text.clear_tx", nil) }

// RxData returns all characters received since the last call (rx.get_data).
func (c *Client) RxData() ([]byte, error) {
	var b []byte
	err := c.Call("rx.get_data", &b)
	return b, err
}

// TxData returns all characters transmitted since the last call
// (tx.get_data).
func (c *Client) TxData() ([]byte, error) {
	var b []byte
	err := c.Call("tx.get_data", &b)
	return b, err
}

// RxTxData returns all characters received or transmitted since the last
// call (rxtx.get_data).
func (c *Client) RxTxData() ([]byte, error) {
	var b []byte
	err := c.Call("rxtx.get_data", &b)
	return b, err
}
