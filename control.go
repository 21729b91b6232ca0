// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

// High-level convenience API. These methods cover the everyday operations
// without reaching into the namespaces, and paper over the rig/main split:
// when no rig control is active the rig.* methods fault, and the accessors
// below fall back to the main.* equivalents.

// Rx switches to receive.
func (c *Client) Rx() error { return c.Main().Rx() }

// Tx switches to transmit, sending the contents of the transmit buffer.
func (c *Client) Tx() error { return c.Main().Tx() }

// Tune switches to tune (steady carrier).
func (c *Client) Tune() error { return c.Main().Tune() }

// Abort aborts a transmit or tune in progress.
func (c *Client) Abort() error { return c.Main().Abort() }

// TRXState returns the transceiver state, "RX" or "TX".
func (c *Client) TRXState() (string, error) { return c.Main().TRXState() }

// AddTx appends text to the transmit buffer.
func (c *Client) AddTx(text string) error { return c.Text().AddTx(text) }

// ClearRx clears the receive buffer.
func (c *Client) ClearRx() error { return c.Text().ClearRx() }

// ClearTx clears the transmit buffer.
func (c *Client) ClearTx() error { return c.Text().ClearTx() }

// ReadRx returns the full contents of the receive buffer.
func (c *Client) ReadRx() (string, error) {
	t := c.Text()
	n, err := t.RxLength()
	if err != nil || n == 0 {
		return "", err
	}
	b, err := t.Rx(0, n)
	return string(b), err
}

// Frequency returns the rig frequency, or the dial frequency when no rig
// control is active.
func (c *Client) Frequency() (Frequency, error) {
	f, err := c.Rig().Frequency()
	if err != nil && IsFault(err) {
		return c.Main().Frequency()
	}
	return f, err
}

// SetFrequency sets the rig frequency (falling back to the dial frequency)
// and returns the old value.
func (c *Client) SetFrequency(f Frequency) (Frequency, error) {
	old, err := c.Rig().SetFrequency(f)
	if err != nil && IsFault(err) {
		return c.Main().SetFrequency(f)
	}
	return old, err
}

// Mode returns the name of the active modem (e.g. "BPSK31").
//
// Note that this is the digital modem, not the rig's sideband setting;
// use Rig().Mode for the latter.
func (c *Client) Mode() (string, error) { return c.Modem().Name() }

// SetMode selects the modem with the given name.
func (c *Client) SetMode(name string) error {
	_, err := c.Modem().SetByName(name)
	return err
}

// Bandwidth returns the modem bandwidth in Hz.
func (c *Client) Bandwidth() (int, error) { return c.Modem().Bandwidth() }

// SetBandwidth sets the modem bandwidth in Hz.
func (c *Client) SetBandwidth(hz int) error {
	_, err := c.Modem().SetBandwidth(hz)
	return err
}

// SquelchLevel returns the squelch level.
func (c *Client) SquelchLevel() (float64, error) { return c.Main().SquelchLevel() }

// SetSquelchLevel sets the squelch level.
func (c *Client) SetSquelchLevel(level float64) error {
	_, err := c.Main().SetSquelchLevel(level)
	return err
}

// SignalQuality returns the modem signal quality in the range [0, 100].
func (c *Client) SignalQuality() (float64, error) { return c.Modem().Quality() }
