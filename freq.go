// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

import "fmt"

// Frequency represents a frequency in Hz.
//
// fldigi reports frequencies as doubles on the wire, but they are whole Hz
// in practice.
type Frequency int

func (f Frequency) String() string {
	m := f / 1e6
	k := (float64(f) - float64(m)*1e6) / 1e3

	return fmt.Sprintf("%d.%06.2f MHz", m, k)
}

// KHz returns f in kilohertz.
func (f Frequency) KHz() float64 { return float64(f) / 1e3 }

// MHz returns f in megahertz.
func (f Frequency) MHz() float64 { return float64(f) / 1e6 }
