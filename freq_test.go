// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

import "testing"

func TestFrequencyString(t *testing.T) {
	tests := map[Frequency]string{
		14074000: "14.074.00 MHz",
		7070000:  "7.070.00 MHz",
		5366500:  "5.366.50 MHz",
		144800000: "144.800.00 MHz",
	}

	for input, expected := range tests {
		if got := input.String(); got != expected {
			t.Errorf("Expected %s, got %s", expected, got)
		}
	}
}

func TestFrequencyConversions(t *testing.T) {
	f := Frequency(14074000)
	if got := f.KHz(); got != 14074 {
		t.Errorf("Expected 14074 kHz, got %f", got)
	}
	if got := f.MHz(); got != 14.074 {
		t.Errorf("Expected 14.074 MHz, got %f", got)
	}
}
