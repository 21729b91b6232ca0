// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/km4yri/fldigi"
)

func freqHandle(_ context.Context, args []string) {
	c := connect()
	defer c.Close()

	if args[0] == "" {
		freq, err := c.Frequency()
		if err != nil {
			log.Fatalf("Unable to get frequency: %s", err)
		}
		fmt.Printf("%.3f\n", freq.KHz())
		return
	}

	newFreq, oldFreq, err := setFreq(c, args[0])
	if err != nil {
		log.Fatalf("Unable to set frequency: %s", err)
	}
	fmt.Printf("%.3f (was %.3f)\n", newFreq.KHz(), oldFreq.KHz())
}

// setFreq sets the dial frequency given in kHz, returning the new and
// previous frequency.
func setFreq(c *fldigi.Client, freq string) (newFreq, oldFreq fldigi.Frequency, err error) {
	f, err := strconv.ParseFloat(freq, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid frequency format: %w", err)
	}

	newFreq = fldigi.Frequency(f * 1e3)
	oldFreq, err = c.SetFrequency(newFreq)
	return newFreq, oldFreq, err
}
