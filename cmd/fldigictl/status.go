// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/km4yri/fldigi"
)

func statusHandle(_ context.Context, _ []string) {
	c := connect()
	defer c.Close()
	printStatus(c)
}

func printStatus(c *fldigi.Client) {
	trx, err := c.Main().TRXStatus()
	if err != nil {
		log.Fatalf("Unable to get status: %s", err)
	}

	freq, err := c.Frequency()
	if err != nil {
		log.Fatalf("Unable to get frequency: %s", err)
	}

	mode, err := c.Mode()
	if err != nil {
		log.Fatalf("Unable to get modem: %s", err)
	}

	bandwidth, err := c.Bandwidth()
	if err != nil {
		log.Fatalf("Unable to get bandwidth: %s", err)
	}

	quality, err := c.SignalQuality()
	if err != nil {
		log.Fatalf("Unable to get signal quality: %s", err)
	}

	squelch, err := c.SquelchLevel()
	if err != nil {
		log.Fatalf("Unable to get squelch level: %s", err)
	}

	fmt.Printf("trx:        %s\n", trx)
	fmt.Printf("frequency:  %s\n", freq)
	fmt.Printf("modem:      %s\n", mode)
	fmt.Printf("bandwidth:  %d Hz\n", bandwidth)
	fmt.Printf("quality:    %.0f\n", quality)
	fmt.Printf("squelch:    %.0f\n", squelch)
}
