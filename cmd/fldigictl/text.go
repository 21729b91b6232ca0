// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func sendHandle(_ context.Context, args []string) {
	var transmit bool
	set := pflag.NewFlagSet("send", pflag.ExitOnError)
	set.BoolVarP(&transmit, "transmit", "t", false, "Switch to TX after appending.")
	set.Parse(args)

	text := strings.Join(set.Args(), " ")
	if strings.TrimSpace(text) == "" {
		log.Fatal("Missing text argument")
	}

	c := connect()
	defer c.Close()

	if err := c.AddTx(text); err != nil {
		log.Fatalf("Unable to add text: %s", err)
	}
	if !transmit {
		return
	}
	if err := c.Tx(); err != nil {
		log.Fatalf("Unable to switch to TX: %s", err)
	}
}

func readHandle(_ context.Context, args []string) {
	var clear bool
	set := pflag.NewFlagSet("read", pflag.ExitOnError)
	set.BoolVarP(&clear, "clear", "c", false, "Clear the receive buffer after printing.")
	set.Parse(args)

	c := connect()
	defer c.Close()

	text, err := c.ReadRx()
	if err != nil {
		log.Fatalf("Unable to read receive buffer: %s", err)
	}
	os.Stdout.WriteString(text)
	if len(text) > 0 && !strings.HasSuffix(text, "\n") {
		os.Stdout.WriteString("\n")
	}

	if !clear {
		return
	}
	if err := c.ClearRx(); err != nil {
		log.Fatalf("Unable to clear receive buffer: %s", err)
	}
}

// watchHandle streams received text and TRX status changes until
// interrupted. Two connections are used so the pollers don't share a
// client.
func watchHandle(ctx context.Context, _ []string) {
	text := connect()
	defer text.Close()
	status := connect()
	defer status.Close()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			data, err := text.RxData()
			if err != nil {
				return err
			}
			if len(data) > 0 {
				os.Stdout.Write(data)
			}

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(500 * time.Millisecond):
			}
		}
	})

	g.Go(func() error {
		var last string
		for {
			trx, err := status.Main().TRXStatus()
			if err != nil {
				return err
			}
			if trx != last {
				log.Printf("trx: %s", trx)
				last = trx
			}

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(2 * time.Second):
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
