// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/pd0mz/go-maidenhead"
	"github.com/spf13/pflag"

	"github.com/km4yri/fldigi"
)

func qsoHandle(_ context.Context, args []string) {
	var clear bool
	var assign []string
	set := pflag.NewFlagSet("qso", pflag.ExitOnError)
	set.BoolVarP(&clear, "clear", "c", false, "Clear the log fields.")
	set.StringArrayVarP(&assign, "set", "s", nil, "Set a log field (field=value).")
	set.Parse(args)

	c := connect()
	defer c.Close()
	l := c.Log()

	if clear {
		if err := l.Clear(); err != nil {
			log.Fatalf("Unable to clear log fields: %s", err)
		}
		return
	}

	if len(assign) > 0 {
		setLogFields(l, assign)
		return
	}

	fields := []struct {
		name string
		get  func() (string, error)
	}{
		{"call", l.Call},
		{"name", l.Name},
		{"qth", l.QTH},
		{"locator", l.Locator},
		{"rst in", l.RSTIn},
		{"rst out", l.RSTOut},
		{"exchange", l.Exchange},
		{"band", l.Band},
		{"frequency", l.Frequency},
		{"time on", l.TimeOn},
		{"time off", l.TimeOff},
	}

	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		v, err := f.get()
		if err != nil {
			log.Fatalf("Unable to get %s: %s", f.name, err)
		}
		if v == "" {
			v = "-"
		}
		rows = append(rows, []string{f.name, v})
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"field", "value"})
	t.SetAlign("left")
	fmt.Println(t.Render("simple"))

	printPath(c)
}

func setLogFields(l fldigi.Log, assign []string) {
	setters := map[string]func(string) error{
		"call":     l.SetCall,
		"name":     l.SetName,
		"qth":      l.SetQTH,
		"locator":  l.SetLocator,
		"rst_in":   l.SetRSTIn,
		"rst_out":  l.SetRSTOut,
		"serial":   l.SetSerialNumber,
		"exchange": l.SetExchange,
	}

	for _, kv := range assign {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Fatalf("Invalid field assignment %q, expected field=value", kv)
		}
		setter, ok := setters[field]
		if !ok {
			log.Fatalf("Unknown or read-only field %q", field)
		}
		if err := setter(value); err != nil {
			log.Fatalf("Unable to set %s: %s", field, err)
		}
	}
}

// printPath prints distance and bearing from the configured locator to the
// logged station's locator, when both are known.
func printPath(c *fldigi.Client) {
	if config.Locator == "" {
		return
	}
	me, err := maidenhead.ParseLocator(config.Locator)
	if err != nil {
		log.Printf("Invalid locator %q in config: %s", config.Locator, err)
		return
	}

	locator, err := c.Log().Locator()
	if err != nil || locator == "" {
		return
	}
	them, err := maidenhead.ParseLocator(locator)
	if err != nil {
		return
	}

	fmt.Printf("path: %.0f km at %.0f°\n", me.Distance(them), me.Bearing(them))
}
