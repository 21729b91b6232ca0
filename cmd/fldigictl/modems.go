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
)

func modeHandle(_ context.Context, args []string) {
	c := connect()
	defer c.Close()

	if args[0] == "" {
		mode, err := c.Mode()
		if err != nil {
			log.Fatalf("Unable to get modem: %s", err)
		}
		fmt.Println(mode)
		return
	}

	old, err := c.Modem().SetByName(args[0])
	if err != nil {
		log.Fatalf("Unable to set modem: %s", err)
	}
	fmt.Printf("%s (was %s)\n", args[0], old)
}

func modemsHandle(_ context.Context, args []string) {
	term := strings.ToLower(args[0])

	c := connect()
	defer c.Close()

	names, err := c.Modem().Names()
	if err != nil {
		log.Fatalf("Unable to list modems: %s", err)
	}
	active, err := c.Modem().Name()
	if err != nil {
		log.Fatalf("Unable to get active modem: %s", err)
	}

	var rows [][]string
	for id, name := range names {
		if !strings.Contains(strings.ToLower(name), term) {
			continue
		}
		marker := " "
		if name == active {
			marker = "*"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", id), name, marker})
	}
	if len(rows) == 0 {
		fmt.Println("No modems matched.")
		return
	}

	t := gotabulate.Create(rows)
	t.SetHeaders([]string{"id", "modem", "active"})
	t.SetAlign("left")
	fmt.Println(t.Render("simple"))
}
