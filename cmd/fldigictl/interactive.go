// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/km4yri/fldigi"
)

func interactiveHandle(ctx context.Context, _ []string) {
	c := connect()
	defer c.Close()

	line := liner.NewLiner()
	defer line.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			str, err := line.Prompt(getPrompt(c))
			if err != nil {
				return
			}
			str = strings.TrimSpace(str)
			if str == "" {
				continue
			}
			line.AppendHistory(str)

			if str[0] == '#' {
				continue
			}

			if quit := execCmd(c, str); quit {
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
	case <-done:
	}
}

func execCmd(c *fldigi.Client, line string) (quit bool) {
	cmd, param := parseCommand(line)
	switch cmd {
	case "freq":
		if param == "" {
			freq, err := c.Frequency()
			if err != nil {
				log.Printf("Unable to get frequency: %s", err)
				return
			}
			fmt.Println(freq)
			return
		}
		if _, _, err := setFreq(c, param); err != nil {
			log.Printf("Unable to set frequency: %s", err)
		}
	case "mode":
		if param == "" {
			mode, err := c.Mode()
			if err != nil {
				log.Printf("Unable to get modem: %s", err)
				return
			}
			fmt.Println(mode)
			return
		}
		if err := c.SetMode(param); err != nil {
			log.Printf("Unable to set modem: %s", err)
		}
	case "send":
		if param == "" {
			printInteractiveUsage()
			return
		}
		if err := c.AddTx(param + "\n"); err != nil {
			log.Printf("Unable to add text: %s", err)
		}
	case "read":
		text, err := c.ReadRx()
		if err != nil {
			log.Printf("Unable to read receive buffer: %s", err)
			return
		}
		os.Stdout.WriteString(text)
		if len(text) > 0 && !strings.HasSuffix(text, "\n") {
			os.Stdout.WriteString("\n")
		}
	case "tx":
		if err := c.Tx(); err != nil {
			log.Printf("Unable to switch to TX: %s", err)
		}
	case "rx":
		if err := c.Rx(); err != nil {
			log.Printf("Unable to switch to RX: %s", err)
		}
	case "tune":
		if err := c.Tune(); err != nil {
			log.Printf("Unable to tune: %s", err)
		}
	case "abort":
		if err := c.Abort(); err != nil {
			log.Printf("Unable to abort: %s", err)
		}
	case "status":
		printStatus(c)
	case "help", "?":
		printInteractiveUsage()
	case "q", "quit", "exit":
		return true
	case "":
		return
	default:
		printInteractiveUsage()
	}
	return
}

func printInteractiveUsage() {
	cmds := []string{
		"freq   [kHz]    Read/set the dial frequency.",
		"mode   [name]   Read/set the active modem.",
		"send   <text>   Append text to the transmit buffer.",
		"read            Print the receive buffer.",
		"tx              Switch to transmit.",
		"rx              Switch to receive.",
		"tune            Transmit a steady carrier.",
		"abort           Abort transmit or tune.",
		"status          Print transceiver and modem status.",
		"quit            Exit interactive mode.",
	}
	fmt.Println("Commands: ")
	for _, cmd := range cmds {
		fmt.Printf(" %s\n", cmd)
	}
}

func getPrompt(c *fldigi.Client) string {
	mode, err := c.Mode()
	if err != nil {
		return "fldigi> "
	}
	return fmt.Sprintf("%s> ", mode)
}

func parseCommand(str string) (cmd, param string) {
	parts := strings.SplitN(str, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
