// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

// fldigictl is a command line remote control for the fldigi digital-mode
// application, talking to its XML-RPC interface.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/km4yri/fldigi"
	"github.com/km4yri/fldigi/internal/directories"
)

var commands = []Command{
	{
		Str:        "status",
		Desc:       "Print transceiver and modem status.",
		HandleFunc: statusHandle,
	},
	{
		Str:        "freq",
		Desc:       "Read or set the dial frequency.",
		Usage:      "[kHz]",
		Example:    "freq 14074.0",
		HandleFunc: freqHandle,
	},
	{
		Str:        "mode",
		Desc:       "Read or set the active modem.",
		Usage:      "[name]",
		Example:    "mode BPSK31",
		HandleFunc: modeHandle,
	},
	{
		Str:        "modems",
		Usage:      "[search term]",
		Desc:       "Print/search the list of available modems.",
		HandleFunc: modemsHandle,
	},
	{
		Str:   "send",
		Desc:  "Append text to the transmit buffer.",
		Usage: "[options] text ...",
		Options: map[string]string{
			"--transmit, -t": "Switch to TX after appending.",
		},
		HandleFunc: sendHandle,
	},
	{
		Str:   "read",
		Desc:  "Print the receive buffer.",
		Usage: "[options]",
		Options: map[string]string{
			"--clear, -c": "Clear the receive buffer after printing.",
		},
		HandleFunc: readHandle,
	},
	{
		Str:        "watch",
		Desc:       "Stream received text and TRX status changes.",
		HandleFunc: watchHandle,
		LongLived:  true,
	},
	{
		Str:   "qso",
		Desc:  "Print or clear the QSO log fields.",
		Usage: "[options]",
		Options: map[string]string{
			"--clear, -c": "Clear the log fields.",
			"--set, -s":   "Set a log field (field=value). May be repeated.",
		},
		Example:    "qso --set call=W1AW --set rst_out=599",
		HandleFunc: qsoHandle,
	},
	{
		Str:        "interactive",
		Aliases:    []string{"i"},
		Desc:       "Run interactive mode.",
		HandleFunc: interactiveHandle,
		LongLived:  true,
	},
	{
		Str:        "configure",
		Desc:       "Open configuration file for editing.",
		HandleFunc: configureHandle,
	},
	{
		Str:        "env",
		Desc:       "List environment variables.",
		HandleFunc: envHandle,
	},
	{
		Str:   "version",
		Desc:  "Print the application version.",
		Usage: "[options]",
		Options: map[string]string{
			"--check, -c": "Check server version compatibility.",
		},
		HandleFunc: versionHandle,
	},
	{
		Str:  "help",
		Desc: "Print detailed help for a given command.",
		// Avoid initialization loop by invoking helpHandle in main
	},
}

var (
	config Config

	fOptions struct {
		Addr       string
		ConfigPath string
		Timeout    time.Duration
	}
)

func optionsSet() *pflag.FlagSet {
	set := pflag.NewFlagSet("options", pflag.ExitOnError)

	defaultConfigPath := filepath.Join(directories.ConfigDir(), "config.json")
	set.StringVarP(&fOptions.Addr, "addr", "a", "", "Address of fldigi's XML-RPC server (host:port).")
	set.StringVar(&fOptions.ConfigPath, "config", defaultConfigPath, "Path to config file.")
	set.DurationVar(&fOptions.Timeout, "timeout", 0, "Timeout of each XML-RPC call.")

	return set
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s is a remote control for the fldigi XML-RPC interface.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [options] command [arguments]\n", os.Args[0])

		fmt.Fprintln(os.Stderr, "\nCommands:")
		for _, cmd := range commands {
			fmt.Fprintf(os.Stderr, "  %-15s %s\n", cmd.Str, cmd.Desc)
		}

		fmt.Fprintln(os.Stderr, "\nOptions:")
		optionsSet().PrintDefaults()

		fmt.Fprint(os.Stderr, "\n")
	}

	cmd, args := parseFlags(os.Args[1:])

	var err error
	config, err = LoadConfig(fOptions.ConfigPath, DefaultConfig)
	if err != nil {
		log.Fatalf("Unable to load/write config: %s", err)
	}

	if fOptions.Addr == "" {
		fOptions.Addr = config.Addr
	}
	if fOptions.Timeout == 0 {
		fOptions.Timeout = config.timeout()
	}

	ctx := context.Background()
	if cmd.LongLived {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	switch cmd.Str {
	case "help":
		helpHandle(args)
	default:
		cmd.HandleFunc(ctx, args)
	}
}

// connect dials the configured fldigi server, exiting on invalid address.
func connect() *fldigi.Client {
	c, err := fldigi.DialTimeout(fOptions.Addr, fOptions.Timeout)
	if err != nil {
		log.Fatalf("Unable to dial %s: %s", fOptions.Addr, err)
	}
	return c
}

func helpHandle(args []string) {
	arg := args[0]

	var cmd *Command
	for i, c := range commands {
		if c.Str == arg {
			cmd = &commands[i]
			break
		}
	}
	if arg == "" || cmd == nil {
		pflag.Usage()
		return
	}
	cmd.PrintUsage()
}
