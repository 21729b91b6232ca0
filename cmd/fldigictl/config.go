// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/exec"
	"path"
	"time"

	"github.com/km4yri/fldigi"
)

type Config struct {
	// Address of fldigi's XML-RPC server (host:port).
	Addr string `json:"addr"`

	// Timeout of each XML-RPC call (duration string, e.g. "5s").
	Timeout string `json:"timeout"`

	// Maidenhead locator of this station (e.g. JP20qh).
	//
	// Used by the qso command to calculate distance and bearing to the
	// logged station.
	Locator string `json:"locator"`

	// Minimum fldigi version expected by 'version --check'.
	MinServerVersion string `json:"min_server_version"`
}

var DefaultConfig = Config{
	Addr:             fldigi.DefaultAddr,
	Timeout:          "5s",
	MinServerVersion: "4.0.0",
}

func (c Config) timeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fldigi.DefaultTimeout
	}
	return d
}

func LoadConfig(cfgPath string, fallback Config) (config Config, err error) {
	config, err = ReadConfig(cfgPath)
	if os.IsNotExist(err) {
		return fallback, WriteConfig(fallback, cfgPath)
	} else if err != nil {
		return config, err
	}

	if config.Addr == "" {
		config.Addr = fallback.Addr
	}
	if config.Timeout == "" {
		config.Timeout = fallback.Timeout
	}
	if config.MinServerVersion == "" {
		config.MinServerVersion = fallback.MinServerVersion
	}

	return config, nil
}

func ReadConfig(path string) (config Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = json.Unmarshal(data, &config)
	return
}

func WriteConfig(config Config, filePath string) error {
	b, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	// Add trailing new-line
	b = append(b, '\n')

	// Ensure path dir is available
	os.Mkdir(path.Dir(filePath), os.ModePerm|os.ModeDir)

	return os.WriteFile(filePath, b, 0o600)
}

func configureHandle(_ context.Context, _ []string) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, fOptions.ConfigPath)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatalf("Unable to start editor: %s", err)
	}
}
