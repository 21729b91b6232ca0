// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

// fldigimock serves a stand-in for fldigi's XML-RPC interface, for
// developing and testing clients without a running fldigi.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v2"

	"github.com/km4yri/fldigi"
	"github.com/km4yri/fldigi/internal/mock"
)

type config struct {
	// Listen address of the XML-RPC server.
	Addr string `yaml:"addr"`

	// Log file path. Logs go to stderr when empty.
	LogFile string `yaml:"logFile"`

	// Emulate an active rig control connection.
	RigControl bool `yaml:"rigControl"`

	// Name reported for the controlled rig.
	RigName string `yaml:"rigName"`

	// Initial frequency in Hz.
	Frequency float64 `yaml:"frequency"`

	// Available modem names.
	Modems []string `yaml:"modems"`

	// Reported fldigi version.
	Version string `yaml:"version"`
}

func loadConfig(path string) (cfg config, err error) {
	cfg.Addr = fldigi.DefaultAddr
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Addr == "" {
		cfg.Addr = fldigi.DefaultAddr
	}
	return cfg, nil
}

func main() {
	var configPath string
	pflag.StringVar(&configPath, "config", "", "Path to yaml config file.")
	pflag.Parse()

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: mock.NewServer(mock.Options{
			Version:    cfg.Version,
			RigControl: cfg.RigControl,
			RigName:    cfg.RigName,
			Frequency:  cfg.Frequency,
			Modems:     cfg.Modems,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Mock fldigi XML-RPC server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
