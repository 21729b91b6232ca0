package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigWritesFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, err := LoadConfig(path, DefaultConfig)
	if err != nil {
		t.Fatalf("LoadConfig failed: %s", err)
	}
	if config.Addr != DefaultConfig.Addr {
		t.Errorf("Expected %s, got %s", DefaultConfig.Addr, config.Addr)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config file to be written: %s", err)
	}
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := WriteConfig(Config{Locator: "JP20qh"}, path); err != nil {
		t.Fatalf("WriteConfig failed: %s", err)
	}

	config, err := LoadConfig(path, DefaultConfig)
	if err != nil {
		t.Fatalf("LoadConfig failed: %s", err)
	}
	if config.Locator != "JP20qh" {
		t.Errorf("Expected JP20qh, got %s", config.Locator)
	}
	if config.Addr != DefaultConfig.Addr {
		t.Errorf("Expected %s, got %s", DefaultConfig.Addr, config.Addr)
	}
	if config.Timeout != DefaultConfig.Timeout {
		t.Errorf("Expected %s, got %s", DefaultConfig.Timeout, config.Timeout)
	}
}

func TestConfigTimeout(t *testing.T) {
	tests := map[string]time.Duration{
		"5s":     5 * time.Second,
		"1m":     time.Minute,
		"":       5 * time.Second,
		"bogus":  5 * time.Second,
		"1500ms": 1500 * time.Millisecond,
	}
	for in, expect := range tests {
		if got := (Config{Timeout: in}).timeout(); got != expect {
			t.Errorf("%q: Expected %s, got %s", in, expect, got)
		}
	}
}

func TestFindCommand(t *testing.T) {
	cmd, pre, post, err := findCommand([]string{"--addr", "localhost:7362", "freq", "14074.0"})
	if err != nil {
		t.Fatalf("findCommand failed: %s", err)
	}
	if cmd.Str != "freq" {
		t.Errorf("Expected freq, got %s", cmd.Str)
	}
	if len(pre) != 2 || len(post) != 1 {
		t.Errorf("Unexpected argument split: %v | %v", pre, post)
	}

	if _, _, _, err := findCommand([]string{"bogus"}); err == nil {
		t.Errorf("Expected error for unknown command")
	}
}
