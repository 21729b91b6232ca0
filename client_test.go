// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/km4yri/fldigi/internal/mock"
)

func testClient(t *testing.T, opts mock.Options) (*Client, *mock.Server) {
	t.Helper()
	m := mock.NewServer(opts)
	srv := httptest.NewServer(m)
	t.Cleanup(srv.Close)

	c, err := Dial(strings.TrimPrefix(srv.URL, "http://"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c, m
}

func TestDialValidation(t *testing.T) {
	invalid := []string{
		"localhost",       // missing port
		":7362",           // empty host
		"localhost:0",     // port out of range
		"localhost:99999", // port out of range
		"localhost:rpc",   // non-numeric port
	}
	for _, addr := range invalid {
		if _, err := Dial(addr); err == nil {
			t.Errorf("Expected error dialing %q", addr)
		}
	}

	// The zero value means DefaultAddr and no I/O happens until the
	// first call, so this must succeed even without a server.
	c, err := Dial("")
	if err != nil {
		t.Fatalf("Dial with empty addr: %v", err)
	}
	defer c.Close()
	if c.Addr() != DefaultAddr {
		t.Errorf("Expected %s, got %s", DefaultAddr, c.Addr())
	}
}

func TestServerInfo(t *testing.T) {
	c, _ := testClient(t, mock.Options{})

	if name, err := c.Name(); err != nil || name != "fldigi" {
		t.Errorf("Name() = %q, %v", name, err)
	}
	if version, err := c.Version(); err != nil || version != "4.2.05" {
		t.Errorf("Version() = %q, %v", version, err)
	}

	list, err := c.Methods()
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, m := range list {
		if m.Name == "main.rx" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected main.rx in method list (got %d methods)", len(list))
	}
}

func TestModeRoundTrip(t *testing.T) {
	c, _ := testClient(t, mock.Options{})

	if err := c.SetMode("CW"); err != nil {
		t.Fatal(err)
	}
	if mode, err := c.Mode(); err != nil || mode != "CW" {
		t.Errorf("Mode() = %q, %v", mode, err)
	}

	err := c.SetMode("NOSUCHMODEM")
	if err == nil {
		t.Fatal("Expected error setting unknown modem")
	}
	if !IsFault(err) {
		t.Errorf("Expected remote fault, got %v", err)
	}
}

func TestFrequencyWithoutRigControl(t *testing.T) {
	c, m := testClient(t, mock.Options{Frequency: 14070000})

	// rig.* faults, so the convenience accessors must fall back to main.*
	if _, err := c.Rig().Frequency(); !IsFault(err) {
		t.Fatalf("Expected rig fault, got %v", err)
	}

	old, err := c.SetFrequency(7070000)
	if err != nil {
		t.Fatal(err)
	}
	if old != 14070000 {
		t.Errorf("Expected old frequency 14.070.00 MHz, got %s", old)
	}
	if f, err := c.Frequency(); err != nil || f != 7070000 {
		t.Errorf("Frequency() = %s, %v", f, err)
	}
	if got := m.Frequency(); got != 7070000 {
		t.Errorf("Server frequency is %f", got)
	}
}

func TestFrequencyWithRigControl(t *testing.T) {
	c, m := testClient(t, mock.Options{RigControl: true})

	if _, err := c.SetFrequency(10136000); err != nil {
		t.Fatal(err)
	}
	if f, err := c.Rig().Frequency(); err != nil || f != 10136000 {
		t.Errorf("Rig().Frequency() = %s, %v", f, err)
	}
	if got := m.Frequency(); got != 10136000 {
		t.Errorf("Server frequency is %f", got)
	}
}

func TestTextBuffers(t *testing.T) {
	c, m := testClient(t, mock.Options{})

	m.SeedRx("CQ CQ DE KM4YRI")
	if text, err := c.ReadRx(); err != nil || text != "CQ CQ DE KM4YRI" {
		t.Errorf("ReadRx() = %q, %v", text, err)
	}
	if err := c.ClearRx(); err != nil {
		t.Fatal(err)
	}
	if text, err := c.ReadRx(); err != nil || text != "" {
		t.Errorf("ReadRx() after clear = %q, %v", text, err)
	}

	if err := c.AddTx("hello"); err != nil {
		t.Fatal(err)
	}
	if got := m.TxBuffer(); got != "hello" {
		t.Errorf("Server tx buffer is %q", got)
	}
	if err := c.ClearTx(); err != nil {
		t.Fatal(err)
	}
	if got := m.TxBuffer(); got != "" {
		t.Errorf("Server tx buffer after clear is %q", got)
	}
}

func TestRxDataDrains(t *testing.T) {
	c, m := testClient(t, mock.Options{})

	m.SeedRx("first")
	if b, err := c.RxData(); err != nil || string(b) != "first" {
		t.Errorf("RxData() = %q, %v", b, err)
	}
	if b, err := c.RxData(); err != nil || len(b) != 0 {
		t.Errorf("Second RxData() = %q, %v", b, err)
	}
}

func TestTRXControl(t *testing.T) {
	c, m := testClient(t, mock.Options{})

	if err := c.Tune(); err != nil {
		t.Fatal(err)
	}
	if status, err := c.Main().TRXStatus(); err != nil || status != "tune" {
		t.Errorf("TRXStatus() = %q, %v", status, err)
	}
	if err := c.Abort(); err != nil {
		t.Fatal(err)
	}
	if got := m.TRX(); got != "rx" {
		t.Errorf("Server trx is %q", got)
	}
	if state, err := c.TRXState(); err != nil || state != "RX" {
		t.Errorf("TRXState() = %q, %v", state, err)
	}
}

func TestMainToggles(t *testing.T) {
	c, _ := testClient(t, mock.Options{})
	m := c.Main()

	if old, err := m.SetAFC(true); err != nil || old != false {
		t.Errorf("SetAFC() = %t, %v", old, err)
	}
	if on, err := m.AFC(); err != nil || !on {
		t.Errorf("AFC() = %t, %v", on, err)
	}
	if on, err := m.ToggleAFC(); err != nil || on {
		t.Errorf("ToggleAFC() = %t, %v", on, err)
	}

	if old, err := m.SetSquelchLevel(20); err != nil || old != 5 {
		t.Errorf("SetSquelchLevel() = %f, %v", old, err)
	}
	if level, err := c.SquelchLevel(); err != nil || level != 20 {
		t.Errorf("SquelchLevel() = %f, %v", level, err)
	}
}

func TestQSOLogFields(t *testing.T) {
	c, _ := testClient(t, mock.Options{})
	l := c.Log()

	if err := l.SetCall("LA5NTA"); err != nil {
		t.Fatal(err)
	}
	if err := l.SetLocator("JP20qe"); err != nil {
		t.Fatal(err)
	}
	if call, err := l.Call(); err != nil || call != "LA5NTA" {
		t.Errorf("Call() = %q, %v", call, err)
	}
	if err := l.Clear(); err != nil {
		t.Fatal(err)
	}
	if locator, err := l.Locator(); err != nil || locator != "" {
		t.Errorf("Locator() after clear = %q, %v", locator, err)
	}
}

func TestFaultError(t *testing.T) {
	c, _ := testClient(t, mock.Options{})

	err := c.Call("no.such_method", nil)
	if err == nil {
		t.Fatal("Expected error")
	}
	if !IsFault(err) {
		t.Errorf("Expected remote fault, got %v", err)
	}
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Method != "no.such_method" {
		t.Errorf("Expected *Error with method name, got %v", err)
	}
}

func TestTransportError(t *testing.T) {
	// Nothing listens here; the error must surface as a transport
	// failure, not a fault.
	c, err := Dial("127.0.0.1:1")
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	var s string
	err = c.Call("fldigi.name", &s)
	if err == nil {
		t.Fatal("Expected error")
	}
	if IsFault(err) {
		t.Errorf("Expected transport error, got fault: %v", err)
	}
}
