// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

// Package fldigi provides a client for fldigi's XML-RPC control interface.
//
// fldigi is a digital-mode modem application which exposes a remote control
// API as XML-RPC over HTTP, by default on 127.0.0.1:7362. This package wraps
// the non-deprecated methods of that API with typed accessors, grouped the
// way fldigi groups them (main, rig, text, modem, log, io, spot, navtex and
// wefax), plus a small set of high-level convenience methods on Client.
//
//	c, err := fldigi.Dial(fldigi.DefaultAddr)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.AddTx("CQ CQ DE KM4YRI")
//	freq, _ := c.Frequency()
//	fmt.Println(freq) // 14.074.00 MHz
package fldigi

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/kolo/xmlrpc"

	"github.com/km4yri/fldigi/internal/debug"
)

// DefaultAddr is the address fldigi's XML-RPC server listens on by default.
const DefaultAddr = "127.0.0.1:7362"

// DefaultTimeout defines the timeout duration of dial and response read
// operations for clients returned by Dial.
var DefaultTimeout = 5 * time.Second

// Client represents a handle to a running fldigi instance.
//
// All state (frequency, modem, text buffers, ...) lives in fldigi itself;
// the Client holds only the server address and the HTTP transport. Calls are
// synchronous request/response and the handle is not documented as safe for
// concurrent use.
type Client struct {
	addr string
	rpc  *xmlrpc.Client
}

// Dial returns a ready to use Client for the fldigi XML-RPC server at addr.
//
// An empty addr means DefaultAddr. XML-RPC is plain HTTP request/response,
// so no network traffic is generated until the first call; an unreachable
// server surfaces as an error on the calls themselves.
func Dial(addr string) (*Client, error) { return DialTimeout(addr, DefaultTimeout) }

// DialTimeout is like Dial, but with a per-call timeout other than
// DefaultTimeout. A zero timeout disables it.
func DialTimeout(addr string, timeout time.Duration) (*Client, error) {
	if addr == "" {
		addr = DefaultAddr
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", addr, err)
	}
	if host == "" {
		return nil, fmt.Errorf("invalid address %q: empty host", addr)
	}
	if port, err := strconv.Atoi(portStr); err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid address %q: invalid port", addr)
	}

	transport := &http.Transport{
		DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
		ResponseHeaderTimeout: timeout,
	}
	rpc, err := xmlrpc.NewClient("http://"+addr, transport)
	if err != nil {
		return nil, err
	}
	return &Client{addr: addr, rpc: rpc}, nil
}

// Addr returns the server address this client was dialed with.
func (c *Client) Addr() string { return c.addr }

// Close closes the underlying HTTP transport.
func (c *Client) Close() error { return c.rpc.Close() }

// Call issues a raw XML-RPC call against the server.
//
// reply must be a pointer to a value of the method's return type, or nil for
// methods returning nothing of interest. Most users want the typed wrappers
// instead. Transport errors and remote faults are both returned as *Error;
// use IsFault to tell them apart.
func (c *Client) Call(method string, reply interface{}, args ...interface{}) error {
	debug.Printf("call %s (%d args)", method, len(args))
	var params interface{}
	if len(args) > 0 {
		params = []interface{}(args)
	}
	if err := c.rpc.Call(method, params, reply); err != nil {
		return &Error{Method: method, Err: err}
	}
	return nil
}

// Name returns the program name, typically "fldigi".
func (c *Client) Name() (string, error) {
	var s string
	err := c.Call("fldigi.name", &s)
	return s, err
}

// Version returns the server's program version (e.g. "4.2.05").
func (c *Client) Version() (string, error) {
	var s string
	err := c.Call("fldigi.version", &s)
	return s, err
}

// ConfigDir returns the server's configuration directory.
func (c *Client) ConfigDir() (string, error) {
	var s string
	err := c.Call("fldigi.config_dir", &s)
	return s, err
}

// MethodInfo describes a single method of the server's XML-RPC interface.
type MethodInfo struct {
	Name      string `xmlrpc:"name"`
	Signature string `xmlrpc:"signature"`
	Help      string `xmlrpc:"help"`
}

// Methods returns the list of methods the server supports (fldigi.list).
func (c *Client) Methods() ([]MethodInfo, error) {
	var list []MethodInfo
	err := c.Call("fldigi.list", &list)
	return list, err
}

// TerminateFlags select what fldigi saves on the way down.
type TerminateFlags int

const (
	SaveOptions TerminateFlags = 1 << iota
	SaveLog
	SaveMacros
)

// Terminate asks the server to exit, saving the state selected by flags.
func (c *Client) Terminate(flags TerminateFlags) error {
	return c.Call("fldigi.terminate", nil, int(flags))
}
