// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package fldigi

import (
	"errors"
	"fmt"

	"github.com/kolo/xmlrpc"
)

// Error wraps any error returned while calling the server, keeping the
// XML-RPC method name for context.
type Error struct {
	Method string
	Err    error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Method, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// IsFault reports whether err carries a fault returned by the server
// (invalid method, bad argument, rig control inactive, ...), as opposed to a
// transport failure such as the server being unreachable.
func IsFault(err error) bool {
	var fault xmlrpc.FaultError
	return errors.As(err, &fault)
}
