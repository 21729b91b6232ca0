// Copyright 2025 Liberty Farmer (KM4YRI). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package buildinfo

const (
	// AppName is the friendly name of the app.
	AppName = "fldigictl"
	// Version is the app's SemVer.
	Version = "0.1.0"
)
