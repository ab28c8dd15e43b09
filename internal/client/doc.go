// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the server adapter into a single
// process lifecycle: log in, work in the main loop, log out and start over
// until the user quits.
package client
