// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the terminal client.
type Client interface {
	// Run starts the terminal client and blocks until the user exits.
	Run() error
}
