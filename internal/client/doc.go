// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the money-tracker command-line client.
//
// It parses subcommands, keeps the bearer token in a local file between
// invocations and talks to the API through an [adapter.ServerAdapter].
package client
