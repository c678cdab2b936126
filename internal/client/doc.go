// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-clip-keeper client application.
//
// The root command starts the terminal trigger form. Subcommands run single
// protocol steps (decrypt, sanitize, status) or the backend's password
// helpers from the shell. Commands that launch a detached sanitize pass wait
// for it before the process exits.
package client
