// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It resolves the stored session, hands control to the terminal UI and
// releases background workers and local storage on exit.
package client
