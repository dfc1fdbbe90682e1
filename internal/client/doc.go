// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive FHETalk client runtime.
//
// It wires the fhevm client, chain adapter, local storage, services,
// background workers and the terminal UI into a single process lifecycle.
package client
