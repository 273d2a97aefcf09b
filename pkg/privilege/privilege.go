/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package privilege

// Gate answers whether the current process holds administrator rights and can
// relaunch it elevated. Privilege is ambient process state, so callers query
// it fresh before every mutation instead of caching the answer.
type Gate interface {
	IsElevated() bool
	RequestElevation(executable string, args []string) error
}

// RealGate is the concrete OS-backed implementation of Gate.
type RealGate struct{}

func NewGate() *RealGate {
	return &RealGate{}
}
