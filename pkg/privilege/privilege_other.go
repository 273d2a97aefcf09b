//go:build !windows
// +build !windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package privilege

import "github.com/sfmadrig/nicctl/pkg/utils"

func (g *RealGate) IsElevated() bool {
	return false
}

func (g *RealGate) RequestElevation(executable string, args []string) error {
	return utils.ElevationRequestFailed.WithDetails("elevation is only supported on Windows")
}
