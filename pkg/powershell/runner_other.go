//go:build !windows
// +build !windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package powershell

import "os/exec"

func hideConsoleWindow(_ *exec.Cmd) {}
