//go:build windows
// +build windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package powershell

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// hideConsoleWindow keeps a console from flashing up for every cmdlet
// invocation when the caller is a windowed process.
func hideConsoleWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
