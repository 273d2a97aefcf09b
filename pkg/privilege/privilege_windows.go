//go:build windows
// +build windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package privilege

import (
	"strings"

	"github.com/sfmadrig/nicctl/pkg/utils"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// IsElevated reports whether the process token carries elevation. Failures
// are treated as "not elevated"; proceeding without confirmed privilege is
// the unsafe direction.
func (g *RealGate) IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// RequestElevation relaunches the executable through the UAC "runas" verb.
// On success the elevated instance continues and the caller is expected to
// exit; declining the prompt surfaces as an error, never a silent retry.
func (g *RealGate) RequestElevation(executable string, args []string) error {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return utils.ElevationRequestFailed.WithDetails(err.Error())
	}

	exe, err := windows.UTF16PtrFromString(executable)
	if err != nil {
		return utils.ElevationRequestFailed.WithDetails(err.Error())
	}

	params, err := windows.UTF16PtrFromString(strings.Join(args, " "))
	if err != nil {
		return utils.ElevationRequestFailed.WithDetails(err.Error())
	}

	log.Debugf("requesting elevation for %s", executable)

	err = windows.ShellExecute(0, verb, exe, params, nil, windows.SW_NORMAL)
	if err != nil {
		return utils.ElevationRequestFailed.WithDetails(err.Error())
	}

	return nil
}
