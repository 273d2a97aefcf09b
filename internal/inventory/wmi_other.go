//go:build !windows
// +build !windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package inventory

import "errors"

func (inv *AdapterInventory) listFromWMI() ([]Adapter, error) {
	return nil, errors.New("WMI enumeration is only available on Windows")
}
