//go:build windows
// +build windows

/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package inventory

import (
	"github.com/StackExchange/wmi"
	"github.com/sfmadrig/nicctl/pkg/utils"
)

// Win32_NetworkAdapter mirrors the WMI class fields the fallback needs.
type Win32_NetworkAdapter struct {
	DeviceID        string
	Name            string
	NetConnectionID string
	MACAddress      *string
	PhysicalAdapter bool
	NetEnabled      *bool
}

// listFromWMI is the fallback enumeration path for hosts where Get-NetAdapter
// is unavailable or the PowerShell host misbehaves.
func (inv *AdapterInventory) listFromWMI() ([]Adapter, error) {
	var rows []Win32_NetworkAdapter

	query := wmi.CreateQuery(&rows, "WHERE PhysicalAdapter = TRUE")
	if err := wmi.Query(query, &rows); err != nil {
		return nil, err
	}

	var adapters []Adapter

	for _, row := range rows {
		if row.Name == "" || row.MACAddress == nil || *row.MACAddress == "" {
			continue
		}

		if isVirtualName(row.Name) {
			continue
		}

		if row.NetEnabled != nil && !*row.NetEnabled {
			continue
		}

		alias := row.NetConnectionID
		if alias == "" {
			alias = row.Name
		}

		a := Adapter{
			DeviceID:   row.DeviceID,
			Name:       row.Name,
			Alias:      alias,
			MACAddress: *row.MACAddress,
			Status:     utils.Unknown,
			Enabled:    true,
		}

		a.Speed = inv.currentSpeed(alias)
		a.Duplex = inv.currentDuplex(alias)
		a.IPAddress = inv.ipAddress(alias)
		a.SpeedOptions = inv.speedOptionsByAlias(alias)
		a.DuplexOptions = inv.duplexOptionsByAlias(alias)

		adapters = append(adapters, a)
	}

	return adapters, nil
}
