/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package inventory

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sfmadrig/nicctl/pkg/powershell"
	"github.com/sfmadrig/nicctl/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Per-call timeouts. Reads degrade to "Unknown" on expiry instead of failing
// the listing, so these stay short.
const (
	enumerateTimeout = 6 * time.Second
	propertyTimeout  = 5 * time.Second
	optionsTimeout   = 6 * time.Second
)

// Adapter is a read-only snapshot of one physical network interface. It is
// never mutated in place; callers re-query after any configuration change.
// Speed and duplex option strings are driver-reported verbatim and matched
// exactly when applying a setting.
type Adapter struct {
	DeviceID      string   `json:"deviceId"`
	Name          string   `json:"name"`
	Alias         string   `json:"alias"`
	MACAddress    string   `json:"macAddress"`
	IPAddress     string   `json:"ipAddress"`
	Status        string   `json:"status"`
	Enabled       bool     `json:"enabled"`
	Speed         string   `json:"speed"`
	Duplex        string   `json:"duplex"`
	SpeedOptions  []string `json:"speedOptions"`
	DuplexOptions []string `json:"duplexOptions"`
}

// Reader provides the read-only view of adapter existence and capabilities.
type Reader interface {
	List() ([]Adapter, error)
	Find(fragment string) (Adapter, error)
	SpeedOptions(fragment string) ([]string, error)
	DuplexOptions(fragment string) ([]string, error)
}

// AdapterInventory enumerates physical adapters through Get-NetAdapter with a
// WMI fallback, and reads speed/duplex state through the adapter
// advanced-property cmdlets. No state is cached between calls.
type AdapterInventory struct {
	runner powershell.Runner
}

func New(runner powershell.Runner) *AdapterInventory {
	return &AdapterInventory{runner: runner}
}

// Structured object-mode enumeration; locale-dependent column widths of the
// default table output make text scraping unreliable.
const listCommand = `Get-NetAdapter -Physical | Select-Object Name,InterfaceDescription,InterfaceGuid,MacAddress,Status,LinkSpeed,FullDuplex | ConvertTo-Json -Depth 2`

type netAdapterJSON struct {
	Name                 string `json:"Name"`
	InterfaceDescription string `json:"InterfaceDescription"`
	InterfaceGuid        string `json:"InterfaceGuid"`
	MacAddress           string `json:"MacAddress"`
	Status               string `json:"Status"`
	LinkSpeed            string `json:"LinkSpeed"`
	FullDuplex           *bool  `json:"FullDuplex"`
}

// List enumerates physical, enabled adapters. A failing query for one
// adapter's properties marks that adapter "Unknown" rather than aborting the
// whole listing.
func (inv *AdapterInventory) List() ([]Adapter, error) {
	res := inv.runner.Run(listCommand, enumerateTimeout)
	if res.Succeeded {
		items, err := decodeAdapterList(res.Output)
		if err != nil {
			log.Debugf("Get-NetAdapter output did not parse as JSON: %v", err)
		} else if adapters := inv.fromNetAdapter(items); len(adapters) > 0 {
			log.Debugf("enumerated %d adapters via Get-NetAdapter", len(adapters))

			return adapters, nil
		}
	}

	adapters, err := inv.listFromWMI()
	if err != nil {
		return nil, utils.AdapterQueryFailed.WithDetails(err.Error())
	}

	log.Debugf("enumerated %d adapters via WMI fallback", len(adapters))

	return adapters, nil
}

// Find returns the first adapter, in enumeration order, whose name or alias
// contains the fragment (case-insensitive). When several adapters share the
// fragment the first match wins; enumeration order is driver-reported and not
// guaranteed stable across driver updates.
func (inv *AdapterInventory) Find(fragment string) (Adapter, error) {
	adapters, err := inv.List()
	if err != nil {
		return Adapter{}, err
	}

	needle := strings.ToLower(fragment)

	for _, a := range adapters {
		if strings.Contains(strings.ToLower(a.Name), needle) || strings.Contains(strings.ToLower(a.Alias), needle) {
			return a, nil
		}
	}

	return Adapter{}, utils.AdapterNotFound.WithDetails(fmt.Sprintf("no adapter name matches %q", fragment))
}

// SpeedOptions returns the live Speed & Duplex valid-value list for the
// matched adapter, driver order preserved.
func (inv *AdapterInventory) SpeedOptions(fragment string) ([]string, error) {
	a, err := inv.Find(fragment)
	if err != nil {
		return nil, err
	}

	return inv.speedOptionsByAlias(a.Alias), nil
}

// DuplexOptions is the DisplayName-matched variant of SpeedOptions, for
// drivers that expose the property under a localized display name rather
// than the SpeedDuplex registry keyword.
func (inv *AdapterInventory) DuplexOptions(fragment string) ([]string, error) {
	a, err := inv.Find(fragment)
	if err != nil {
		return nil, err
	}

	return inv.duplexOptionsByAlias(a.Alias), nil
}

func decodeAdapterList(output string) ([]netAdapterJSON, error) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil, nil
	}

	// ConvertTo-Json emits a bare object when a single adapter matches
	if strings.HasPrefix(trimmed, "[") {
		var list []netAdapterJSON

		if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
			return nil, err
		}

		return list, nil
	}

	var one netAdapterJSON
	if err := json.Unmarshal([]byte(trimmed), &one); err != nil {
		return nil, err
	}

	return []netAdapterJSON{one}, nil
}

func (inv *AdapterInventory) fromNetAdapter(items []netAdapterJSON) []Adapter {
	var adapters []Adapter

	for _, item := range items {
		name := strings.TrimSpace(item.InterfaceDescription)
		alias := strings.TrimSpace(item.Name)
		mac := strings.TrimSpace(item.MacAddress)

		if name == "" || alias == "" || mac == "" {
			continue
		}

		if isVirtualName(name) || !isEnabledStatus(item.Status) {
			continue
		}

		a := Adapter{
			DeviceID:   strings.TrimSpace(item.InterfaceGuid),
			Name:       name,
			Alias:      alias,
			MACAddress: mac,
			Status:     strings.TrimSpace(item.Status),
			Enabled:    true,
			Speed:      strings.TrimSpace(item.LinkSpeed),
		}
		if a.DeviceID == "" {
			a.DeviceID = alias
		}

		if a.Speed == "" {
			a.Speed = inv.currentSpeed(alias)
		}

		if item.FullDuplex != nil {
			a.Duplex = duplexDescriptor(*item.FullDuplex)
		} else {
			a.Duplex = inv.currentDuplex(alias)
		}

		a.IPAddress = inv.ipAddress(alias)
		a.SpeedOptions = inv.speedOptionsByAlias(alias)
		a.DuplexOptions = inv.duplexOptionsByAlias(alias)

		adapters = append(adapters, a)
	}

	return adapters
}

func isVirtualName(name string) bool {
	return strings.Contains(name, "Virtual") || strings.Contains(name, "Loopback")
}

func isEnabledStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "disabled", "not present":
		return false
	}

	return true
}

func duplexDescriptor(full bool) string {
	if full {
		return "Full Duplex"
	}

	return "Half Duplex"
}

func (inv *AdapterInventory) currentSpeed(alias string) string {
	cmd := fmt.Sprintf(`(Get-NetAdapter -Name "%s" -ErrorAction SilentlyContinue).LinkSpeed`, powershell.Quote(alias))

	res := inv.runner.Run(cmd, propertyTimeout)
	if res.Succeeded && res.Output != "" {
		return firstValue(res.Output)
	}

	return utils.Unknown
}

func (inv *AdapterInventory) currentDuplex(alias string) string {
	// the driver's own Speed & Duplex display value is the most faithful
	cmd := fmt.Sprintf(`(Get-NetAdapterAdvancedProperty -Name "%s" -RegistryKeyword "*SpeedDuplex" -ErrorAction SilentlyContinue).DisplayValue`, powershell.Quote(alias))

	res := inv.runner.Run(cmd, propertyTimeout)
	if res.Succeeded && res.Output != "" {
		return firstValue(res.Output)
	}

	cmd = fmt.Sprintf(`(Get-NetAdapter -Name "%s" -ErrorAction SilentlyContinue).FullDuplex`, powershell.Quote(alias))

	res = inv.runner.Run(cmd, propertyTimeout)
	if res.Succeeded {
		switch strings.ToLower(strings.TrimSpace(res.Output)) {
		case "true":
			return "Full Duplex"
		case "false":
			return "Half Duplex"
		}
	}

	return utils.Unknown
}

func (inv *AdapterInventory) ipAddress(alias string) string {
	cmd := fmt.Sprintf(`(Get-NetIPAddress -InterfaceAlias "%s" -AddressFamily IPv4 -ErrorAction SilentlyContinue | Select-Object -First 1).IPAddress`, powershell.Quote(alias))

	res := inv.runner.Run(cmd, propertyTimeout)
	if res.Succeeded && res.Output != "" {
		return firstValue(res.Output)
	}

	return utils.Unknown
}

func (inv *AdapterInventory) speedOptionsByAlias(alias string) []string {
	cmd := fmt.Sprintf(`Get-NetAdapterAdvancedProperty -Name "%s" -RegistryKeyword "*SpeedDuplex" -ErrorAction SilentlyContinue | Select-Object -ExpandProperty ValidDisplayValues`, powershell.Quote(alias))

	res := inv.runner.Run(cmd, optionsTimeout)
	if !res.Succeeded {
		// property absent or query timed out; the adapter does not support
		// a speed/duplex override
		return nil
	}

	return powershell.ParseLines(res.Output)
}

func (inv *AdapterInventory) duplexOptionsByAlias(alias string) []string {
	cmd := fmt.Sprintf(`Get-NetAdapterAdvancedProperty -Name "%s" -DisplayName "*Speed*Duplex*" -ErrorAction SilentlyContinue | Select-Object -ExpandProperty ValidDisplayValues`, powershell.Quote(alias))

	res := inv.runner.Run(cmd, optionsTimeout)
	if !res.Succeeded {
		return nil
	}

	return powershell.ParseLines(res.Output)
}

func firstValue(output string) string {
	values := powershell.ParseLines(output)
	if len(values) == 0 {
		return utils.Unknown
	}

	return values[0]
}
