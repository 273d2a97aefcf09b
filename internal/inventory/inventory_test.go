/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package inventory

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sfmadrig/nicctl/pkg/powershell"
	"github.com/sfmadrig/nicctl/pkg/utils"
	"github.com/stretchr/testify/assert"
)

type fakeResponse struct {
	match  string
	result powershell.Result
}

// fakeRunner answers commands by first matching substring; unmatched commands
// fail like a missing cmdlet would.
type fakeRunner struct {
	responses []fakeResponse
	calls     []string
}

func (f *fakeRunner) Run(command string, _ time.Duration) powershell.Result {
	f.calls = append(f.calls, command)

	for _, r := range f.responses {
		if strings.Contains(command, r.match) {
			return r.result
		}
	}

	return powershell.Result{Output: "not recognized"}
}

func ok(output string) powershell.Result {
	return powershell.Result{Succeeded: true, Output: output}
}

const listingJSON = `[
  {
    "Name": "Ethernet",
    "InterfaceDescription": "Intel(R) Ethernet Connection I219-V",
    "InterfaceGuid": "{B5A0C7E2-3F19-4A7D-9C41-8E2D6F0A1B23}",
    "MacAddress": "AC-DE-48-00-11-22",
    "Status": "Up",
    "LinkSpeed": "1 Gbps",
    "FullDuplex": true
  },
  {
    "Name": "vEthernet (Default Switch)",
    "InterfaceDescription": "Hyper-V Virtual Ethernet Adapter",
    "InterfaceGuid": "{11111111-2222-3333-4444-555555555555}",
    "MacAddress": "00-15-5D-00-00-01",
    "Status": "Up",
    "LinkSpeed": "10 Gbps",
    "FullDuplex": true
  },
  {
    "Name": "Wi-Fi",
    "InterfaceDescription": "Intel(R) Wi-Fi 6 AX201",
    "InterfaceGuid": "{66666666-7777-8888-9999-000000000000}",
    "MacAddress": "AC-DE-48-00-33-44",
    "Status": "Disabled",
    "LinkSpeed": "",
    "FullDuplex": null
  }
]`

const speedDuplexOptions = "Auto Negotiation\n10 Mbps Half Duplex\n10 Mbps Full Duplex\n100 Mbps Half Duplex\n100 Mbps Full Duplex\n1.0 Gbps Full Duplex"

func newTestRunner() *fakeRunner {
	return &fakeRunner{responses: []fakeResponse{
		{match: "ConvertTo-Json", result: ok(listingJSON)},
		{match: `-DisplayName "*Speed*Duplex*"`, result: ok("Half Duplex\nFull Duplex\nAuto Negotiation")},
		{match: "ExpandProperty ValidDisplayValues", result: ok(speedDuplexOptions)},
		{match: "Get-NetIPAddress", result: ok("192.168.1.10")},
		{match: ".DisplayValue", result: ok("1.0 Gbps Full Duplex")},
	}}
}

func TestListFiltersVirtualAndDisabled(t *testing.T) {
	inv := New(newTestRunner())

	adapters, err := inv.List()

	assert.NoError(t, err)
	assert.Len(t, adapters, 1)

	a := adapters[0]
	assert.Equal(t, "Intel(R) Ethernet Connection I219-V", a.Name)
	assert.Equal(t, "Ethernet", a.Alias)
	assert.Equal(t, "{B5A0C7E2-3F19-4A7D-9C41-8E2D6F0A1B23}", a.DeviceID)
	assert.Equal(t, "AC-DE-48-00-11-22", a.MACAddress)
	assert.Equal(t, "192.168.1.10", a.IPAddress)
	assert.True(t, a.Enabled)
	assert.Equal(t, "1 Gbps", a.Speed)
	assert.Equal(t, "Full Duplex", a.Duplex)
}

func TestListPreservesDriverOptionOrder(t *testing.T) {
	inv := New(newTestRunner())

	adapters, err := inv.List()

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Auto Negotiation", "10 Mbps Half Duplex", "10 Mbps Full Duplex",
		"100 Mbps Half Duplex", "100 Mbps Full Duplex", "1.0 Gbps Full Duplex",
	}, adapters[0].SpeedOptions)
	assert.Equal(t, []string{"Half Duplex", "Full Duplex", "Auto Negotiation"}, adapters[0].DuplexOptions)
}

func TestListSingleAdapterObject(t *testing.T) {
	runner := newTestRunner()
	runner.responses[0] = fakeResponse{match: "ConvertTo-Json", result: ok(`{
		"Name": "Ethernet",
		"InterfaceDescription": "Realtek PCIe GbE Family Controller",
		"InterfaceGuid": "",
		"MacAddress": "00-E0-4C-68-00-01",
		"Status": "Up",
		"LinkSpeed": "100 Mbps",
		"FullDuplex": false
	}`)}
	inv := New(runner)

	adapters, err := inv.List()

	assert.NoError(t, err)
	assert.Len(t, adapters, 1)
	assert.Equal(t, "Half Duplex", adapters[0].Duplex)
	// device id falls back to the alias when the driver reports no guid
	assert.Equal(t, "Ethernet", adapters[0].DeviceID)
}

func TestListDegradesToUnknownOnPropertyFailure(t *testing.T) {
	runner := &fakeRunner{responses: []fakeResponse{
		{match: "ConvertTo-Json", result: ok(`{
			"Name": "Ethernet",
			"InterfaceDescription": "Realtek PCIe GbE Family Controller",
			"InterfaceGuid": "{AAAAAAAA-0000-0000-0000-000000000000}",
			"MacAddress": "00-E0-4C-68-00-01",
			"Status": "Up",
			"LinkSpeed": "",
			"FullDuplex": null
		}`)},
	}}
	inv := New(runner)

	adapters, err := inv.List()

	assert.NoError(t, err)
	assert.Len(t, adapters, 1)
	assert.Equal(t, utils.Unknown, adapters[0].Speed)
	assert.Equal(t, utils.Unknown, adapters[0].Duplex)
	assert.Equal(t, utils.Unknown, adapters[0].IPAddress)
	assert.Empty(t, adapters[0].SpeedOptions)
	assert.Empty(t, adapters[0].DuplexOptions)
}

func TestFindSubstringCaseInsensitive(t *testing.T) {
	inv := New(newTestRunner())

	a, err := inv.Find("i219")

	assert.NoError(t, err)
	assert.Equal(t, "Ethernet", a.Alias)
}

func TestFindMatchesAlias(t *testing.T) {
	inv := New(newTestRunner())

	a, err := inv.Find("ETHER")

	assert.NoError(t, err)
	assert.Equal(t, "Ethernet", a.Alias)
}

func TestFindEmptyFragmentReturnsFirst(t *testing.T) {
	inv := New(newTestRunner())

	a, err := inv.Find("")

	assert.NoError(t, err)
	assert.Equal(t, "Ethernet", a.Alias)
}

func TestFindNotFound(t *testing.T) {
	inv := New(newTestRunner())

	_, err := inv.Find("Broadcom")

	assert.True(t, errors.Is(err, utils.AdapterNotFound))
}

func TestSpeedOptionsRequeriesLiveList(t *testing.T) {
	runner := newTestRunner()
	inv := New(runner)

	options, err := inv.SpeedOptions("Ethernet")

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Auto Negotiation", "10 Mbps Half Duplex", "10 Mbps Full Duplex",
		"100 Mbps Half Duplex", "100 Mbps Full Duplex", "1.0 Gbps Full Duplex",
	}, options)
}

func TestDuplexOptionsUseDisplayNameQuery(t *testing.T) {
	runner := newTestRunner()
	inv := New(runner)

	options, err := inv.DuplexOptions("Ethernet")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Half Duplex", "Full Duplex", "Auto Negotiation"}, options)

	var sawDisplayName bool

	for _, cmd := range runner.calls {
		if strings.Contains(cmd, `-DisplayName "*Speed*Duplex*"`) && strings.Contains(cmd, "ValidDisplayValues") {
			sawDisplayName = true
		}
	}

	assert.True(t, sawDisplayName)
}

func TestDecodeAdapterList(t *testing.T) {
	items, err := decodeAdapterList("")
	assert.NoError(t, err)
	assert.Empty(t, items)

	_, err = decodeAdapterList("Get-NetAdapter : not recognized")
	assert.Error(t, err)
}
