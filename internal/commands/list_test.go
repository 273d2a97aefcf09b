/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"errors"
	"testing"

	"github.com/sfmadrig/nicctl/internal/inventory"
	"github.com/sfmadrig/nicctl/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestListCmdPropagatesQueryFailure(t *testing.T) {
	inv := &MockReader{}
	inv.On("List").Return(nil, utils.AdapterQueryFailed)

	cmd := &ListCmd{}
	err := cmd.Run(&Context{Inventory: inv})

	assert.True(t, errors.Is(err, utils.AdapterQueryFailed))
}

func TestListCmdEmptyInventory(t *testing.T) {
	inv := &MockReader{}
	inv.On("List").Return([]inventory.Adapter{}, nil)

	cmd := &ListCmd{}
	err := cmd.Run(&Context{Inventory: inv})

	assert.NoError(t, err)
}

func TestInfoCmdNotFound(t *testing.T) {
	inv := &MockReader{}
	inv.On("Find", "Broadcom").Return(inventory.Adapter{}, utils.AdapterNotFound)

	cmd := &InfoCmd{Name: "Broadcom"}
	err := cmd.Run(&Context{Inventory: inv})

	assert.True(t, errors.Is(err, utils.AdapterNotFound))
}

func TestOptionsCmd(t *testing.T) {
	inv := &MockReader{}
	inv.On("SpeedOptions", "Ether").Return([]string{"Auto Negotiation", "1.0 Gbps Full Duplex"}, nil)
	inv.On("DuplexOptions", "Ether").Return([]string{"Half Duplex", "Full Duplex"}, nil)

	cmd := &OptionsCmd{Name: "Ether"}
	err := cmd.Run(&Context{Inventory: inv})

	assert.NoError(t, err)
	inv.AssertExpectations(t)
}

func TestVersionCmd(t *testing.T) {
	cmd := &VersionCmd{}

	assert.NoError(t, cmd.Run(&Context{}))
	assert.NoError(t, cmd.Run(&Context{JsonOutput: true}))
}
