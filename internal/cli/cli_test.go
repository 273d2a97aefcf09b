/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelectsCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "list", args: []string{"nicctl", "list"}, expected: "list"},
		{name: "info", args: []string{"nicctl", "info", "Ethernet"}, expected: "info <name>"},
		{name: "options", args: []string{"nicctl", "options", "Ethernet"}, expected: "options <name>"},
		{name: "set", args: []string{"nicctl", "set", "Ethernet", "--speed", "1.0 Gbps Full Duplex"}, expected: "set <name>"},
		{name: "restart", args: []string{"nicctl", "restart", "Ethernet"}, expected: "restart <name>"},
		{name: "compat", args: []string{"nicctl", "compat"}, expected: "compat"},
		{name: "version", args: []string{"nicctl", "version"}, expected: "version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kctx, _, err := Parse(tt.args)

			assert.NoError(t, err)
			assert.NotNil(t, kctx)
			assert.Equal(t, tt.expected, kctx.Command())
		})
	}
}

func TestParseSetFlags(t *testing.T) {
	kctx, cliv, err := Parse([]string{
		"nicctl", "set", "Ethernet",
		"--speed", "1.0 Gbps Full Duplex",
		"--duplex", "Full Duplex",
		"--restart", "--elevate",
	})

	assert.NoError(t, err)
	assert.NotNil(t, kctx)
	assert.Equal(t, "Ethernet", cliv.Set.Name)
	assert.Equal(t, "1.0 Gbps Full Duplex", cliv.Set.Speed)
	assert.Equal(t, "Full Duplex", cliv.Set.Duplex)
	assert.True(t, cliv.Set.Restart)
	assert.True(t, cliv.Set.Elevate)
}

func TestParseSetRequiresValue(t *testing.T) {
	_, _, err := Parse([]string{"nicctl", "set", "Ethernet"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--speed or --duplex")
}

func TestParseGlobalDefaults(t *testing.T) {
	_, cliv, err := Parse([]string{"nicctl", "version"})

	assert.NoError(t, err)
	assert.Equal(t, "info", cliv.LogLevel)
	assert.False(t, cliv.JsonOutput)
}

func TestParseUnknownFlag(t *testing.T) {
	_, _, err := Parse([]string{"nicctl", "list", "--frobnicate"})

	assert.Error(t, err)
}

func TestParseNoArgsReturnsError(t *testing.T) {
	kctx, _, err := Parse([]string{"nicctl"})

	assert.Error(t, err)
	assert.Nil(t, kctx)
}

func TestNeedsEngine(t *testing.T) {
	assert.True(t, needsEngine("list"))
	assert.True(t, needsEngine("set <name>"))
	assert.True(t, needsEngine("restart <name>"))
	assert.False(t, needsEngine("version"))
	assert.False(t, needsEngine("compat"))
	assert.False(t, needsEngine(""))
}
