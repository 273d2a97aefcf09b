/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/sfmadrig/nicctl/internal/compat"
	"github.com/sfmadrig/nicctl/internal/configurator"
	"github.com/sfmadrig/nicctl/internal/inventory"
	"github.com/sfmadrig/nicctl/pkg/privilege"
)

// Context holds shared dependencies injected into commands
type Context struct {
	Inventory    inventory.Reader
	Configurator configurator.Configurator
	Gate         privilege.Gate
	Checker      *compat.Checker

	// PowerShellOverride is the configured host path, empty for auto-detect.
	PowerShellOverride string

	LogLevel   string
	JsonOutput bool
	Verbose    bool
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}
