/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import "fmt"

// OptionsCmd represents the options command
type OptionsCmd struct {
	Name string `arg:"" help:"Adapter name fragment (case-insensitive substring match)"`
}

// Run executes the options command
func (cmd *OptionsCmd) Run(ctx *Context) error {
	speeds, err := ctx.Inventory.SpeedOptions(cmd.Name)
	if err != nil {
		return err
	}

	duplexModes, err := ctx.Inventory.DuplexOptions(cmd.Name)
	if err != nil {
		return err
	}

	if ctx.JsonOutput {
		return printJSON(map[string][]string{
			"speeds":      speeds,
			"duplexModes": duplexModes,
		})
	}

	if len(speeds) == 0 && len(duplexModes) == 0 {
		fmt.Println("The adapter does not expose a Speed & Duplex override")

		return nil
	}

	fmt.Println("Speed values (driver order):")

	for _, option := range speeds {
		fmt.Printf("  - %s\n", option)
	}

	fmt.Println("Duplex values (driver order):")

	for _, option := range duplexModes {
		fmt.Printf("  - %s\n", option)
	}

	return nil
}
