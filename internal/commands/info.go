/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import "fmt"

// InfoCmd represents the info command
type InfoCmd struct {
	Name string `arg:"" help:"Adapter name fragment (case-insensitive substring match)"`
}

// Run executes the info command
func (cmd *InfoCmd) Run(ctx *Context) error {
	a, err := ctx.Inventory.Find(cmd.Name)
	if err != nil {
		return err
	}

	if ctx.JsonOutput {
		return printJSON(a)
	}

	printAdapter(a)

	if len(a.SpeedOptions) > 0 {
		fmt.Println("Supported speed values:")

		for _, option := range a.SpeedOptions {
			fmt.Printf("  - %s\n", option)
		}
	}

	if len(a.DuplexOptions) > 0 {
		fmt.Println("Supported duplex values:")

		for _, option := range a.DuplexOptions {
			fmt.Printf("  - %s\n", option)
		}
	}

	return nil
}
