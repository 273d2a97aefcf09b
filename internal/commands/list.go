/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"fmt"
	"strings"

	"github.com/sfmadrig/nicctl/internal/inventory"
)

// ListCmd represents the list command
type ListCmd struct{}

// Run executes the list command
func (cmd *ListCmd) Run(ctx *Context) error {
	adapters, err := ctx.Inventory.List()
	if err != nil {
		return err
	}

	if ctx.JsonOutput {
		return printJSON(adapters)
	}

	if len(adapters) == 0 {
		fmt.Println("No physical network adapters found")

		return nil
	}

	for i, a := range adapters {
		fmt.Printf("[%d] ", i+1)
		printAdapter(a)
	}

	return nil
}

func printAdapter(a inventory.Adapter) {
	fmt.Printf("%s\n", a.Name)
	fmt.Printf("    Alias       : %s\n", a.Alias)
	fmt.Printf("    MAC Address : %s\n", a.MACAddress)
	fmt.Printf("    IP Address  : %s\n", a.IPAddress)
	fmt.Printf("    Status      : %s\n", a.Status)
	fmt.Printf("    Speed       : %s\n", a.Speed)
	fmt.Printf("    Duplex      : %s\n", a.Duplex)
	fmt.Println(strings.Repeat("-", 50))
}
