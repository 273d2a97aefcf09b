/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"fmt"
	"strings"
)

// CompatCmd represents the compat command
type CompatCmd struct{}

// Run executes the compat command
func (cmd *CompatCmd) Run(ctx *Context) error {
	report := ctx.Checker.BuildReport(ctx.PowerShellOverride)

	if ctx.JsonOutput {
		return printJSON(report)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("System compatibility report")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Platform            : %s\n", report.Platform)
	fmt.Printf("Hostname            : %s\n", report.Hostname)
	fmt.Printf("Administrator       : %s\n", yesNo(report.Elevated))
	fmt.Printf("PowerShell          : %s\n", yesNo(report.PowerShellAvailable))

	if report.PowerShellAvailable {
		fmt.Printf("  Path              : %s\n", report.PowerShell.Path)
		fmt.Printf("  Version           : %s\n", report.PowerShell.Version)
		fmt.Printf("  Execution policy  : %s\n", report.PowerShell.ExecutionPolicy)
	}

	fmt.Printf("WMI service running : %s\n", yesNo(report.WinmgmtRunning))
	fmt.Printf("netsh               : %s\n", yesNo(report.NetshAvailable))
	fmt.Printf("Get-NetAdapter      : %s\n", yesNo(report.GetNetAdapterAvailable))
	fmt.Printf("wmic                : %s\n", yesNo(report.WmicAvailable))

	if len(report.Recommendations) > 0 {
		fmt.Println("Recommendations:")

		for i, rec := range report.Recommendations {
			fmt.Printf("  %d. %s\n", i+1, rec)
		}
	}

	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
