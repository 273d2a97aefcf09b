/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"fmt"
	"strings"

	"github.com/sfmadrig/nicctl/pkg/utils"
)

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	if ctx.JsonOutput {
		return printJSON(map[string]string{
			"app":     strings.ToUpper(utils.ProjectName),
			"version": utils.ProjectVersion,
		})
	}

	fmt.Println(strings.ToUpper(utils.ProjectName))
	fmt.Printf("Version %s\n", utils.ProjectVersion)

	return nil
}
