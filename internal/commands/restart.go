/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	log "github.com/sirupsen/logrus"
)

// RestartCmd represents the restart command
type RestartCmd struct {
	Name    string `arg:"" help:"Adapter name fragment (case-insensitive substring match)"`
	Elevate bool   `help:"Relaunch elevated when not running as administrator" short:"e"`
}

// Run executes the restart command
func (cmd *RestartCmd) Run(ctx *Context) error {
	if cmd.Elevate && !ctx.Gate.IsElevated() {
		log.Info("not running as administrator, requesting elevation")

		if err := ctx.Configurator.RequestElevation(); err != nil {
			return err
		}

		return nil
	}

	res, err := ctx.Configurator.Restart(cmd.Name)
	printResult(ctx, res)

	return err
}
