/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package commands

import (
	"fmt"

	"github.com/sfmadrig/nicctl/internal/configurator"
	"github.com/sfmadrig/nicctl/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// SetCmd represents the set command
type SetCmd struct {
	Name    string `arg:"" help:"Adapter name fragment (case-insensitive substring match)"`
	Speed   string `help:"New speed value, matched exactly against the advertised list" short:"s"`
	Duplex  string `help:"New duplex value, matched exactly against the advertised list" short:"d"`
	Restart bool   `help:"Restart the adapter after a successful apply" short:"r"`
	Elevate bool   `help:"Relaunch elevated when not running as administrator" short:"e"`
}

// Validate implements Kong's extensible validation interface
func (cmd *SetCmd) Validate() error {
	if cmd.Speed == "" && cmd.Duplex == "" {
		return utils.IncorrectCommandLineParameters.WithDetails("at least one of --speed or --duplex is required")
	}

	return nil
}

// Run executes the set command
func (cmd *SetCmd) Run(ctx *Context) error {
	if cmd.Elevate && !ctx.Gate.IsElevated() {
		log.Info("not running as administrator, requesting elevation")

		if err := ctx.Configurator.RequestElevation(); err != nil {
			return err
		}

		// the elevated instance carries on from here
		return nil
	}

	var (
		res configurator.OperationResult
		err error
	)

	switch {
	case cmd.Speed != "" && cmd.Duplex != "":
		res, err = ctx.Configurator.SetBoth(cmd.Name, cmd.Speed, cmd.Duplex)
	case cmd.Speed != "":
		res, err = ctx.Configurator.SetSpeed(cmd.Name, cmd.Speed)
	default:
		res, err = ctx.Configurator.SetDuplex(cmd.Name, cmd.Duplex)
	}

	printResult(ctx, res)

	if err != nil {
		return err
	}

	if cmd.Restart {
		res, err = ctx.Configurator.Restart(cmd.Name)
		printResult(ctx, res)

		if err != nil {
			return err
		}
	}

	return nil
}

func printResult(ctx *Context, res configurator.OperationResult) {
	if ctx.JsonOutput {
		// best effort; the error path already carries the outcome
		_ = printJSON(res)

		return
	}

	fmt.Println(res.Message)

	if !res.Succeeded && res.Output != "" {
		fmt.Println(res.Output)
	}
}
