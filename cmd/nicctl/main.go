/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package main

import (
	"os"

	"github.com/sfmadrig/nicctl/internal/cli"
	"github.com/sfmadrig/nicctl/pkg/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	err := cli.Execute(os.Args)
	if err != nil {
		handleErrorAndExit(err)
	}
}

func handleErrorAndExit(err error) {
	if customErr, ok := err.(utils.CustomError); ok {
		if !customErr.Is(utils.HelpRequested) {
			log.Error(customErr.Error())
		}

		os.Exit(customErr.Code)
	} else {
		log.Error(err.Error())
		os.Exit(utils.GenericFailure.Code)
	}
}
