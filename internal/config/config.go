/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sfmadrig/nicctl/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Config tunes the engine's interaction with the PowerShell host. Every
// field has a sane default; a config file is optional and env vars override
// nothing when unset.
type Config struct {
	PowerShell struct {
		// Path overrides host auto-detection when set.
		Path           string `yaml:"path" env:"NICCTL_POWERSHELL_PATH"`
		TimeoutSeconds int    `yaml:"timeoutSeconds" env:"NICCTL_POWERSHELL_TIMEOUT" env-default:"8"`
	} `yaml:"powershell"`

	Restart struct {
		DisableWaitSeconds int `yaml:"disableWaitSeconds" env:"NICCTL_RESTART_DISABLE_WAIT" env-default:"10"`
		PollIntervalMillis int `yaml:"pollIntervalMillis" env:"NICCTL_RESTART_POLL_INTERVAL" env-default:"500"`
	} `yaml:"restart"`
}

// Load reads the YAML file at path plus environment overrides. A missing
// file is not an error; the tool runs on defaults out of the box.
func Load(path string) (Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err != nil {
		log.Debugf("no configuration file at %s, using defaults", path)

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, utils.FailedReadingConfiguration.WithDetails(err.Error())
		}

		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, utils.FailedReadingConfiguration.WithDetails(err.Error())
	}

	return cfg, nil
}

func (c Config) CommandTimeout() time.Duration {
	return time.Duration(c.PowerShell.TimeoutSeconds) * time.Second
}

func (c Config) RestartDisableWait() time.Duration {
	return time.Duration(c.Restart.DisableWaitSeconds) * time.Second
}

func (c Config) RestartPollInterval() time.Duration {
	return time.Duration(c.Restart.PollIntervalMillis) * time.Millisecond
}
