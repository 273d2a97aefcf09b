/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package configurator

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sfmadrig/nicctl/internal/inventory"
	"github.com/sfmadrig/nicctl/pkg/powershell"
	"github.com/sfmadrig/nicctl/pkg/privilege"
	"github.com/sfmadrig/nicctl/pkg/utils"
	log "github.com/sirupsen/logrus"
)

const (
	mutateTimeout       = 15 * time.Second
	statusTimeout       = 5 * time.Second
	defaultDisableWait  = 10 * time.Second
	defaultPollInterval = 500 * time.Millisecond
)

// OperationResult is the outcome of one mutating or restart operation. Output
// carries the raw command output for failure triage; ID correlates the result
// with log lines.
type OperationResult struct {
	ID        string `json:"id"`
	Succeeded bool   `json:"succeeded"`
	Message   string `json:"message"`
	Output    string `json:"output,omitempty"`
}

// Configurator is the validated, privileged mutation surface.
type Configurator interface {
	SetSpeed(fragment, value string) (OperationResult, error)
	SetDuplex(fragment, value string) (OperationResult, error)
	SetBoth(fragment, speed, duplex string) (OperationResult, error)
	Restart(fragment string) (OperationResult, error)
	RequestElevation() error
}

// AdapterConfigurator applies speed/duplex settings through the privileged
// Set-NetAdapterAdvancedProperty cmdlet. Every call re-resolves the adapter,
// re-validates the requested value against the live capability list, and
// re-checks elevation; nothing is cached between calls.
type AdapterConfigurator struct {
	inventory inventory.Reader
	runner    powershell.Runner
	gate      privilege.Gate

	// DisableWait bounds the poll for the adapter to report Disabled during a
	// restart; PollInterval is the poll period.
	DisableWait  time.Duration
	PollInterval time.Duration
}

func New(inv inventory.Reader, runner powershell.Runner, gate privilege.Gate) *AdapterConfigurator {
	return &AdapterConfigurator{
		inventory:    inv,
		runner:       runner,
		gate:         gate,
		DisableWait:  defaultDisableWait,
		PollInterval: defaultPollInterval,
	}
}

// SetSpeed applies a new Speed & Duplex value, keyed by the SpeedDuplex
// registry keyword.
func (c *AdapterConfigurator) SetSpeed(fragment, value string) (OperationResult, error) {
	return c.apply(fragment, value, "speed", c.inventory.SpeedOptions, func(alias string) string {
		return fmt.Sprintf(`Set-NetAdapterAdvancedProperty -Name "%s" -RegistryKeyword "*SpeedDuplex" -DisplayValue "%s"`,
			powershell.Quote(alias), powershell.Quote(value))
	})
}

// SetDuplex applies a new duplex value through the display-name matched
// variant of the same advanced property.
func (c *AdapterConfigurator) SetDuplex(fragment, value string) (OperationResult, error) {
	return c.apply(fragment, value, "duplex", c.inventory.DuplexOptions, func(alias string) string {
		return fmt.Sprintf(`Set-NetAdapterAdvancedProperty -Name "%s" -DisplayName "*Speed*Duplex*" -DisplayValue "%s"`,
			powershell.Quote(alias), powershell.Quote(value))
	})
}

// SetBoth applies speed first and duplex only if the speed step succeeded.
// There is no rollback on a duplex failure; the adapter keeps the new speed
// and the result says so. The two properties are independent driver settings
// and a compensating write risks a second failure.
func (c *AdapterConfigurator) SetBoth(fragment, speed, duplex string) (OperationResult, error) {
	res, err := c.SetSpeed(fragment, speed)
	if err != nil {
		res.Message = fmt.Sprintf("speed step failed, duplex not attempted: %s", res.Message)

		return res, err
	}

	dres, err := c.SetDuplex(fragment, duplex)
	if err != nil {
		dres.Message = fmt.Sprintf("duplex step failed after speed %q was applied; adapter is left in a partially-applied state: %s", speed, dres.Message)

		return dres, err
	}

	dres.Message = fmt.Sprintf("applied speed %q and duplex %q", speed, duplex)

	return dres, nil
}

// Restart disables the adapter, waits for it to report Disabled within the
// bounded poll window, then enables it again. A failed disable is an ordinary
// CommandError; a failed enable after a successful disable is the
// distinguished PartialRestart, because the adapter is left non-functional.
func (c *AdapterConfigurator) Restart(fragment string) (OperationResult, error) {
	res := OperationResult{ID: uuid.NewString()}

	a, err := c.inventory.Find(fragment)
	if err != nil {
		res.Message = err.Error()

		return res, err
	}

	if !c.gate.IsElevated() {
		res.Message = utils.InsufficientPrivilege.Error()

		return res, utils.InsufficientPrivilege
	}

	log.WithField("operation", res.ID).Infof("restarting adapter %q", a.Alias)

	disable := fmt.Sprintf(`Disable-NetAdapter -Name "%s" -Confirm:$false`, powershell.Quote(a.Alias))

	out := c.runner.Run(disable, mutateTimeout)
	if !out.Succeeded {
		res.Output = out.Output
		res.Message = fmt.Sprintf("disabling adapter %q failed", a.Alias)

		if out.TimedOut {
			return res, utils.CommandError.WithDetails("disable command timed out")
		}

		return res, utils.CommandError.WithDetails(res.Message)
	}

	c.waitForDisabled(a.Alias)

	enable := fmt.Sprintf(`Enable-NetAdapter -Name "%s" -Confirm:$false`, powershell.Quote(a.Alias))

	out = c.runner.Run(enable, mutateTimeout)
	if !out.Succeeded {
		res.Output = out.Output
		res.Message = fmt.Sprintf("adapter %q was disabled but could not be re-enabled", a.Alias)

		return res, utils.PartialRestart
	}

	res.Succeeded = true
	res.Output = out.Output
	res.Message = fmt.Sprintf("restarted adapter %q", a.Alias)

	return res, nil
}

// RequestElevation relaunches the current executable elevated with the
// original arguments. On success the elevated instance carries on and the
// caller should exit.
func (c *AdapterConfigurator) RequestElevation() error {
	exe, err := os.Executable()
	if err != nil {
		return utils.ElevationRequestFailed.WithDetails(err.Error())
	}

	return c.gate.RequestElevation(exe, os.Args[1:])
}

type optionLister func(fragment string) ([]string, error)

func (c *AdapterConfigurator) apply(fragment, value, property string, options optionLister, command func(alias string) string) (OperationResult, error) {
	res := OperationResult{ID: uuid.NewString()}

	a, err := c.inventory.Find(fragment)
	if err != nil {
		res.Message = err.Error()

		return res, err
	}

	// re-validate against the live capability list; an exact string match
	// protects against typo'd or locale-mismatched values that the cmdlet
	// would silently no-op or reject with an opaque error
	valid, err := options(a.Alias)
	if err != nil {
		res.Message = err.Error()

		return res, err
	}

	if !containsExact(valid, value) {
		err := utils.UnsupportedValue.WithDetails(fmt.Sprintf("%q is not among the advertised %s values for %q", value, property, a.Alias))
		res.Message = err.Error()
		res.Output = strings.Join(valid, "\n")

		return res, err
	}

	if !c.gate.IsElevated() {
		res.Message = utils.InsufficientPrivilege.Error()

		return res, utils.InsufficientPrivilege
	}

	log.WithField("operation", res.ID).Infof("setting %s of %q to %q", property, a.Alias, value)

	out := c.runner.Run(command(a.Alias), mutateTimeout)
	res.Output = out.Output

	if out.TimedOut {
		res.Message = fmt.Sprintf("setting %s of %q timed out", property, a.Alias)

		// a timed-out mutation must not look like a success
		return res, utils.CommandError.WithDetails(res.Message)
	}

	if !out.Succeeded {
		res.Message = fmt.Sprintf("setting %s of %q to %q failed", property, a.Alias, value)

		return res, utils.CommandError.WithDetails(res.Message)
	}

	res.Succeeded = true
	res.Message = fmt.Sprintf("set %s of %q to %q", property, a.Alias, value)

	return res, nil
}

func (c *AdapterConfigurator) waitForDisabled(alias string) {
	status := fmt.Sprintf(`(Get-NetAdapter -Name "%s" -ErrorAction SilentlyContinue).Status`, powershell.Quote(alias))
	deadline := time.Now().Add(c.DisableWait)

	for time.Now().Before(deadline) {
		out := c.runner.Run(status, statusTimeout)
		if out.Succeeded && strings.EqualFold(strings.TrimSpace(out.Output), "Disabled") {
			return
		}

		time.Sleep(c.PollInterval)
	}

	log.Warnf("adapter %q did not report Disabled within %s; attempting enable anyway", alias, c.DisableWait)
}

func containsExact(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}

	return false
}
