/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package compat resolves a working PowerShell host across the installation
// layouts seen on Windows 7 through 11 and reports on the environment pieces
// the adapter engine depends on.
package compat

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sfmadrig/nicctl/pkg/privilege"
	"github.com/sfmadrig/nicctl/pkg/utils"
	log "github.com/sirupsen/logrus"
)

const probeTimeout = 5 * time.Second

// Probed in preference order: Windows PowerShell from PATH, its fixed system
// location, then PowerShell 7 installs.
var hostCandidates = []string{
	"powershell",
	`C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`,
	`C:\Program Files\PowerShell\7\pwsh.exe`,
	`C:\Program Files (x86)\PowerShell\7\pwsh.exe`,
}

// Host is a resolved, probed PowerShell installation.
type Host struct {
	Path            string `json:"path"`
	Version         string `json:"version"`
	ExecutionPolicy string `json:"executionPolicy"`
}

// Report is the environment compatibility summary shown by the compat
// command.
type Report struct {
	Platform string `json:"platform"`
	Hostname string `json:"hostname"`
	Elevated bool   `json:"elevated"`

	PowerShellAvailable bool `json:"powershellAvailable"`
	PowerShell          Host `json:"powershell"`

	WinmgmtRunning         bool `json:"winmgmtRunning"`
	NetshAvailable         bool `json:"netshAvailable"`
	GetNetAdapterAvailable bool `json:"getNetAdapterAvailable"`
	WmicAvailable          bool `json:"wmicAvailable"`

	Recommendations []string `json:"recommendations"`
}

type probeFunc func(path string, args ...string) (string, error)

// Checker probes the environment. The probe is injectable so the logic is
// testable without a Windows host.
type Checker struct {
	probe probeFunc
	gate  privilege.Gate
}

func NewChecker(gate privilege.Gate) *Checker {
	return &Checker{probe: runProbe, gate: gate}
}

// ResolveHost returns the first working PowerShell host. When an override
// path is configured only that path is probed; the engine fails fast rather
// than guessing at alternates behind the operator's back.
func (c *Checker) ResolveHost(override string) (Host, error) {
	candidates := hostCandidates
	if override != "" {
		candidates = []string{override}
	}

	for _, path := range candidates {
		if filepath.IsAbs(path) {
			if _, err := os.Stat(path); err != nil {
				continue
			}
		}

		version, err := c.probe(path, "-NoProfile", "-Command", "$PSVersionTable.PSVersion.ToString()")
		if err != nil {
			log.Debugf("PowerShell candidate %q failed probe: %v", path, err)

			continue
		}

		host := Host{Path: path, Version: version, ExecutionPolicy: utils.Unknown}

		if policy, err := c.probe(path, "-NoProfile", "-Command", "Get-ExecutionPolicy"); err == nil {
			host.ExecutionPolicy = policy
		}

		log.Debugf("resolved PowerShell host %q (version %s)", host.Path, host.Version)

		return host, nil
	}

	if override != "" {
		return Host{}, utils.NoPowerShellAvailable.WithDetails(fmt.Sprintf("configured host %q failed to respond", override))
	}

	return Host{}, utils.NoPowerShellAvailable
}

// BuildReport probes every environment dependency and derives operator
// recommendations.
func (c *Checker) BuildReport(override string) Report {
	r := Report{Platform: runtime.GOOS + "/" + runtime.GOARCH}
	r.Hostname, _ = os.Hostname()
	r.Elevated = c.gate.IsElevated()

	host, err := c.ResolveHost(override)
	if err == nil {
		r.PowerShellAvailable = true
		r.PowerShell = host
	}

	if out, err := c.probe("sc", "query", "winmgmt"); err == nil && strings.Contains(out, "RUNNING") {
		r.WinmgmtRunning = true
	}

	if _, err := c.probe("netsh", "interface", "show", "interface"); err == nil {
		r.NetshAvailable = true
	}

	if r.PowerShellAvailable {
		if _, err := c.probe(host.Path, "-NoProfile", "-Command", "Get-NetAdapter | Select-Object -First 1"); err == nil {
			r.GetNetAdapterAvailable = true
		}
	}

	if _, err := c.probe("wmic", "path", "win32_networkadapter", "get", "name", "/format:list"); err == nil {
		r.WmicAvailable = true
	}

	r.Recommendations = recommendations(r)

	return r
}

func recommendations(r Report) []string {
	var recs []string

	if !r.PowerShellAvailable {
		recs = append(recs, "PowerShell is not available; install Windows PowerShell 5.1 or PowerShell 7")
	} else if strings.EqualFold(r.PowerShell.ExecutionPolicy, "Restricted") {
		recs = append(recs, "PowerShell execution policy is Restricted; consider RemoteSigned or Bypass")
	}

	if !r.WinmgmtRunning {
		recs = append(recs, "the Windows Management Instrumentation service (winmgmt) is not running; WMI fallback enumeration will fail")
	}

	if r.PowerShellAvailable && !r.GetNetAdapterAvailable {
		recs = append(recs, "the Get-NetAdapter cmdlet is unavailable; update PowerShell or Windows")
	}

	if !r.Elevated {
		recs = append(recs, "not running as administrator; adapter settings cannot be changed")
	}

	return recs
}

func runProbe(path string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("probe of %s timed out after %s", path, probeTimeout)
	}

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
