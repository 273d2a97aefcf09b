/*********************************************************************
 * Copyright (c) Intel Corporation 2024
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package powershell

import (
	"context"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single PowerShell invocation. Adapter cmdlets are
// normally sub-second; anything past this is a hung host, not a slow one.
const DefaultTimeout = 8 * time.Second

// Result is the outcome of one external command invocation. TimedOut is
// reported separately from a plain failure because read paths degrade a
// timeout to "Unknown" while write paths escalate it.
type Result struct {
	Succeeded bool
	TimedOut  bool
	Output    string
}

// Runner invokes a PowerShell command and captures its combined output.
// A zero timeout means the runner's default. Engine logic depends only on
// this interface so tests can substitute a fake host.
type Runner interface {
	Run(command string, timeout time.Duration) Result
}

// HostRunner runs commands against a resolved PowerShell executable.
type HostRunner struct {
	Path    string
	Timeout time.Duration
}

func NewHostRunner(path string, timeout time.Duration) *HostRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HostRunner{Path: path, Timeout: timeout}
}

func (r *HostRunner) Run(command string, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = r.Timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Path, "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command", command)
	hideConsoleWindow(cmd)

	log.Tracef("powershell: %s", command)

	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))

	if ctx.Err() == context.DeadlineExceeded {
		log.Warnf("powershell command timed out after %s", timeout)

		return Result{TimedOut: true, Output: output}
	}

	if err != nil {
		if output == "" {
			output = err.Error()
		}

		return Result{Output: output}
	}

	return Result{Succeeded: true, Output: output}
}

// ParseLines splits list-mode cmdlet output (one value per line) into the
// driver-reported values, order-preserved, blanks dropped. Values are not
// normalized; callers match them verbatim.
func ParseLines(output string) []string {
	var values []string

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			values = append(values, line)
		}
	}

	return values
}

// Quote escapes a value for embedding inside a double-quoted PowerShell
// string. Backticks are escaped first so the quote escape survives.
func Quote(s string) string {
	s = strings.ReplaceAll(s, "`", "``")
	s = strings.ReplaceAll(s, `"`, "`\"")

	return s
}
