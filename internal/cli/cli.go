/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sfmadrig/nicctl/internal/commands"
	"github.com/sfmadrig/nicctl/internal/compat"
	"github.com/sfmadrig/nicctl/internal/config"
	"github.com/sfmadrig/nicctl/internal/configurator"
	"github.com/sfmadrig/nicctl/internal/inventory"
	"github.com/sfmadrig/nicctl/pkg/powershell"
	"github.com/sfmadrig/nicctl/pkg/privilege"
	"github.com/sfmadrig/nicctl/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Global flags that apply to all commands
type Globals struct {
	Config string `help:"Path to configuration file" name:"config" type:"path" default:"config.yaml"`

	LogLevel   string `help:"Set log level" default:"info" enum:"trace,debug,info,warn,error,fatal,panic"`
	JsonOutput bool   `help:"Output in JSON format" name:"json" short:"j"`
	Verbose    bool   `help:"Enable verbose logging" name:"verbose" short:"v"`
}

// CLI represents the complete command line interface
type CLI struct {
	Globals

	List    commands.ListCmd    `cmd:"" help:"List physical network adapters with their current speed and duplex"`
	Info    commands.InfoCmd    `cmd:"" help:"Show details and supported speed/duplex values for one adapter"`
	Options commands.OptionsCmd `cmd:"" help:"Show the driver-advertised Speed & Duplex values for one adapter"`
	Set     commands.SetCmd     `cmd:"" help:"Apply a new speed and/or duplex value to an adapter (administrator required)"`
	Restart commands.RestartCmd `cmd:"" help:"Disable and re-enable an adapter (administrator required)"`
	Compat  commands.CompatCmd  `cmd:"" help:"Report PowerShell/WMI environment compatibility"`
	Version commands.VersionCmd `cmd:"" help:"Display the current version of nicctl"`
}

// AfterApply applies global settings after flags are parsed
func (g *Globals) AfterApply(ctx *kong.Context) error {
	// Configure logging based on flags
	if g.Verbose {
		log.SetLevel(log.TraceLevel)
	} else {
		lvl, err := log.ParseLevel(g.LogLevel)
		if err != nil {
			log.Warn(err)
			log.SetLevel(log.InfoLevel)
		} else {
			log.SetLevel(lvl)
		}
	}

	// Configure log format
	if g.JsonOutput {
		log.SetFormatter(&log.JSONFormatter{
			DisableHTMLEscape: true,
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	return nil
}

// Parse creates a new Kong parser and parses the command line
func Parse(args []string) (*kong.Context, *CLI, error) {
	var cli CLI

	helpOpts := kong.HelpOptions{Compact: true}

	parser, err := kong.New(&cli,
		kong.Name(utils.ProjectName),
		kong.Description("Manage link speed and duplex mode of Windows network adapters"),
		kong.UsageOnError(),
		kong.DefaultEnvars("NICCTL"),
		kong.ConfigureHelp(helpOpts),
	)
	if err != nil {
		return nil, nil, err
	}

	// Slice off program name if present
	var parseArgs []string
	if len(args) > 1 {
		parseArgs = args[1:]
	} else {
		parseArgs = []string{}
	}

	kctx, perr := parser.Parse(parseArgs)
	if perr == nil {
		return kctx, &cli, nil
	}

	if len(parseArgs) == 0 || strings.Contains(perr.Error(), "unexpected argument") || strings.Contains(perr.Error(), "unknown flag") {
		return nil, nil, perr
	}

	// Only intercept classic missing subcommand scenario
	if strings.Contains(perr.Error(), "expected one of") {
		PrintHelp(parser, helpOpts, parseArgs)

		return nil, &cli, nil
	}

	return nil, nil, perr
}

// PrintHelp prints contextual help without invoking the help flag exit path.
func PrintHelp(parser *kong.Kong, opts kong.HelpOptions, args []string) error {
	kctx, err := kong.Trace(parser, args)
	if err != nil {
		return err
	}

	return kong.DefaultHelpPrinter(opts, kctx)
}

// Execute parses the command line, wires the engine, and runs the selected
// command
func Execute(args []string) error {
	kctx, cliv, err := Parse(args)
	if err != nil {
		return err
	}

	if kctx == nil {
		return nil
	}

	cfg, err := config.Load(cliv.Config)
	if err != nil {
		log.Error(err)

		return err
	}

	gate := privilege.NewGate()
	checker := compat.NewChecker(gate)

	appCtx := &commands.Context{
		Gate:               gate,
		Checker:            checker,
		PowerShellOverride: cfg.PowerShell.Path,
		LogLevel:           cliv.LogLevel,
		JsonOutput:         cliv.JsonOutput,
		Verbose:            cliv.Verbose,
	}

	if needsEngine(kctx.Command()) {
		host, err := checker.ResolveHost(cfg.PowerShell.Path)
		if err != nil {
			log.Error("No working PowerShell host was found. Run 'nicctl compat' for a full environment report.")

			return err
		}

		runner := powershell.NewHostRunner(host.Path, cfg.CommandTimeout())
		inv := inventory.New(runner)

		conf := configurator.New(inv, runner, gate)
		conf.DisableWait = cfg.RestartDisableWait()
		conf.PollInterval = cfg.RestartPollInterval()

		appCtx.Inventory = inv
		appCtx.Configurator = conf
	}

	return kctx.Run(appCtx)
}

// needsEngine reports whether the selected command talks to the PowerShell
// host; version and compat must work even when no host resolves.
func needsEngine(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case utils.CommandVersion, utils.CommandCompat:
		return false
	}

	return true
}
