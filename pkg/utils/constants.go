/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

type ReturnCode int

var ProjectVersion string = "Development Build"

const (
	// ProjectName is the name of the executable
	ProjectName = "nicctl"

	// Unknown is the sentinel reported when a driver does not expose a
	// property or the underlying query failed.
	Unknown = "Unknown"

	CommandList    = "list"
	CommandInfo    = "info"
	CommandOptions = "options"
	CommandSet     = "set"
	CommandRestart = "restart"
	CommandCompat  = "compat"
	CommandVersion = "version"

	// Return Codes
	Success ReturnCode = 0
)

// (1-19) Basic errors
var (
	IncorrectPermissions           = CustomError{Code: 1, Message: "IncorrectPermissions"}
	HelpRequested                  = CustomError{Code: 5, Message: "flag: help requested"}
	GenericFailure                 = CustomError{Code: 10, Message: "GenericFailure"}
	IncorrectCommandLineParameters = CustomError{Code: 11, Message: "IncorrectCommandLineParameters"}
	FailedReadingConfiguration     = CustomError{Code: 12, Message: "FailedReadingConfiguration"}
)

// (20-49) Adapter engine errors
var (
	NoPowerShellAvailable  = CustomError{Code: 20, Message: "NoPowerShellAvailable", Details: "no working PowerShell host was found"}
	AdapterNotFound        = CustomError{Code: 21, Message: "AdapterNotFound"}
	UnsupportedValue       = CustomError{Code: 22, Message: "UnsupportedValue"}
	InsufficientPrivilege  = CustomError{Code: 23, Message: "InsufficientPrivilege", Details: "administrator privileges are required to change adapter settings"}
	CommandError           = CustomError{Code: 24, Message: "CommandError"}
	CommandTimeout         = CustomError{Code: 25, Message: "CommandTimeout"}
	PartialRestart         = CustomError{Code: 26, Message: "PartialRestart", Details: "adapter was disabled but could not be re-enabled; manual intervention required"}
	ElevationRequestFailed = CustomError{Code: 27, Message: "ElevationRequestFailed"}
	AdapterQueryFailed     = CustomError{Code: 28, Message: "AdapterQueryFailed"}
)
