/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

// CustomError carries a process exit code alongside the failure message so
// main can map every failure kind to a distinct, scriptable exit status.
type CustomError struct {
	Code    int
	Message string
	Details string
}

func (e CustomError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}

	return e.Message
}

// WithDetails returns a copy of the error with the supplied diagnostic text
// attached. The code and message are preserved so exit-code mapping and
// errors.Is-style comparisons against the catalog entry keep working.
func (e CustomError) WithDetails(details string) CustomError {
	e.Details = details

	return e
}

// Is matches against the catalog entry by code, ignoring details.
func (e CustomError) Is(target error) bool {
	other, ok := target.(CustomError)
	if !ok {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}
