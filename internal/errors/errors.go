// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate errors.
//
// The Error type carries a classification code so that callers can react to
// the kind of failure without matching on message strings. Packages in this
// repository use Panic and Recover to propagate errors out of deeply nested
// bit-level loops; Recover converts such panics back into ordinary errors at
// the API boundary and re-panics on anything that is not one of ours.
package errors

import (
	"runtime"
	"strings"
)

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	Internal

	// Invalid indicates that this error is due to the user misusing the API
	// and is not related to the contents of the input stream.
	Invalid

	// Corrupted indicates that the input bit stream is structurally invalid
	// or encodes a value that cannot be represented in the requested type.
	Corrupted
)

func IsInternal(err error) bool  { return isCode(err, Internal) }
func IsInvalid(err error) bool   { return isCode(err, Invalid) }
func IsCorrupted(err error) bool { return isCode(err, Corrupted) }

func isCode(err error, code int) bool {
	if cerr, ok := err.(Error); ok && cerr.Code == code {
		return true
	}
	return false
}

// Error is the wrapper type for errors specific to this repository.
type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	return strings.Join(ss, ": ")
}

func (e Error) IsInternal() bool  { return e.Code == Internal }
func (e Error) IsInvalid() bool   { return e.Code == Invalid }
func (e Error) IsCorrupted() bool { return e.Code == Corrupted }

// Recover recovers a panicked error value into err.
// Panics with runtime errors or with values that do not implement the error
// interface are not recovered.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// Panic panics with the given error.
func Panic(err error) {
	panic(err)
}
