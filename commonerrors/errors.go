/*
 * Copyright (C) 2024-2026 The asynckit authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy shared by all packages of
// this module. Errors are categorised with sentinel values and matched using
// errors.Is so that callers can react to the kind of failure rather than its
// description.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalid     = errors.New("invalid")
	ErrUndefined   = errors.New("undefined")
	ErrNotFound    = errors.New("not found")
	ErrUnsupported = errors.New("unsupported")
	ErrConflict    = errors.New("conflict")
	ErrCancelled   = errors.New("cancelled")
	ErrTimeout     = errors.New("timeout")
	ErrEOF         = errors.New("end of collection")
	ErrUnknown     = errors.New("unknown")
)

// Any returns whether target matches any of the errors provided.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None returns whether target matches none of the errors provided.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// New creates an error of kind errKind with the given description.
// The returned error matches errKind with errors.Is.
func New(errKind error, description string) error {
	return fmt.Errorf("%w: %v", errKind, description)
}

// Newf creates an error of kind errKind with a formatted description.
func Newf(errKind error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", errKind, fmt.Sprintf(format, args...))
}

// WrapError wraps err into an error of kind errKind, retaining err's
// description. If msg is not empty, it is prepended to the description.
func WrapError(errKind, err error, msg string) error {
	if err == nil {
		return New(errKind, msg)
	}
	if msg == "" {
		return fmt.Errorf("%w: %v", errKind, err.Error())
	}
	return fmt.Errorf("%w: %v: %v", errKind, msg, err.Error())
}

// WrapErrorf is similar to WrapError but formats the message.
func WrapErrorf(errKind, err error, format string, args ...any) error {
	return WrapError(errKind, err, fmt.Sprintf(format, args...))
}

// CorrespondTo determines whether the error description corresponds to any of
// the descriptions provided. The comparison is case-insensitive and matches
// substrings.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// Ignore returns nil if err matches any of the errors to ignore and err
// otherwise.
func Ignore(err error, ignores ...error) error {
	if Any(err, ignores...) {
		return nil
	}
	return err
}
