// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrNoCredentials is returned by the auth middleware when the request
	// carries neither an "Authorization" header nor a session cookie.
	ErrNoCredentials = errors.New("not authenticated")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParam is returned when a numeric path parameter does not
	// parse as a positive integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does
	// not match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
