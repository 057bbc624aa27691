// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assign

import "errors"

var (
	ErrInvalidInput = errors.New("code is required")
	ErrNotFound     = errors.New("code not found")
	ErrAlreadyUsed  = errors.New("code already used")
	ErrNoCandidates = errors.New("no candidates available")

	// ErrInvalidData wraps every invariant violation reported by Validate
	ErrInvalidData = errors.New("invalid participant data")
)
