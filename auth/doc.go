// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds small security helpers.

# Admin Key

The admin listing exposes every code. When an admin key is configured,
ValidateAdminKey checks the caller's key in constant time:

	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey); err != nil {
		// 401
	}

An empty configured key leaves the listing open.

# IP Hashing

HashIP produces a salted 64-bit hex digest so draw logs can correlate
requests without storing addresses.

# IDs

GenerateID returns crypto/rand hex strings (salts, fallback request ids).
*/
package auth
