// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuidv7 generates time-ordered identifiers for request correlation.

Version 7 values sort by creation time, so request IDs in logs line up with
the order requests arrived.
*/
package uuidv7

import "github.com/google/uuid"

// New returns a UUIDv7 string. If the clock source fails it falls back to a
// random v4 value rather than returning an error; callers only need uniqueness.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
