// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant string to integer conversions.

Contextual arguments rely on the lenient form: anything that does not parse
as an integer, including the empty string, becomes 0.

Do not use this package where malformed input must be told apart from zero;
use [strconv] directly instead.
*/
package convert

import (
	"strconv"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ToIntD converts a string to an int, returning def if parsing fails or the string is empty.
func ToIntD(s string, def int) int {
	if s == "" {
		return def
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
