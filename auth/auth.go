// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"math"
	"strconv"
)

// CheckPasscode reports whether a decoded JSON password matches a
// location's passcode. Only numbers can match: a JSON string such as "3333"
// is never valid, nor is a fractional or out-of-range number.
func CheckPasscode(passcode int, password any) bool {
	supplied, ok := passcodeValue(password)
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare(
		[]byte(strconv.FormatInt(int64(passcode), 10)),
		[]byte(strconv.FormatInt(supplied, 10)),
	) == 1
}

func passcodeValue(password any) (int64, bool) {
	switch v := password.(type) {
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
