package textio

import (
	"errors"
	"strconv"
	"strings"
)

// ParseInt converts s to a 32-bit integer.
func ParseInt(s string) (int, Status) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, FormatError
	}
	return int(v), NoError
}

// ParseInt64 converts s to a 64-bit integer.
func ParseInt64(s string) (int64, Status) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, FormatError
	}
	return v, NoError
}

// ParseFloat32 converts s to a single precision float. Values too large
// to represent become infinities rather than errors.
func ParseFloat32(s string) (float32, Status) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, FormatError
	}
	return float32(v), NoError
}

// ParseFloat64 converts s to a double precision float. Values too large
// to represent become infinities rather than errors.
func ParseFloat64(s string) (float64, Status) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, FormatError
	}
	return v, NoError
}

// ParseBool reports whether s is "true", ignoring case. Any other text is
// false; it is never an error.
func ParseBool(s string) (bool, Status) {
	return strings.EqualFold(s, "true"), NoError
}

// FormatInt returns the decimal form of v.
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat returns the shortest form of v that parses back to it.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatBool returns "true" or "false".
func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}
