package utils

import (
	"strconv"
	"strings"
)

// ParseOptionalFloat parses a numeric query parameter. Empty, blank or
// malformed input means the value is absent, not zero.
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParsePositiveInt parses an integer query parameter, falling back to
// def when the input is missing, malformed or not positive.
func ParsePositiveInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	value, err := strconv.Atoi(s)
	if err != nil || value <= 0 {
		return def
	}
	return value
}
