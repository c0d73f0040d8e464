package common

import "strings"

// UnknownStr is the String() value for out-of-range enum values.
const UnknownStr = "unknown"

// SplitLast splits s around the last occurrence of sep.
// ok is false when sep does not occur in s.
func SplitLast(s, sep string) (before, after string, ok bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+len(sep):], true
}
