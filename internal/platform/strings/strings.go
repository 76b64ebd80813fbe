// Package strings provides small string helpers
package strings

import std "strings"

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// EmptyToNil returns empty string if s is all whitespace, otherwise returns s
func EmptyToNil(s string) string {
	if std.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// IfEmpty returns def if s is all whitespace, otherwise returns s
func IfEmpty(s, def string) string {
	if std.TrimSpace(s) == "" {
		return def
	}
	return s
}

// LastSegment returns the final slash-delimited segment of a path or URL
func LastSegment(s string) string {
	s = std.TrimRight(s, "/")
	if i := std.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}
