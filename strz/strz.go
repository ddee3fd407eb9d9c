// Package strz provides small helpers for identifier-shaped strings.
package strz

import "strings"

func IsUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func IsLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func ToUpper(c byte) byte {
	if IsLower(c) {
		return c - 32
	}
	return c
}

func ToLower(c byte) byte {
	if IsUpper(c) {
		return c + 32
	}
	return c
}

// Underscore converts "CamelCasedString" to "camel_cased_string".
// Runs of capitals are kept together: "HTTPRequest" becomes "http_request".
func Underscore(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 5)
	for i := range len(s) {
		c := s[i]
		if !IsUpper(c) {
			b.WriteByte(c)
			continue
		}
		if i > 0 && s[i-1] != '_' && (IsLower(s[i-1]) || i+1 < len(s) && IsLower(s[i+1])) {
			b.WriteByte('_')
		}
		b.WriteByte(ToLower(c))
	}
	return b.String()
}

// Camelize converts "snake_cased_string" to "SnakeCasedString".
// Hyphens and spaces separate words as well.
//
// The result is the exported Go identifier a JSON-style key most likely maps to.
func Camelize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upper := true
	for i := range len(s) {
		c := s[i]
		switch {
		case c == '_' || c == '-' || c == ' ':
			upper = true
		case upper:
			b.WriteByte(ToUpper(c))
			upper = false
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
