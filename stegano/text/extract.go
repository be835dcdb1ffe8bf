package text

import (
	"strings"
)

// Extract collects the values of every mark of the scheme found in s,
// in order. Everything else is ignored.
func Extract(s string, scheme Scheme) []int {
	result := []int{}
	for _, r := range s {
		if v, ok := scheme.FromSelector(r); ok {
			result = append(result, v)
		}
	}
	return result
}

// ExtractSegments splits s on whitespace and concatenates the values
// extracted from every segment, in segment order.
func ExtractSegments(s string, scheme Scheme) []int {
	result := []int{}
	for _, part := range strings.Fields(s) {
		result = append(result, Extract(part, scheme)...)
	}
	return result
}

// Candidates returns every scalar value of s at or above MarkThreshold.
func Candidates(s string) []rune {
	result := []rune{}
	for _, r := range s {
		if r >= MarkThreshold {
			result = append(result, r)
		}
	}
	return result
}

// StripSelectors removes every mark of the scheme from s.
func StripSelectors(s string, scheme Scheme) string {
	return strings.Map(func(r rune) rune {
		if _, ok := scheme.FromSelector(r); ok {
			return -1
		}
		return r
	}, s)
}
