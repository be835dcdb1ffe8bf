package text

import (
	"unicode"
)

// IsLikelyText tells whether s looks like a real message rather than
// noise, using DefaultThreshold.
func IsLikelyText(s string) bool {
	return LikelyText(s, DefaultThreshold)
}

// LikelyText accepts s when the share of letters, numbers, punctuation
// and space separators is strictly greater than threshold.
func LikelyText(s string, threshold float64) bool {
	total, printable := 0, 0
	for _, r := range s {
		total++
		if unicode.In(r, unicode.L, unicode.N, unicode.P, unicode.Zs) {
			printable++
		}
	}
	if total == 0 {
		return false
	}
	return float64(printable)/float64(total) > threshold
}
