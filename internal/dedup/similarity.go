package dedup

import (
	"strings"

	"github.com/agext/levenshtein"
)

// Similarity scores two strings in [0, 1]: 1.0 for identical input,
// trending to 0 as edits pile up. Symmetric and case-insensitive.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return levenshtein.Similarity(a, b, levenshtein.NewParams())
}
