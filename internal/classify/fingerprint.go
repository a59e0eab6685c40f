package classify

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint computes the cache key for ticket text: whitespace is
// collapsed and case folded so trivially different copies of the same
// ticket share a classification.
func Fingerprint(text string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
