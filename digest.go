package llmtxt

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest computes the SHA-256 hex digest of the UTF-8 encoding of text.
// It is a pure function of its input; the digest of the empty string is
// well-defined and stable across runs.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
