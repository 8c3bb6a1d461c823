// Package identity derives content identifiers for stored strings.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the content identifier for a value: the SHA-256 hex digest of
// its exact bytes. No normalization is applied, so values differing only in
// case or whitespace have different identifiers.
func Digest(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
