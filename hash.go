package namecast

import (
	"crypto/sha256"
	"encoding/hex"
)

// EmptyContextHash is the sentinel digest used when no context is supplied.
// An empty context string and an absent context are deliberately treated the
// same; the sentinel cannot collide with a real digest (hex only).
const EmptyContextHash = "none"

// contextHashLen is the number of hex characters kept from the digest.
// Determinism across runs is what matters here, not cryptographic strength.
const contextHashLen = 12

// ContextHash computes a stable digest of a translation context.
func ContextHash(context string) string {
	if context == "" {
		return EmptyContextHash
	}
	sum := sha256.Sum256([]byte(context))
	return hex.EncodeToString(sum[:])[:contextHashLen]
}

// BuildKey derives the composite cache key for a translation request.
// Two requests share a cache entry iff format, context and source text
// are all identical.
func BuildKey(format OutputFormat, context, text string) string {
	return string(format) + "|" + ContextHash(context) + "|" + text
}
