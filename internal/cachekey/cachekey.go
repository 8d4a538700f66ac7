// Package cachekey derives content-addressed cache keys for uploaded images.
//
// The key is the lowercase hex SHA-256 digest of the raw upload bytes. The
// choice of SHA-256 is a wire contract, not an implementation detail: cache
// entries written by one version (or one language implementation) of the
// service must remain readable by another, so the digest algorithm cannot
// change without invalidating every deployed cache.
package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
)

// Compute returns the cache key for the given image bytes. Identical bytes
// always produce identical keys, regardless of filename or origin.
func Compute(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
