package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Algorithm represents the hashing algorithm to use
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
)

// etagLength is the number of hex characters kept in an ETag
const etagLength = 16

// Hasher computes content digests
type Hasher struct {
	algorithm Algorithm
}

// NewHasher creates a new hasher with the specified algorithm
func NewHasher(algorithm Algorithm) *Hasher {
	return &Hasher{algorithm: algorithm}
}

// DefaultHasher returns a hasher with the default algorithm
func DefaultHasher() *Hasher {
	return NewHasher(SHA256)
}

// Hash computes a hex digest of data
func (h *Hasher) Hash(data []byte) string {
	switch h.algorithm {
	case SHA256:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	default:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:])
	}
}

// HashString computes a digest of a string
func (h *Hasher) HashString(s string) string {
	return h.Hash([]byte(s))
}

// HashFields computes an order-independent digest of several fields
func (h *Hasher) HashFields(fields ...string) string {
	sorted := make([]string, len(fields))
	copy(sorted, fields)
	sort.Strings(sorted)
	return h.HashString(strings.Join(sorted, "|"))
}

// ETag returns a strong, quoted entity tag for a response body
func (h *Hasher) ETag(body string) string {
	return `"` + h.HashString(body)[:etagLength] + `"`
}

// MatchesETag reports whether an If-None-Match header value matches etag.
// It accepts comma-separated lists, weak validators and "*".
func MatchesETag(ifNoneMatch, etag string) bool {
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
