package service

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Fingerprint reduces the two ingredient lists to a deterministic cache key.
// Items are trimmed, lower-cased and sorted, so the same multiset of ingredients
// always produces the same key regardless of ordering, casing or which list an
// item arrived in. The normalized list is returned alongside the hash for
// persistence with the cache entry.
//
// An empty combined list is valid and yields the digest of the empty string;
// callers reject empty input before fingerprinting.
func Fingerprint(priorityItems, otherItems []string) (hash string, normalized []string) {
	normalized = make([]string, 0, len(priorityItems)+len(otherItems))
	for _, item := range priorityItems {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(item)))
	}
	for _, item := range otherItems {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(item)))
	}
	sort.Strings(normalized)

	sum := sha256.Sum256([]byte(strings.Join(normalized, "\n")))
	return hex.EncodeToString(sum[:]), normalized
}
