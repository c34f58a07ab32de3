package symtab

import "unicode/utf8"

// HashIndex buckets identifier names by a fixed modular hash.  The bucket
// count equals the number of distinct names and never changes; collisions
// chain in insertion order.
type HashIndex struct {
	buckets [][]string
}

// BucketOf computes the bucket of a name for a given bucket count:
// (length(name) + codepoint(name[0])) mod count.  It returns -1 when there are
// no buckets.
func BucketOf(name string, count int) int {
	if count <= 0 {
		return -1
	}

	var first rune
	if name != "" {
		first, _ = utf8.DecodeRuneInString(name)
	}

	return (utf8.RuneCountInString(name) + int(first)) % count
}

// NewHashIndex builds an index over the distinct names in names, chaining
// them in the order given.
func NewHashIndex(names []string) *HashIndex {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			distinct = append(distinct, name)
		}
	}

	h := &HashIndex{buckets: make([][]string, len(distinct))}
	for _, name := range distinct {
		b := BucketOf(name, len(h.buckets))
		h.buckets[b] = append(h.buckets[b], name)
	}

	return h
}

// Len returns the number of buckets.
func (h *HashIndex) Len() int {
	return len(h.buckets)
}

// Bucket returns the bucket a name hashes to.
func (h *HashIndex) Bucket(name string) int {
	return BucketOf(name, len(h.buckets))
}

// Chain returns the names stored in bucket b.
func (h *HashIndex) Chain(b int) []string {
	if b < 0 || b >= len(h.buckets) {
		return nil
	}

	return h.buckets[b]
}

// Lookup returns whether a name is stored in the index.
func (h *HashIndex) Lookup(name string) bool {
	for _, stored := range h.Chain(h.Bucket(name)) {
		if stored == name {
			return true
		}
	}

	return false
}
