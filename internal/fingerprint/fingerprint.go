// Package fingerprint computes the stable FNV-64 fingerprint of
// arbitrary keys, the hash the runtime contract (spec §5, §9) names
// explicitly for key-based exchange partitioning: "the caller's runtime
// must route by the FNV-64 (or equivalent stable hash) fingerprint of
// the partition key." It is used internally as a deterministic
// ordering key for the merge-sort engine, standing in for the
// partition routing a multi-worker runtime would perform.
package fingerprint

import (
	"fmt"
	"hash/fnv"
)

// Of returns the FNV-64a fingerprint of d's canonical Go-syntax
// representation. It is deterministic for any comparable value built
// from basic types, strings, and structs thereof.
func Of[D any](d D) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, `%#v`, d)
	return h.Sum64()
}
