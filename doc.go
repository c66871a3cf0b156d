// Package bwtrle provides a reversible block codec built from a
// Burrows–Wheeler Transform followed by a bitmap-tagged run-length layer.
//
// # Overview
//
// The Burrows–Wheeler Transform (BWT) permutes a block so that bytes sharing
// a context end up next to each other. The run-length layer then folds every
// pair of equal adjacent bytes into a single stored byte (a literal) and
// records one bit per literal saying whether it stands for one or two bytes.
//
// # Format
//
// A BWT block is the permuted bytes followed by the rank of the original
// rotation:
//
//	+----------------------+-----------------------+
//	| N permuted bytes     | first row (int32, LE) |
//	+----------------------+-----------------------+
//
// A compressed block stores the offset of its bitmap, the literals, and the
// bitmap itself, packed LSB-first (bit k lives in byte k/8 at offset k%8):
//
//	+-------------------------+----------------+---------------------+
//	| bitmap offset (int32,LE)| L literals     | ceil(L/8) bitmap    |
//	+-------------------------+----------------+---------------------+
//
// The bitmap offset is always 4+L. An empty input encodes to the 4-byte
// header alone.
//
// # When to Use
//
// The layer only ever collapses runs of exactly two bytes, so the best case
// is roughly a 2x reduction minus one bit per literal. It works well on
// natural-language text and other inputs where BWT produces long runs, and
// expands random data by about 1/8.
//
// # Basic Usage
//
//	src := []byte("banana")
//	dst := make([]byte, bwtrle.MaxEncodedLen(len(src)))
//	n, err := bwtrle.Encode(dst, src)
//	if err != nil {
//	    // ErrCapacityExceeded if dst is too small
//	}
//
//	out := make([]byte, 64)
//	m, err := bwtrle.Decode(out, dst[:n])
//	_ = out[:m] // "banana"
//
// Encode and Decode report ErrCapacityExceeded when the destination cannot
// hold the result and ErrMalformedInput when a block fails validation. No
// partial output is ever reported as a success.
//
// # Performance Characteristics
//
// Forward BWT: O(n log² n) rotation sort by prefix doubling
// Inverse BWT: O(n) with a counting sort over the last column
// Run-length layer: O(n) in both directions
//
// All functions are stateless and safe for concurrent use on disjoint buffers.
package bwtrle
