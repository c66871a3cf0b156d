package bwtrle

import (
	"cmp"
	"slices"
)

// sortRotations returns the start offsets of every cyclic rotation of src in
// ascending lexicographic order. Rotations compare as infinite cyclic
// strings; rotations equal in all len(src) positions keep ascending start
// order, so offset 0 always ranks first among its equals.
//
// The order is built by prefix doubling: after the round with shift k, rank[i]
// orders the rotations by their first 2k bytes. Once 2k >= len(src) equal
// ranks mean identical rotations and the start offset decides.
func sortRotations(src []byte) []int32 {
	n := len(src)
	order := make([]int32, n)
	if n == 0 {
		return order
	}
	var (
		rank = make([]int32, n)
		next = make([]int32, n)
	)
	for i := range n {
		order[i] = int32(i)
		rank[i] = int32(src[i])
	}

	for k := 1; ; k <<= 1 {
		shift := int32(k % n)
		second := func(i int32) int32 {
			j := i + shift
			if j >= int32(n) {
				j -= int32(n)
			}
			return rank[j]
		}
		slices.SortFunc(order, func(a, b int32) int {
			if c := cmp.Compare(rank[a], rank[b]); c != 0 {
				return c
			}
			if c := cmp.Compare(second(a), second(b)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})

		// re-rank on the 2k-byte window
		next[order[0]] = 0
		for i := 1; i < n; i++ {
			prev, cur := order[i-1], order[i]
			r := next[prev]
			if rank[prev] != rank[cur] || second(prev) != second(cur) {
				r++
			}
			next[cur] = r
		}
		rank, next = next, rank

		if rank[order[n-1]] == int32(n-1) || 2*k >= n {
			break
		}
	}
	return order
}
