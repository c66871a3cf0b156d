package bwtrle

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// naiveRotations sorts rotations with a full cyclic comparison and a stable
// sort, the straightforward O(n² log n) reference.
func naiveRotations(src []byte) []int32 {
	n := len(src)
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	slices.SortStableFunc(order, func(a, b int32) int {
		for i := range n {
			ca := src[(int(a)+i)%n]
			cb := src[(int(b)+i)%n]
			if ca != cb {
				return cmp.Compare(ca, cb)
			}
		}
		return 0
	})
	return order
}

func TestSortRotationsMatchesNaive(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"ab",
		"ba",
		"banana",
		"abab",
		"aaaa",
		"abcabcabc",
		"mississippi",
		"a_asa_da_casaa",
		strings.Repeat("xy", 33),
		"\x00\xff\x00\xff\x01",
	}
	for _, in := range inputs {
		require.Equal(t, naiveRotations([]byte(in)), sortRotations([]byte(in)), "input %q", in)
	}
}

func TestSortRotationsRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		n := rng.IntN(300)
		alphabet := 1 + rng.IntN(4)
		src := make([]byte, n)
		for i := range src {
			src[i] = byte('a' + rng.IntN(alphabet))
		}
		require.Equal(t, naiveRotations(src), sortRotations(src), "input %q", src)
	}
}

func TestSortRotationsPeriodicKeepsStartOrder(t *testing.T) {
	should := require.New(t)
	// every rotation of "abcabc" has an identical twin three places away
	should.Equal([]int32{0, 3, 1, 4, 2, 5}, sortRotations([]byte("abcabc")))
	should.Equal([]int32{0, 1, 2, 3, 4}, sortRotations([]byte("zzzzz")))
}

func BenchmarkSortRotations(b *testing.B) {
	src := []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 100))
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sortRotations(src)
	}
}
