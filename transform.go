package bwtrle

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
)

const (
	// indexSize is the width of the first-row index trailing a BWT block.
	indexSize = 4
	// headerSize is the width of the bitmap offset leading a compressed block.
	headerSize = 4

	// MaxBlockSize is the largest input whose compressed header still fits
	// in a signed 32-bit word.
	MaxBlockSize = math.MaxInt32 - headerSize - indexSize
)

// Transform returns the BWT block of src: len(src) permuted bytes followed by
// the 4-byte little-endian rank of the unrotated input among all sorted
// rotations.
func Transform(src []byte) ([]byte, error) {
	return AppendTransform(make([]byte, 0, len(src)+indexSize), src)
}

// AppendTransform appends the BWT block of src to dst and returns the
// extended slice.
func AppendTransform(dst, src []byte) ([]byte, error) {
	n := len(src)
	if n > MaxBlockSize {
		return dst, fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, n)
	}
	order := sortRotations(src)

	off := len(dst)
	dst = slices.Grow(dst, n+indexSize)[:off+n+indexSize]
	out := dst[off:]
	var firstRow int32
	for rank, start := range order {
		if start == 0 {
			firstRow = int32(rank)
			out[rank] = src[n-1]
			continue
		}
		out[rank] = src[start-1]
	}
	binary.LittleEndian.PutUint32(out[n:], uint32(firstRow))
	return dst, nil
}

// Inverse reconstructs the original bytes from a BWT block produced by
// Transform. It returns ErrMalformedInput if the block is shorter than its
// index or the index is out of range.
func Inverse(block []byte) ([]byte, error) {
	if len(block) < indexSize {
		return nil, fmt.Errorf("%w: bwt block of %d bytes has no index", ErrMalformedInput, len(block))
	}
	return AppendInverse(make([]byte, 0, len(block)-indexSize), block)
}

// AppendInverse appends the reconstruction of block to dst. dst must not
// overlap block.
func AppendInverse(dst, block []byte) ([]byte, error) {
	if len(block) < indexSize {
		return dst, fmt.Errorf("%w: bwt block of %d bytes has no index", ErrMalformedInput, len(block))
	}
	n := len(block) - indexSize
	last := block[:n]
	firstRow := int32(binary.LittleEndian.Uint32(block[n:]))

	if n == 0 {
		if firstRow != 0 {
			return dst, fmt.Errorf("%w: first row %d in empty block", ErrMalformedInput, firstRow)
		}
		return dst, nil
	}
	if firstRow < 0 || int(firstRow) >= n {
		return dst, fmt.Errorf("%w: first row %d outside [0,%d)", ErrMalformedInput, firstRow, n)
	}

	lf := lastToFirst(last)
	off := len(dst)
	dst = slices.Grow(dst, n)[:off+n]
	out := dst[off:]
	// Walking lf from the first row visits the input back to front.
	row := firstRow
	for i := range n {
		out[n-1-i] = last[row]
		row = lf[row]
	}
	return dst, nil
}

// lastToFirst maps every position of the last column to the row at which
// the same byte occurrence appears in the first column. Equal bytes keep
// their relative order, which is what makes the mapping invertible.
func lastToFirst(last []byte) []int32 {
	var cumm [256]int32
	for _, v := range last {
		cumm[v]++
	}
	var sum int32
	for i, v := range cumm {
		cumm[i] = sum
		sum += v
	}
	lf := make([]int32, len(last))
	for i, b := range last {
		lf[i] = cumm[b]
		cumm[b]++
	}
	return lf
}
