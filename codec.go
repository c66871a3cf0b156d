package bwtrle

import (
	"encoding/binary"
	"fmt"
)

// MaxEncodedLen returns a destination size that is always large enough to
// encode n input bytes.
func MaxEncodedLen(n int) int {
	if n == 0 {
		return headerSize
	}
	return headerSize + n + indexSize + bitmapLen(n+indexSize)
}

// Encode compresses src into dst and returns the number of bytes written.
// The capacity of the output is len(dst). If the compressed block does not
// fit, Encode returns 0 and ErrCapacityExceeded; the contents of dst are
// then unspecified.
func Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		if len(dst) < headerSize {
			return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrCapacityExceeded, headerSize, len(dst))
		}
		binary.LittleEndian.PutUint32(dst, headerSize)
		return headerSize, nil
	}
	bwt, err := Transform(src)
	if err != nil {
		return 0, err
	}
	blk, err := compact(bwt, len(dst))
	if err != nil {
		return 0, err
	}
	return blk.put(dst), nil
}

// EncodeAll compresses src and returns a newly allocated, exactly sized
// compressed block.
func EncodeAll(src []byte) ([]byte, error) {
	buf := make([]byte, MaxEncodedLen(len(src)))
	n, err := Encode(buf, src)
	if err != nil {
		return nil, err
	}
	return buf[:n:n], nil
}

// DecodedLen returns the destination size Decode needs for src: the length
// of the intermediate BWT block, which is four bytes more than the
// decompressed data.
func DecodedLen(src []byte) (int, error) {
	blk, err := parseBlock(src)
	if err != nil {
		return 0, err
	}
	return blk.DecodedLen(), nil
}

// Decode decompresses src into dst and returns the number of bytes of
// original data written. len(dst) must be at least DecodedLen(src);
// otherwise Decode returns 0 and ErrCapacityExceeded without running the
// inverse transform. Malformed blocks yield ErrMalformedInput.
func Decode(dst, src []byte) (int, error) {
	blk, err := parseBlock(src)
	if err != nil {
		return 0, err
	}
	size := blk.DecodedLen()
	if size == 0 {
		return 0, nil
	}
	if len(dst) < size {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrCapacityExceeded, size, len(dst))
	}
	bwt := make([]byte, size)
	blk.expand(bwt)
	out, err := AppendInverse(dst[:0], bwt)
	if err != nil {
		return 0, err
	}
	return len(out), nil
}

// DecodeAll decompresses src and returns a newly allocated byte slice with
// the result.
func DecodeAll(src []byte) ([]byte, error) {
	size, err := DecodedLen(src)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	n, err := Decode(buf, src)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
