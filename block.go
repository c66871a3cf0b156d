package bwtrle

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Block is the parsed form of a compressed block: the stored literals and
// the packed bitmap flagging which of them stand for a doubled byte.
// A Block can be serialized with WriteTo and restored with ReadFrom.
type Block struct {
	Literals []byte // one stored byte per literal
	Repeats  []byte // packed flags, ceil(len(Literals)/8) bytes
}

// Repeated reports whether literal k represents two equal adjacent bytes.
func (b *Block) Repeated(k int) bool {
	return bitmap(b.Repeats).get(k)
}

// Size returns the serialized size of the block in bytes.
func (b *Block) Size() int {
	return headerSize + len(b.Literals) + bitmapLen(len(b.Literals))
}

// DecodedLen returns the length of the BWT block the literals expand to.
func (b *Block) DecodedLen() int {
	return len(b.Literals) + bitmap(b.Repeats).count(len(b.Literals))
}

func (b *Block) validate() error {
	if want := bitmapLen(len(b.Literals)); len(b.Repeats) != want {
		return fmt.Errorf("%w: bitmap is %d bytes, want %d", ErrMalformedInput, len(b.Repeats), want)
	}
	if len(b.Literals) > maxLiterals {
		return fmt.Errorf("%w: %d literals", ErrBlockTooLarge, len(b.Literals))
	}
	return nil
}

// maxLiterals is the largest literal count whose bitmap offset fits in int32.
const maxLiterals = MaxBlockSize + indexSize

// compact folds a BWT block into literals and repeat flags. A literal covers
// two bytes when the byte after it is equal, so runs longer than two are
// split pairwise from the left. It fails with ErrCapacityExceeded as soon as
// the serialized block would no longer fit in capacity bytes.
func compact(bwt []byte, capacity int) (Block, error) {
	var (
		literals = make([]byte, 0, len(bwt))
		repeats  = make(bitmap, bitmapLen(len(bwt)))
	)
	for pos := 0; pos < len(bwt); {
		c := bwt[pos]
		pos++
		repeat := pos < len(bwt) && bwt[pos] == c
		if repeat {
			pos++
		}
		k := len(literals)
		if need := headerSize + k + 1 + bitmapLen(k+1); need > capacity {
			return Block{}, fmt.Errorf("%w: need more than %d bytes", ErrCapacityExceeded, capacity)
		}
		literals = append(literals, c)
		if repeat {
			repeats.set(k)
		}
	}
	return Block{
		Literals: literals,
		Repeats:  repeats[:bitmapLen(len(literals))],
	}, nil
}

// expand writes the BWT block encoded by b into dst, which must hold at
// least b.DecodedLen() bytes, and returns the number of bytes written.
func (b *Block) expand(dst []byte) int {
	repeats := bitmap(b.Repeats)
	pos := 0
	for k, c := range b.Literals {
		dst[pos] = c
		pos++
		if repeats.get(k) {
			dst[pos] = c
			pos++
		}
	}
	return pos
}

// put serializes b into dst, which must hold at least b.Size() bytes.
func (b *Block) put(dst []byte) int {
	binary.LittleEndian.PutUint32(dst, uint32(headerSize+len(b.Literals)))
	n := headerSize
	n += copy(dst[n:], b.Literals)
	n += copy(dst[n:], b.Repeats)
	return n
}

// parseBlock validates src as a compressed block and returns a view over it.
// The returned Block aliases src. Bytes past the bitmap are ignored.
func parseBlock(src []byte) (Block, error) {
	if len(src) < headerSize {
		return Block{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedInput, len(src))
	}
	offset := int32(binary.LittleEndian.Uint32(src))
	if offset < headerSize || int(offset) > len(src) {
		return Block{}, fmt.Errorf("%w: bitmap offset %d outside [%d,%d]", ErrMalformedInput, offset, headerSize, len(src))
	}
	literals := src[headerSize:offset:offset]
	end := int(offset) + bitmapLen(len(literals))
	if end > len(src) {
		return Block{}, fmt.Errorf("%w: bitmap truncated, need %d bytes, have %d", ErrMalformedInput, end, len(src))
	}
	return Block{
		Literals: literals,
		Repeats:  src[offset:end:end],
	}, nil
}

// WriteTo serializes the block to w.
// Layout:
// - 4 bytes bitmap offset (int32, little-endian), equal to 4+len(Literals)
// - literals
// - bitmap
func (b *Block) WriteTo(w io.Writer) (int64, error) {
	if err := b.validate(); err != nil {
		return 0, err
	}
	var (
		n    int64
		buf4 [headerSize]byte
	)
	binary.LittleEndian.PutUint32(buf4[:], uint32(headerSize+len(b.Literals)))
	for _, part := range [][]byte{buf4[:], b.Literals, b.Repeats} {
		nn, err := w.Write(part)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadFrom deserializes a block from r. It reads exactly one block and
// leaves anything after the bitmap unread.
func (b *Block) ReadFrom(r io.Reader) (int64, error) {
	*b = Block{}
	var (
		n   int64
		hdr [headerSize]byte
	)
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return n, err
	}
	n += headerSize
	offset := int32(binary.LittleEndian.Uint32(hdr[:]))
	if offset < headerSize {
		return n, fmt.Errorf("%w: bitmap offset %d", ErrMalformedInput, offset)
	}
	count := int64(offset) - headerSize

	// Grow with the data actually read rather than trusting the header.
	var lit bytes.Buffer
	nn, err := io.CopyN(&lit, r, count)
	n += nn
	if err != nil {
		return n, fmt.Errorf("%w: reading %d literals: %w", ErrMalformedInput, count, err)
	}
	repeats := make([]byte, bitmapLen(int(count)))
	m, err := io.ReadFull(r, repeats)
	n += int64(m)
	if err != nil {
		return n, fmt.Errorf("%w: reading bitmap: %w", ErrMalformedInput, err)
	}
	b.Literals = lit.Bytes()
	b.Repeats = repeats
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Block) MarshalBinary() ([]byte, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, b.Size())
	b.put(buf)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) error {
	_, err := b.ReadFrom(bytes.NewReader(data))
	return err
}
