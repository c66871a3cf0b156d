package bwtrle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitmapLayout(t *testing.T) {
	should := require.New(t)
	should.Equal(0, bitmapLen(0))
	should.Equal(1, bitmapLen(1))
	should.Equal(1, bitmapLen(8))
	should.Equal(2, bitmapLen(9))

	b := make(bitmap, bitmapLen(9))
	b.set(0)
	b.set(3)
	b.set(8)
	// LSB-first: bit 8 is the lowest bit of byte 1
	should.Equal(bitmap{0x09, 0x01}, b)
	should.True(b.get(0))
	should.False(b.get(1))
	should.True(b.get(3))
	should.True(b.get(8))
}

func TestBitmapCount(t *testing.T) {
	should := require.New(t)
	b := bitmap{0xff, 0xff}
	should.Equal(0, b.count(0))
	should.Equal(8, b.count(8))
	should.Equal(9, b.count(9))
	should.Equal(16, b.count(16))

	// padding past n is ignored
	b = bitmap{0x05, 0xfe}
	should.Equal(2, b.count(9))
	should.Equal(3, b.count(10))
}
