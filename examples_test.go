package bwtrle

import (
	"fmt"
)

func Example() {
	src := []byte("banana")
	dst := make([]byte, MaxEncodedLen(len(src)))
	n, err := Encode(dst, src)
	if err != nil {
		panic(err)
	}
	out := make([]byte, 16)
	m, err := Decode(out, dst[:n])
	if err != nil {
		panic(err)
	}
	fmt.Println(n, string(out[:m]))
	// Output:
	// 12 banana
}

func ExampleTransform() {
	block, err := Transform([]byte("banana"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s %v\n", block[:6], block[6:])
	// Output:
	// nnbaaa [3 0 0 0]
}
