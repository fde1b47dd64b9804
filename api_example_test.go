package sha256_test

import (
	"context"
	"fmt"

	"github.com/zeebo/sha256"
)

func ExampleHash() {
	digest, err := sha256.Hash([]byte("abc"))
	if err != nil {
		panic(err)
	}

	fmt.Println(digest)
	//output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

func ExampleHashHex() {
	h, err := sha256.HashHex(nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(h)
	//output:
	// e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
}

func ExampleHashString() {
	digest, err := sha256.HashString("hello world")
	if err != nil {
		panic(err)
	}

	fmt.Println(digest)
	//output:
	// b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9
}

func ExampleParseDigest() {
	d1, err := sha256.ParseDigest("BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD")
	if err != nil {
		panic(err)
	}

	d2, err := sha256.HashString("abc")
	if err != nil {
		panic(err)
	}

	fmt.Println(d1.Equal(d2))
	//output:
	// true
}

func ExampleHashAll() {
	digests, err := sha256.HashAll(context.Background(), [][]byte{
		[]byte("abc"),
		[]byte("hello world"),
	}, 2)
	if err != nil {
		panic(err)
	}

	for _, d := range digests {
		fmt.Println(d)
	}
	//output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
	// b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9
}

func ExampleSum256() {
	digest := sha256.Sum256([]byte("The quick brown fox jumps over the lazy dog"))

	fmt.Printf("%x\n", digest[:])
	//output:
	// d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592
}
