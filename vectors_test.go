package sha256

import "strings"

var vectors = []struct {
	name string
	data string
	hash string
}{
	{
		name: "Empty",
		data: "",
		hash: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		name: "ABC",
		data: "abc",
		hash: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		name: "TwoBlock448",
		data: "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		hash: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		name: "TwoBlock896",
		data: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno" +
			"ijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		hash: "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
	},
	{
		name: "HelloWorld",
		data: "hello world",
		hash: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
	},
	{
		name: "QuickBrownFox",
		data: "The quick brown fox jumps over the lazy dog",
		hash: "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
	},
	{
		name: "MillionA",
		data: strings.Repeat("a", 1000000),
		hash: "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
	},
}

// boundaries are message lengths that straddle the one and two block
// padding cases.
var boundaries = []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 118, 119, 120, 121, 127, 128, 129}

func patterned(n int) []byte {
	x := make([]byte, n)
	for i := range x {
		x[i] = byte(i) % 251
	}
	return x
}
