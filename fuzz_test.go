package sha256

import (
	"crypto/sha256"
	"testing"

	"github.com/zeebo/sha256/ref"
)

func FuzzHash(f *testing.F) {
	for _, tv := range vectors[:len(vectors)-1] {
		f.Add([]byte(tv.data))
	}
	for _, n := range boundaries {
		f.Add(patterned(n))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		d, err := Hash(data)
		if err != nil {
			t.Fatal(err)
		}
		if exp := sha256.Sum256(data); d != exp {
			t.Fatalf("got: %x, exp: %x", d, exp)
		}
		if exp := ref.Sum(data); d != exp {
			t.Fatalf("got: %x, ref: %x", d, exp)
		}
	})
}
