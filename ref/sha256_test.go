package ref

import (
	"crypto/sha256"
	"testing"

	"github.com/zeebo/assert"
)

func TestSum(t *testing.T) {
	for n := 0; n <= 300; n++ {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i) % 251
		}
		assert.Equal(t, Sum(msg), sha256.Sum256(msg))
	}
}

func TestPad(t *testing.T) {
	for n := 0; n <= 200; n++ {
		p := Pad(make([]byte, n))
		assert.Equal(t, len(p)%blockLen, 0)
		assert.That(t, len(p) > n)
		assert.Equal(t, p[n], byte(0x80))
		assert.Equal(t, len(Split(p)), len(p)/blockLen)
	}
}

func TestRotr(t *testing.T) {
	assert.Equal(t, rotr(1, 1), uint32(0x80000000))
	assert.Equal(t, rotr(0x80000000, 31), uint32(1))
	assert.Equal(t, rotr(0x12345678, 8), uint32(0x78123456))
}
