package sha256

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

// schedule expands block into the 64 words consumed by compress.
func schedule(block *[consts.BlockLen]byte, w *[consts.Rounds]uint32) {
	utils.BytesToWords(block, (*[16]uint32)(w[:16]))

	for i := 16; i < consts.Rounds; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}
}
