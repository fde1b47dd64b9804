package sha256

import (
	"github.com/zeebo/sha256/internal/consts"
)

// hashBlocks folds the blocks of p into state in order. p must be a whole
// number of blocks.
func hashBlocks(state *[8]uint32, p []byte) {
	if len(p)%consts.BlockLen != 0 {
		panic("sha256: partial block")
	}

	var w [consts.Rounds]uint32
	for len(p) > 0 {
		schedule((*[consts.BlockLen]byte)(p), &w)
		compress(state, &w)
		p = p[consts.BlockLen:]
	}
}

// hash runs the whole pipeline for data. Only the final partial block and the
// padding are copied; every whole block is read in place.
func hash(data []byte) (Digest, error) {
	full := len(data) &^ (consts.BlockLen - 1)

	var buf [2 * consts.BlockLen]byte
	tail := append(buf[:0], data[full:]...)
	tail, err := appendPadding(tail, uint64(len(data)))
	if err != nil {
		return Digest{}, err
	}

	state := consts.IV
	hashBlocks(&state, data[:full])
	hashBlocks(&state, tail)

	return serialize(&state), nil
}
