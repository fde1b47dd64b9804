package sha256

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
)

func bigSigma0(a uint32) uint32 {
	return bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
}

func bigSigma1(e uint32) uint32 {
	return bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
}

func ch(e, f, g uint32) uint32 { return e&f ^ ^e&g }

func maj(a, b, c uint32) uint32 { return a&b ^ a&c ^ b&c }

// compress runs the 64 rounds over w and adds the result into state lane by
// lane.
func compress(state *[8]uint32, w *[consts.Rounds]uint32) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < consts.Rounds; i++ {
		t1 := h + bigSigma1(e) + ch(e, f, g) + consts.K[i] + w[i]
		t2 := bigSigma0(a) + maj(a, b, c)

		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
