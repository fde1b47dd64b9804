// Package ref is a direct, unoptimized SHA-256 used to check the main package.
// Everything is passed and returned by value.
package ref

import "encoding/binary"

// Pad returns msg followed by the marker byte, zero fill and the 64 bit
// big-endian bit length.
func Pad(msg []byte) []byte {
	out := append([]byte(nil), msg...)
	out = append(out, 0x80)
	for len(out)%blockLen != blockLen-8 {
		out = append(out, 0)
	}
	var l [8]byte
	binary.BigEndian.PutUint64(l[:], uint64(len(msg))*8)
	return append(out, l[:]...)
}

// Split cuts a padded message into blocks.
func Split(padded []byte) (blocks [][blockLen]byte) {
	for i := 0; i+blockLen <= len(padded); i += blockLen {
		var b [blockLen]byte
		copy(b[:], padded[i:])
		blocks = append(blocks, b)
	}
	return blocks
}

// Schedule expands a block into its 64 word message schedule.
func Schedule(block [blockLen]byte) (w [rounds]uint32) {
	for i := 0; i < 16; i++ {
		w[i] = bytesToWord(block[4*i:])
	}
	for i := 16; i < rounds; i++ {
		s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}
	return w
}

// Compress folds one message schedule into state and returns the new state.
func Compress(state [8]uint32, w [rounds]uint32) [8]uint32 {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < rounds; i++ {
		S1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + S1 + ch + k[i] + w[i]
		S0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := S0 + maj

		h = g
		g = f
		f = e
		e = d + temp1
		d = c
		c = b
		b = a
		a = temp1 + temp2
	}

	return [8]uint32{
		state[0] + a, state[1] + b, state[2] + c, state[3] + d,
		state[4] + e, state[5] + f, state[6] + g, state[7] + h,
	}
}

// Sum returns the digest of msg.
func Sum(msg []byte) (out [32]byte) {
	state := iv
	for _, block := range Split(Pad(msg)) {
		state = Compress(state, Schedule(block))
	}
	for i, v := range state {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
	return out
}
