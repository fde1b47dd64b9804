package sha256

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/zeebo/sha256/internal/consts"
)

// tailRoom is the offset into the final block where the length field may
// start once the marker byte has been written.
const tailRoom = consts.BlockLen - consts.LenField - consts.MarkerLen

// bitLength returns the length of an n byte message in bits.
func bitLength(n uint64) (uint64, error) {
	if n >= consts.MaxLen {
		return 0, errors.Wrapf(ErrOverflow, "%d bytes", n)
	}
	return n * 8, nil
}

// padZeros returns how many zero bytes sit between the marker and the length
// field for an n byte message.
func padZeros(n uint64) int {
	return int((consts.BlockLen + tailRoom - n%consts.BlockLen) % consts.BlockLen)
}

// padLen returns the total number of padding bytes for an n byte message. It
// is always between 9 and 72.
func padLen(n uint64) int {
	return consts.MarkerLen + padZeros(n) + consts.LenField
}

// appendPadding appends the padding for an n byte message to dst.
func appendPadding(dst []byte, n uint64) ([]byte, error) {
	bits, err := bitLength(n)
	if err != nil {
		return dst, err
	}

	dst = append(dst, consts.MarkerByte)
	for i := padZeros(n); i > 0; i-- {
		dst = append(dst, 0)
	}
	return binary.BigEndian.AppendUint64(dst, bits), nil
}

// pad returns a copy of msg followed by its padding.
func pad(msg []byte) ([]byte, error) {
	n := uint64(len(msg))
	out := make([]byte, len(msg), len(msg)+padLen(n))
	copy(out, msg)
	return appendPadding(out, n)
}
