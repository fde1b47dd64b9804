package sha256

import (
	"crypto/subtle"
	"strings"

	"github.com/pkg/errors"
	"github.com/templexxx/xhex"
	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

// Digest is a SHA-256 digest. The raw bytes are the canonical form; String
// gives the conventional lowercase hex.
type Digest [consts.Size]byte

func serialize(state *[8]uint32) (d Digest) {
	utils.WordsToBytes(state, (*[consts.Size]byte)(&d))
	return d
}

// ParseDigest decodes a 64 character hex string in either case.
func ParseDigest(s string) (d Digest, err error) {
	if len(s) != 2*consts.Size {
		return Digest{}, errors.Wrapf(ErrInvalidDigest, "length %d", len(s))
	}
	text := []byte(strings.ToLower(s))
	for i, c := range text {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return Digest{}, errors.Wrapf(ErrInvalidDigest, "%q: bad byte %q at %d", s, c, i)
		}
	}
	if err := xhex.Decode(d[:], text); err != nil {
		return Digest{}, errors.Wrapf(ErrInvalidDigest, "%q: %v", s, err)
	}
	return d, nil
}

// Bytes returns a copy of the digest as a slice.
func (d Digest) Bytes() []byte {
	out := make([]byte, consts.Size)
	copy(out, d[:])
	return out
}

// String returns the digest as 64 lowercase hex characters.
func (d Digest) String() string {
	return string(d.appendHex(nil))
}

// Hex is an alias for String.
func (d Digest) Hex() string { return d.String() }

// Equal reports whether d and o are the same digest in constant time.
func (d Digest) Equal(o Digest) bool {
	return subtle.ConstantTimeCompare(d[:], o[:]) == 1
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return d.appendHex(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	v, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Digest) appendHex(dst []byte) []byte {
	l := len(dst)
	dst = append(dst, make([]byte, 2*consts.Size)...)
	xhex.Encode(dst[l:], d[:])
	return dst
}
