// Package sha256 implements the SHA-256 hash function described in FIPS 180-4.
//
// Every call hashes a complete message held in memory. Text inputs are
// converted to bytes before hashing, as UTF-8 unless another encoding is
// given, and the choice of encoding changes the digest.
package sha256

import (
	"golang.org/x/text/encoding"

	"github.com/zeebo/sha256/internal/consts"
)

const (
	// Size is the length of a digest in bytes.
	Size = consts.Size

	// BlockSize is the length of a block in bytes.
	BlockSize = consts.BlockLen
)

// Hash returns the digest of data. The only possible error is ErrOverflow.
func Hash(data []byte) (Digest, error) {
	return hash(data)
}

// HashHex returns the digest of data as 64 lowercase hex characters.
func HashHex(data []byte) (string, error) {
	d, err := hash(data)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// HashString returns the digest of the UTF-8 bytes of s. It returns
// ErrInputEncoding if s is not valid UTF-8.
func HashString(s string) (Digest, error) {
	return HashText(s, nil)
}

// HashText returns the digest of s after encoding it with enc. A nil enc
// means UTF-8. It returns ErrInputEncoding if s is not valid UTF-8 or holds a
// character enc cannot represent.
func HashText(s string, enc encoding.Encoding) (Digest, error) {
	data, err := encodeText(s, enc)
	if err != nil {
		return Digest{}, err
	}
	return hash(data)
}

// Sum256 returns the digest of data. It panics if the length of data in bits
// overflows 64 bits.
func Sum256(data []byte) [Size]byte {
	d, err := hash(data)
	if err != nil {
		panic(err)
	}
	return d
}
