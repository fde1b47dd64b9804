package sha256

import "github.com/pkg/errors"

var (
	// ErrOverflow is returned when the bit length of a message does not fit
	// in the 64 bit length field of the padding.
	ErrOverflow = errors.New("sha256: message bit length overflows 64 bits")

	// ErrInputEncoding is returned when text cannot be converted to bytes
	// under the requested encoding.
	ErrInputEncoding = errors.New("sha256: text cannot be encoded")

	// ErrInvalidDigest is returned when parsing a malformed hex digest.
	ErrInvalidDigest = errors.New("sha256: invalid hex digest")
)
