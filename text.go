package sha256

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// LookupEncoding resolves an encoding label such as "utf-8", "latin1",
// "windows-1252" or "utf-16le".
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(ErrInputEncoding, "unknown encoding %q", name)
	}
	return enc, nil
}

// encodeText converts s to bytes under enc. A nil enc means UTF-8, in which
// case the bytes of s are used directly.
func encodeText(s string, enc encoding.Encoding) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, errors.Wrap(ErrInputEncoding, "text is not valid utf-8")
	}
	if enc == nil {
		return []byte(s), nil
	}

	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(ErrInputEncoding, "%v", err)
	}
	return out, nil
}
