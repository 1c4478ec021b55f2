// Package base58check implements the version+payload+checksum envelope used
// by commitment addresses.
//
// An encoded identifier is base58(version ‖ content ‖ checksum) where the
// checksum is the first four bytes of sha256(sha256(version ‖ content)).
// Leading zero bytes of the envelope map to leading '1' characters and back;
// losing that rule breaks round-trips for any envelope whose version byte is
// zero, which the hash-only address form always has.
package base58check

import (
	"errors"

	"github.com/mr-tron/base58"

	"burnmark.co/burnmark/digest"
)

// ChecksumSize is the width of the trailing checksum in bytes.
const ChecksumSize = 4

// minDecodedSize is one version byte plus the checksum; content may in
// principle be empty at this layer.
const minDecodedSize = 1 + ChecksumSize

var (
	// ErrInvalidEncoding indicates a character outside the base58 alphabet
	// (or an empty string).
	ErrInvalidEncoding = errors.New("base58check: invalid base58 string")

	// ErrMalformedIdentifier indicates the decoded envelope is too short to
	// hold a version byte and a checksum.
	ErrMalformedIdentifier = errors.New("base58check: version and/or checksum bytes missing")

	// ErrChecksumMismatch indicates the recomputed checksum disagrees with
	// the embedded one.
	ErrChecksumMismatch = errors.New("base58check: checksum mismatch")
)

// checksum: first four bytes of sha256^2.
func checksum(input []byte) (cksum [ChecksumSize]byte) {
	h := digest.DoubleSum256(input)
	copy(cksum[:], h[:ChecksumSize])
	return cksum
}

// CheckEncode prepends the version byte, appends the four byte checksum and
// returns the base58 encoding of the result.
func CheckEncode(version byte, content []byte) string {
	b := make([]byte, 0, 1+len(content)+ChecksumSize)
	b = append(b, version)
	b = append(b, content...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// CheckDecode decodes a string produced by CheckEncode and validates it.
//
// The checksum is always recomputed and compared. The legacy hash-only
// decoder skipped this recomputation and compared content bytes only, so a
// corrupted checksum with intact content still "verified" there; this
// implementation deliberately enforces the stricter behavior.
func CheckDecode(s string) (version byte, content []byte, err error) {
	decoded, err := base58.Decode(s)
	if err != nil {
		return 0, nil, ErrInvalidEncoding
	}
	if len(decoded) < minDecodedSize {
		return 0, nil, ErrMalformedIdentifier
	}

	var cksum [ChecksumSize]byte
	copy(cksum[:], decoded[len(decoded)-ChecksumSize:])
	if checksum(decoded[:len(decoded)-ChecksumSize]) != cksum {
		return 0, nil, ErrChecksumMismatch
	}

	content = append([]byte(nil), decoded[1:len(decoded)-ChecksumSize]...)
	return decoded[0], content, nil
}
