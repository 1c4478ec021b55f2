// Package digest provides the hash primitives behind commitment addresses.
//
// All functions are total: any byte sequence, including empty, is valid
// input. The primitives are standard, externally reviewed implementations;
// nothing here is hand-rolled.
package digest

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // fixed by the address format
)

const (
	// Size256 is the width of a sha256 digest in bytes.
	Size256 = sha256.Size

	// Size160 is the width of a ripemd160 digest in bytes.
	Size160 = ripemd160.Size
)

// Sum256 returns sha256(data).
func Sum256(data []byte) [Size256]byte {
	return sha256.Sum256(data)
}

// DoubleSum256 returns sha256(sha256(data)), the hash the envelope
// checksum is taken from.
func DoubleSum256(data []byte) [Size256]byte {
	h := sha256.Sum256(data)
	return sha256.Sum256(h[:])
}

// Hash160 returns ripemd160(sha256(data)), the 20-byte script-hash form.
func Hash160(data []byte) [Size160]byte {
	h := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(h[:])

	var out [Size160]byte
	copy(out[:], r.Sum(nil))
	return out
}
