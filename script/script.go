// Package script assembles the data-carrying, execution-halting script that
// the script-embedded commitment variant hashes into its address.
//
// The script is OpReturn, one length byte, then the literal body. OpReturn
// terminates script execution unconditionally, so no spending condition can
// ever be satisfied for a script of this shape; unspendability is a property
// of the script content itself, not of convention.
package script

import (
	"errors"

	"burnmark.co/burnmark/digest"
)

// OpReturn is the marker opcode: accept no further execution.
const OpReturn = 0x6a

// BodyPrefix tags embedded commitment digests so the script is
// self-describing to anyone inspecting it.
const BodyPrefix = "UNSPENDABLE:"

// MaxBodySize is the largest body addressable by the single length byte.
const MaxBodySize = 255

// ErrPayloadTooLarge indicates the body exceeds MaxBodySize. Oversized
// bodies are rejected, never silently truncated.
var ErrPayloadTooLarge = errors.New("script: embedded data exceeds single length byte limit")

// CommitmentBody returns BodyPrefix followed by the raw digest bytes.
// With the fixed 12-byte prefix and a 32-byte digest the body is always
// 44 bytes, comfortably under MaxBodySize.
func CommitmentBody(sum [digest.Size256]byte) []byte {
	body := make([]byte, 0, len(BodyPrefix)+digest.Size256)
	body = append(body, BodyPrefix...)
	body = append(body, sum[:]...)
	return body
}

// NullData wraps body in the marker+length header.
func NullData(body []byte) ([]byte, error) {
	if len(body) > MaxBodySize {
		return nil, ErrPayloadTooLarge
	}
	s := make([]byte, 0, 2+len(body))
	s = append(s, OpReturn, byte(len(body)))
	s = append(s, body...)
	return s, nil
}
