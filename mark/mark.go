// Package mark implements the commitment-address codec: a deterministic,
// checksum-validated identifier derived from arbitrary input bytes, plus the
// inverse verification check.
//
// Two variants exist. The script-embedded form (Commit/Verify) hashes a
// provably non-executable data-carrying script into a script-hash envelope;
// it is the recommended form. The hash-only form (CommitHashOnly/
// VerifyHashOnly) truncates the input digest into a standard payload
// envelope; it is retained for compatibility but its identifiers are
// indistinguishable from fund-receiving addresses, so its unspendability is
// convention only.
//
// Every operation is a pure function of its inputs; there is no shared state
// and calls are safe for arbitrary parallelism.
package mark

import (
	"bytes"
	"errors"
	"fmt"

	"burnmark.co/burnmark/base58check"
	"burnmark.co/burnmark/digest"
	"burnmark.co/burnmark/script"
)

// Version bytes form a closed set; decode rejects anything else.
const (
	// VersionHash is the standard payload envelope (hash-only variant).
	VersionHash = 0x00

	// VersionScript is the script-hash envelope (script-embedded variant).
	VersionScript = 0x05
)

// hashPayloadSize is the content width of both envelope forms.
const hashPayloadSize = 20

// Commit derives the script-embedded commitment address for input.
//
// Deterministic: the same input always yields the same identifier. The only
// failure mode is a script body over the single-length-byte limit, which the
// fixed prefix and digest width rule out here, but the check is kept so the
// format can grow without silent truncation.
func Commit(input []byte) (string, error) {
	_, identifier, err := derive(input)
	if err != nil {
		return "", err
	}
	return identifier, nil
}

// CommitHashOnly derives the hash-only commitment address for input.
//
// The payload is a 20-byte truncation of the input digest, not a second
// hash; combined with the zero version byte this makes the identifier
// format-identical to a real pay-to-hash address. Total: never fails.
func CommitHashOnly(input []byte) string {
	sum := digest.Sum256(input)
	return base58check.CheckEncode(VersionHash, sum[:hashPayloadSize])
}

// Verify reports whether identifier is the script-embedded commitment for
// claimed. It never fails: every decode or format error folds into false,
// since an identifier that cannot be decoded is, trivially, not verified.
func Verify(identifier string, claimed []byte) bool {
	return Check(identifier, claimed) == nil
}

// VerifyHashOnly is Verify for the hash-only variant.
func VerifyHashOnly(identifier string, claimed []byte) bool {
	return CheckHashOnly(identifier, claimed) == nil
}

// Check is the diagnostic form of Verify: nil on a match, a structured
// *Error (see Kind/RuleID) describing the first failure otherwise.
//
// Verification re-derives the entire envelope from claimed and compares
// identifier strings for exact equality, which is strictly stronger than
// comparing extracted payload bytes.
func Check(identifier string, claimed []byte) error {
	version, _, err := decodeStrict(identifier)
	if err != nil {
		return err
	}
	if version != VersionScript {
		return newError(KindMalformed, "MARK-FMT-003",
			fmt.Sprintf("version byte 0x%02x is not a script-hash envelope", version))
	}
	want, err := Commit(claimed)
	if err != nil {
		return err
	}
	if identifier != want {
		return newError(KindMismatch, "MARK-CMP-001", "identifier was not derived from the claimed bytes")
	}
	return nil
}

// CheckHashOnly is the diagnostic form of VerifyHashOnly.
func CheckHashOnly(identifier string, claimed []byte) error {
	version, content, err := decodeStrict(identifier)
	if err != nil {
		return err
	}
	if version != VersionHash {
		return newError(KindMalformed, "MARK-FMT-003",
			fmt.Sprintf("version byte 0x%02x is not a standard payload envelope", version))
	}
	sum := digest.Sum256(claimed)
	if !bytes.Equal(content, sum[:hashPayloadSize]) {
		return newError(KindMismatch, "MARK-CMP-001", "identifier was not derived from the claimed bytes")
	}
	return nil
}

// derive builds the commitment script and its address in one pass.
func derive(input []byte) (scriptBytes []byte, identifier string, err error) {
	sum := digest.Sum256(input)
	s, err := script.NullData(script.CommitmentBody(sum))
	if err != nil {
		if errors.Is(err, script.ErrPayloadTooLarge) {
			return nil, "", wrapError(KindPayload, "MARK-PAY-001", "commitment body exceeds the script length limit", err)
		}
		return nil, "", wrapError(KindInternal, "MARK-INT-001", "script assembly failed", err)
	}
	scriptSum := digest.Hash160(s)
	return s, base58check.CheckEncode(VersionScript, scriptSum[:]), nil
}

// decodeStrict decodes an identifier and enforces the full envelope shape:
// base58 alphabet, 25-byte minimum, valid checksum, 20-byte content, known
// version byte. Failures map onto the stable error taxonomy.
func decodeStrict(identifier string) (version byte, content []byte, err error) {
	version, content, err = base58check.CheckDecode(identifier)
	if err != nil {
		switch {
		case errors.Is(err, base58check.ErrInvalidEncoding):
			return 0, nil, wrapError(KindEncoding, "MARK-ENC-001", "identifier is not a base58 string", err)
		case errors.Is(err, base58check.ErrMalformedIdentifier):
			return 0, nil, wrapError(KindMalformed, "MARK-FMT-001", "identifier is too short for a commitment envelope", err)
		case errors.Is(err, base58check.ErrChecksumMismatch):
			return 0, nil, wrapError(KindChecksum, "MARK-CKS-001", "embedded checksum does not match the payload", err)
		default:
			return 0, nil, wrapError(KindInternal, "MARK-INT-001", "identifier decode failed", err)
		}
	}
	if len(content) != hashPayloadSize {
		return 0, nil, newError(KindMalformed, "MARK-FMT-002",
			fmt.Sprintf("commitment payload must be %d bytes, got %d", hashPayloadSize, len(content)))
	}
	if version != VersionHash && version != VersionScript {
		return 0, nil, newError(KindMalformed, "MARK-FMT-003",
			fmt.Sprintf("unknown version byte 0x%02x", version))
	}
	return version, content, nil
}
