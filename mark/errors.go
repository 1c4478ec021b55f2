package mark

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions. Callers
// should branch on Kind/RuleID rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindEncoding: the identifier contains characters outside the base58
	// alphabet.
	KindEncoding Kind = "Encoding"

	// KindMalformed: the decoded envelope has the wrong shape (too short,
	// wrong content width, or an unknown version byte).
	KindMalformed Kind = "Malformed"

	// KindChecksum: the embedded checksum disagrees with the recomputed one.
	KindChecksum Kind = "Checksum"

	// KindPayload: the embedded script body exceeds the addressing limit.
	KindPayload Kind = "Payload"

	// KindMismatch: the envelope is well-formed but was not derived from the
	// claimed bytes.
	KindMismatch Kind = "Mismatch"

	// KindInternal: an unexpected failure in an underlying primitive.
	KindInternal Kind = "Internal"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g. MARK-ENC-001, MARK-CKS-001) that names
// the violated invariant. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
