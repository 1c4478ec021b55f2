package mark

import (
	"encoding/hex"

	"burnmark.co/burnmark/cidutil"
	"burnmark.co/burnmark/digest"
)

// Record is the audit bundle for a script-embedded commitment.
//
// It is not authoritative: every field is recomputable from the original
// input bytes alone, and Explain is pure formatting over values Commit
// already derives. Records are never mutated after construction.
//
// JSON note: the shape is fixed; optional fields use omitempty.
type Record struct {
	Identifier  string   `json:"identifier"`
	DigestHex   string   `json:"digestHex"`
	ScriptHex   string   `json:"scriptHex"`
	InputLength int      `json:"inputLength"`
	InputCID    string   `json:"inputCID,omitempty"`
	Notes       []string `json:"notes"`
}

// Explain commits input and packages the result for audit display.
//
// The Notes lines spell out the trust argument so a reader of the record
// does not have to reconstruct it from the byte layout.
func Explain(input []byte) (*Record, error) {
	scriptBytes, identifier, err := derive(input)
	if err != nil {
		return nil, err
	}
	sum := Digest(input)
	return &Record{
		Identifier:  identifier,
		DigestHex:   hex.EncodeToString(sum),
		ScriptHex:   hex.EncodeToString(scriptBytes),
		InputLength: len(input),
		InputCID:    cidutil.ForBytes(input),
		Notes: []string{
			"the embedded script begins with the terminal data-carrying opcode (0x6a), so no spending condition can ever be satisfied",
			"the address commits to ripemd160(sha256(script)); re-deriving it from the original bytes proves the commitment",
			"no private key exists or can exist for this address",
		},
	}, nil
}

// Digest returns the 32-byte input digest the script variant embeds,
// exposed for callers that display or cross-check it.
func Digest(input []byte) []byte {
	sum := digest.Sum256(input)
	return sum[:]
}
