package base58check

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// The classic pay-to-hash vector: version 0x00 over a known 20-byte payload.
const (
	classicPayloadHex = "010966776006953d5567439e5e39f86a0d273bee"
	classicAddress    = "16UwLL9Risc3QfPqBUvKofHmBQ7wMtjvM"
)

func TestCheckEncode_ClassicVector(t *testing.T) {
	payload, err := hex.DecodeString(classicPayloadHex)
	if err != nil {
		t.Fatalf("decode payload hex: %v", err)
	}
	if got := CheckEncode(0x00, payload); got != classicAddress {
		t.Fatalf("CheckEncode: got %s want %s", got, classicAddress)
	}
}

func TestCheckDecode_ClassicVector(t *testing.T) {
	version, content, err := CheckDecode(classicAddress)
	if err != nil {
		t.Fatalf("CheckDecode: %v", err)
	}
	if version != 0x00 {
		t.Fatalf("version: got 0x%02x want 0x00", version)
	}
	if hex.EncodeToString(content) != classicPayloadHex {
		t.Fatalf("content: got %x want %s", content, classicPayloadHex)
	}
}

func TestRoundTrip_Versions(t *testing.T) {
	content := bytes.Repeat([]byte{0xab}, 20)
	for _, version := range []byte{0x00, 0x05, 0x6f, 0xff} {
		s := CheckEncode(version, content)
		gotVersion, gotContent, err := CheckDecode(s)
		if err != nil {
			t.Fatalf("CheckDecode(0x%02x): %v", version, err)
		}
		if gotVersion != version || !bytes.Equal(gotContent, content) {
			t.Fatalf("round trip 0x%02x: got (0x%02x, %x)", version, gotVersion, gotContent)
		}
	}
}

func TestRoundTrip_LeadingZeroContent(t *testing.T) {
	// Version 0x00 plus leading zero content bytes: the envelope starts with
	// three zero bytes, which must survive as three leading '1' characters.
	content := append([]byte{0x00, 0x00}, bytes.Repeat([]byte{0x11}, 18)...)
	s := CheckEncode(0x00, content)
	if s[:3] != "111" {
		t.Fatalf("expected three leading '1's, got %s", s)
	}
	if s[3] == '1' {
		t.Fatalf("expected exactly three leading '1's, got %s", s)
	}
	version, gotContent, err := CheckDecode(s)
	if err != nil {
		t.Fatalf("CheckDecode: %v", err)
	}
	if version != 0x00 || !bytes.Equal(gotContent, content) {
		t.Fatalf("leading zeros lost: got (0x%02x, %x)", version, gotContent)
	}
}

func TestCheckDecode_InvalidEncoding(t *testing.T) {
	for _, s := range []string{"", "0OIl", "not-base58-!!!", "abc 123"} {
		_, _, err := CheckDecode(s)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("CheckDecode(%q): got %v want ErrInvalidEncoding", s, err)
		}
	}
}

func TestCheckDecode_LengthGate(t *testing.T) {
	cases := []struct {
		s    string
		want error
	}{
		{"1", ErrMalformedIdentifier},  // one zero byte
		{"2g", ErrMalformedIdentifier}, // single byte 0x61
		// "ABnLTmg" decodes to exactly 5 bytes: past the length gate, but
		// its trailing 4 bytes are not the checksum of its first byte.
		{"ABnLTmg", ErrChecksumMismatch},
	}
	for _, tc := range cases {
		if _, _, err := CheckDecode(tc.s); !errors.Is(err, tc.want) {
			t.Fatalf("CheckDecode(%q): got %v want %v", tc.s, err, tc.want)
		}
	}
}

func TestCheckDecode_ChecksumMismatch(t *testing.T) {
	// Flip the final character of the classic vector; the string still
	// decodes to 25 bytes but the embedded checksum no longer matches.
	tampered := classicAddress[:len(classicAddress)-1] + "N"
	_, _, err := CheckDecode(tampered)
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Fatalf("CheckDecode(tampered): got %v want ErrChecksumMismatch", err)
	}
}
