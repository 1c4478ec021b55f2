package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"burnmark.co/burnmark/mark"
)

const (
	secretInput      = "My secret information"
	secretHashOnly   = "1HU3ZsRyUL6RfwUMihGvDKGH52czjcMFwG"
	secretScriptAddr = "3KvaTz1yoWZU5NvDzBD4dimMCxeyUZfB3C"
)

func runCLI(t *testing.T, args ...string) (code int, out, errOut string) {
	t.Helper()
	var o, e bytes.Buffer
	code = run(args, &o, &e)
	return code, o.String(), e.String()
}

func TestCommit(t *testing.T) {
	code, out, _ := runCLI(t, "commit", secretInput)
	if code != 0 {
		t.Fatalf("commit exit %d", code)
	}
	if strings.TrimSpace(out) != secretScriptAddr {
		t.Fatalf("commit output %q", out)
	}
}

func TestCommit_HashOnly(t *testing.T) {
	code, out, _ := runCLI(t, "commit", "--hash-only", secretInput)
	if code != 0 {
		t.Fatalf("commit exit %d", code)
	}
	if strings.TrimSpace(out) != secretHashOnly {
		t.Fatalf("commit --hash-only output %q", out)
	}
}

func TestVerify_OKAndFailure(t *testing.T) {
	code, out, _ := runCLI(t, "verify", "--addr", secretScriptAddr, secretInput)
	if code != 0 || !strings.HasPrefix(out, "OK:") {
		t.Fatalf("verify match: exit %d, out %q", code, out)
	}

	code, out, _ = runCLI(t, "verify", "--addr", secretScriptAddr, "My secret Information")
	if code != 1 || !strings.HasPrefix(out, "FAILED:") {
		t.Fatalf("verify non-match: exit %d, out %q", code, out)
	}

	code, out, _ = runCLI(t, "verify", "--addr", "not-base58-!!!", secretInput)
	if code != 1 || !strings.HasPrefix(out, "FAILED:") {
		t.Fatalf("verify malformed: exit %d, out %q", code, out)
	}
}

func TestVerify_HashOnly(t *testing.T) {
	code, out, _ := runCLI(t, "verify", "--hash-only", "--addr", secretHashOnly, secretInput)
	if code != 0 || !strings.HasPrefix(out, "OK:") {
		t.Fatalf("verify --hash-only: exit %d, out %q", code, out)
	}
}

func TestVerify_RequiresAddr(t *testing.T) {
	code, _, errOut := runCLI(t, "verify", secretInput)
	if code != 2 || !strings.Contains(errOut, "usage:") {
		t.Fatalf("verify without --addr: exit %d, err %q", code, errOut)
	}
}

func TestExplain_JSON(t *testing.T) {
	code, out, _ := runCLI(t, "explain", "--json", secretInput)
	if code != 0 {
		t.Fatalf("explain exit %d", code)
	}
	var rec mark.Record
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("explain --json output not JSON: %v", err)
	}
	if rec.Identifier != secretScriptAddr {
		t.Fatalf("explain identifier %s", rec.Identifier)
	}
	if rec.InputLength != len(secretInput) {
		t.Fatalf("explain input length %d", rec.InputLength)
	}
}

func TestRecord_PutGet(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := runCLI(t, "record", "put", "--dir", dir, secretInput)
	if code != 0 {
		t.Fatalf("record put: exit %d, err %q", code, errOut)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != secretScriptAddr {
		t.Fatalf("record put output %q", out)
	}

	code, out, errOut = runCLI(t, "record", "get", "--dir", dir, secretScriptAddr)
	if code != 0 {
		t.Fatalf("record get: exit %d, err %q", code, errOut)
	}
	var rec mark.Record
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("record get output not JSON: %v", err)
	}
	if rec.Identifier != secretScriptAddr {
		t.Fatalf("record get identifier %s", rec.Identifier)
	}
}

func TestRecord_GetMissing(t *testing.T) {
	code, _, errOut := runCLI(t, "record", "get", "--dir", t.TempDir(), "3Missing11111111111111111111111111")
	if code != 1 || !strings.Contains(errOut, "load record") {
		t.Fatalf("record get missing: exit %d, err %q", code, errOut)
	}
}

func TestUsageAndUnknownCommand(t *testing.T) {
	if code, _, _ := runCLI(t); code != 2 {
		t.Fatalf("no args: exit %d", code)
	}
	code, out, _ := runCLI(t, "help")
	if code != 0 || !strings.Contains(out, "Usage:") {
		t.Fatalf("help: exit %d, out %q", code, out)
	}
	code, _, errOut := runCLI(t, "bogus")
	if code != 2 || !strings.Contains(errOut, "unknown command") {
		t.Fatalf("unknown command: exit %d, err %q", code, errOut)
	}
}
