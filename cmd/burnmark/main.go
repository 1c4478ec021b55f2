package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"burnmark.co/burnmark/mark"
	"burnmark.co/burnmark/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "commit":
		return cmdCommit(args[1:], out, errOut)
	case "verify":
		return cmdVerify(args[1:], out, errOut)
	case "explain":
		return cmdExplain(args[1:], out, errOut)
	case "record":
		return cmdRecord(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "burnmark: deterministic commitment-address codec")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  burnmark commit [--hash-only] [--in <file>] [text]")
	fmt.Fprintln(w, "  burnmark verify --addr <identifier> [--hash-only] [--in <file>] [text]")
	fmt.Fprintln(w, "  burnmark explain [--json] [--in <file>] [text]")
	fmt.Fprintln(w, "  burnmark record put --dir <dir> [--in <file>] [text]")
	fmt.Fprintln(w, "  burnmark record get --dir <dir> <identifier>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - input comes from the positional text argument, --in, or stdin")
	fmt.Fprintln(w, "  - the default variant embeds the digest in a provably unspendable script;")
	fmt.Fprintln(w, "    --hash-only emits the legacy truncated-hash form, whose identifiers look")
	fmt.Fprintln(w, "    exactly like fund-receiving addresses (unspendable by convention only)")
	fmt.Fprintln(w, "  - verify prints a reason on failure and exits 1")
	fmt.Fprintln(w, "  - record put stores the audit record as write-once JSON under --dir")
}

// readInput resolves the committed bytes: --in wins, then the positional
// argument as literal text, then stdin.
func readInput(fs *flag.FlagSet, inFile string) ([]byte, error) {
	if inFile != "" {
		return os.ReadFile(inFile)
	}
	if fs.NArg() > 0 {
		return []byte(fs.Arg(0)), nil
	}
	return io.ReadAll(os.Stdin)
}

func cmdCommit(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("commit", flag.ContinueOnError)
	fs.SetOutput(errOut)
	hashOnly := fs.Bool("hash-only", false, "emit the legacy truncated-hash form")
	inFile := fs.String("in", "", "read input bytes from file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	input, err := readInput(fs, *inFile)
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}

	if *hashOnly {
		fmt.Fprintln(out, mark.CommitHashOnly(input))
		return 0
	}
	id, err := mark.Commit(input)
	if err != nil {
		fmt.Fprintf(errOut, "commit: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, id)
	return 0
}

func cmdVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", "", "identifier to verify against")
	hashOnly := fs.Bool("hash-only", false, "verify the legacy truncated-hash form")
	inFile := fs.String("in", "", "read input bytes from file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *addr == "" {
		fmt.Fprintln(errOut, "usage: burnmark verify --addr <identifier> [--hash-only] [--in <file>] [text]")
		return 2
	}
	input, err := readInput(fs, *inFile)
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}

	check := mark.Check
	if *hashOnly {
		check = mark.CheckHashOnly
	}
	if err := check(*addr, input); err != nil {
		fmt.Fprintf(out, "FAILED: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, "OK: identifier was derived from the given input")
	return 0
}

func cmdExplain(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	fs.SetOutput(errOut)
	asJSON := fs.Bool("json", false, "print the record as JSON")
	inFile := fs.String("in", "", "read input bytes from file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	input, err := readInput(fs, *inFile)
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}

	rec, err := mark.Explain(input)
	if err != nil {
		fmt.Fprintf(errOut, "explain: %v\n", err)
		return 1
	}
	if *asJSON {
		return printJSON(out, errOut, rec)
	}
	fmt.Fprintf(out, "Identifier:   %s\n", rec.Identifier)
	fmt.Fprintf(out, "Digest:       %s\n", rec.DigestHex)
	fmt.Fprintf(out, "Script:       %s\n", rec.ScriptHex)
	fmt.Fprintf(out, "Input length: %d bytes\n", rec.InputLength)
	fmt.Fprintf(out, "Input CID:    %s\n", rec.InputCID)
	for _, n := range rec.Notes {
		fmt.Fprintf(out, "  - %s\n", n)
	}
	return 0
}

func cmdRecord(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: burnmark record <put|get> ...")
		return 2
	}
	switch args[0] {
	case "put":
		return cmdRecordPut(args[1:], out, errOut)
	case "get":
		return cmdRecordGet(args[1:], out, errOut)
	default:
		fmt.Fprintf(errOut, "unknown record subcommand: %s\n", args[0])
		return 2
	}
}

func cmdRecordPut(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("record put", flag.ContinueOnError)
	fs.SetOutput(errOut)
	dir := fs.String("dir", "", "record store directory")
	inFile := fs.String("in", "", "read input bytes from file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *dir == "" {
		fmt.Fprintln(errOut, "usage: burnmark record put --dir <dir> [--in <file>] [text]")
		return 2
	}
	input, err := readInput(fs, *inFile)
	if err != nil {
		fmt.Fprintf(errOut, "read input: %v\n", err)
		return 1
	}

	rec, err := mark.Explain(input)
	if err != nil {
		fmt.Fprintf(errOut, "explain: %v\n", err)
		return 1
	}
	st, err := store.New(*dir)
	if err != nil {
		fmt.Fprintf(errOut, "open store: %v\n", err)
		return 1
	}
	path, err := st.Put(rec)
	if err != nil {
		fmt.Fprintf(errOut, "store record: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "%s\n%s\n", rec.Identifier, path)
	return 0
}

func cmdRecordGet(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("record get", flag.ContinueOnError)
	fs.SetOutput(errOut)
	dir := fs.String("dir", "", "record store directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *dir == "" || fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: burnmark record get --dir <dir> <identifier>")
		return 2
	}
	st, err := store.New(*dir)
	if err != nil {
		fmt.Fprintf(errOut, "open store: %v\n", err)
		return 1
	}
	rec, err := st.Get(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "load record: %v\n", err)
		return 1
	}
	return printJSON(out, errOut, rec)
}

func printJSON(out io.Writer, errOut io.Writer, v any) int {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, string(b))
	return 0
}
