// Command mark_vector_gen regenerates the conformance vector files under
// testdata/conformance/mark/v1 from the library itself.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"burnmark.co/burnmark/mark"
)

type expected struct {
	HashOnly  string `json:"hashOnly"`
	Script    string `json:"script"`
	DigestHex string `json:"digestHex"`
	ScriptHex string `json:"scriptHex"`
}

var inputs = map[string][]byte{
	"secret":       []byte("My secret information"),
	"empty":        nil,
	"hello":        []byte("hello world"),
	"fox":          []byte("The quick brown fox jumps over the lazy dog"),
	"leading_zero": []byte("lz-323"),    // sha256 starts 0x00
	"double_zero":  []byte("lz2-96686"), // sha256 starts 0x0000
}

func main() {
	out := flag.String("out", filepath.Join("testdata", "conformance", "mark", "v1"), "output directory")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		panic(err)
	}
	for name, data := range inputs {
		rec, err := mark.Explain(data)
		if err != nil {
			panic(err)
		}
		exp := expected{
			HashOnly:  mark.CommitHashOnly(data),
			Script:    rec.Identifier,
			DigestHex: rec.DigestHex,
			ScriptHex: rec.ScriptHex,
		}
		b, err := json.MarshalIndent(exp, "", "  ")
		if err != nil {
			panic(err)
		}
		b = append(b, '\n')
		if err := os.WriteFile(filepath.Join(*out, name+".input"), data, 0o644); err != nil {
			panic(err)
		}
		if err := os.WriteFile(filepath.Join(*out, name+".json"), b, 0o644); err != nil {
			panic(err)
		}
		fmt.Printf("%s: %s / %s\n", name, exp.HashOnly, exp.Script)
	}
}
