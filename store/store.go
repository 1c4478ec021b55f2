// Package store persists commitment audit records as JSON files on the
// local filesystem.
//
// Records are stored immutably and keyed strictly by identifier. The store
// is offline and deterministic: it never uses the network and never depends
// on wall-clock time. A record is always recomputable from the original
// input bytes, so the store is a convenience cache for audit display, not a
// source of truth.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"burnmark.co/burnmark/mark"
)

// Dir is a write-once record store rooted at a directory.
type Dir struct {
	root string
}

// New constructs a store rooted at root. The directory is created if needed.
func New(root string) (*Dir, error) {
	if root == "" {
		return nil, errors.New("store: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Dir{root: root}, nil
}

// Put writes rec as an immutable JSON file and returns its path.
//
// Put is idempotent: re-writing an identical record is a no-op. Writing a
// different record under an existing identifier fails with ErrImmutable.
func (d *Dir) Put(rec *mark.Record) (string, error) {
	if rec == nil || rec.Identifier == "" {
		return "", errors.New("store: record with identifier is required")
	}
	b, err := encodeRecord(rec)
	if err != nil {
		return "", err
	}

	path := d.pathFor(rec.Identifier)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o444)
	if err != nil {
		if os.IsExist(err) {
			existing, rerr := os.ReadFile(path)
			if rerr != nil || !bytes.Equal(existing, b) {
				return "", ErrImmutable
			}
			return path, nil
		}
		return "", err
	}

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// Get loads the record stored under identifier.
//
// The stored record must carry the same identifier it is filed under;
// anything else (including unparseable JSON) is reported as
// ErrRecordMismatch, since a record that disagrees with its key has been
// tampered with or corrupted.
func (d *Dir) Get(identifier string) (*mark.Record, error) {
	b, err := os.ReadFile(d.pathFor(identifier))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var rec mark.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, ErrRecordMismatch
	}
	if rec.Identifier != identifier {
		return nil, ErrRecordMismatch
	}
	return &rec, nil
}

// Has reports whether a record is stored under identifier.
func (d *Dir) Has(identifier string) bool {
	_, err := os.Stat(d.pathFor(identifier))
	return err == nil
}

// pathFor shards on the trailing two identifier characters to keep
// directories small. Identifiers are base58, so they are filename-safe.
func (d *Dir) pathFor(identifier string) string {
	shard := "__"
	if n := len(identifier); n >= 2 {
		shard = identifier[n-2:]
	}
	return filepath.Join(d.root, shard, identifier+".json")
}

func encodeRecord(rec *mark.Record) ([]byte, error) {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
