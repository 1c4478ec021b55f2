// Package cidutil derives the content handle attached to commitment audit
// records.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ForBytes returns a CIDv1 string ("raw" multicodec, sha2-256 multihash) for
// data. Audit records carry this so the committed input can be referenced in
// any content-addressed store without re-deriving anything.
func ForBytes(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid parameters; with SHA2_256
		// and default length this is unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}
