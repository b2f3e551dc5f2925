// Package digest computes a checksum of decompressed output, so a caller
// of cmd/sdinflate can compare two decodes without diffing raw bytes.
package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// Sum returns the hex-encoded digest of b using alg ("blake2b" or "xxhash").
func Sum(alg string, b []byte) (string, error) {
	switch alg {
	case "blake2b":
		sum := blake2b.Sum256(b)
		return hex.EncodeToString(sum[:]), nil
	case "xxhash":
		sum := xxhash.Sum64(b)
		return fmt.Sprintf("%016x", sum), nil
	default:
		return "", fmt.Errorf("digest: unsupported algorithm %q", alg)
	}
}
