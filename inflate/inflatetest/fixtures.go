// Package inflatetest generates golden DEFLATE fixtures for tests of the
// inflate package. It uses klauspost/compress/flate strictly as an
// ENCODER — nothing in this module's test suite decodes through it, so a
// round-trip test built from these fixtures is a real test of the inflate
// package's own decoder, not of klauspost/compress.
package inflatetest

import (
	"bytes"

	"github.com/klauspost/compress/flate"
)

// Compress returns level-compressed DEFLATE bytes for data. level follows
// the flate package's constants (flate.BestSpeed, flate.BestCompression,
// ...); flate.NoCompression forces stored blocks, useful for exercising
// decodeStoredBlock without a Huffman stage in the way.
func Compress(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RepeatingText builds n bytes of structured, repetitive text, the kind of
// input that forces both literal and length/distance back-copy symbols
// through a dynamic Huffman block when compressed.
func RepeatingText(n int) []byte {
	const phrase = "the quick brown fox jumps over the lazy dog; "
	out := make([]byte, 0, n)
	for len(out) < n {
		out = append(out, phrase...)
	}
	return out[:n]
}
