package inflate

import "math/bits"

const (
	// decodeLookupSize is the short-code lookup table bit-width. Codes
	// no longer than this are resolved in one array access; longer
	// codes fall through to the overflow region in longCodeLookup.
	decodeLookupSize    = 9
	decodeLookupEntries = 1 << decodeLookupSize
	decodeLookupMask    = decodeLookupEntries - 1

	maxHuffTreeDepth     = 15 // MAX_HUFF_TREE_DEPTH, the DEFLATE code-length limit
	deflateCodeMaxLength = 15 // DEFLATE_CODE_MAX_LENGTH
)

// huffmanEntry packs either a decoded symbol or an overflow pointer into
// 16 bits. If bit 15 is clear the entry is terminal: bits 0-8 hold the
// symbol, bits 9-13 hold its code length. If bit 15 is set, bits 0-8
// hold an offset into the table's long-code region and bits 9-13 hold
// the longest code length among the codes sharing this entry's prefix.
type huffmanEntry = uint16

const longCodeFlag huffmanEntry = 0x8000

// huffmanTable is the two-level Huffman decode table: a direct lookup
// for codes up to decodeLookupSize bits wide, and a variable-size
// overflow region for longer codes, reached through a pointer entry in
// the short table. Every bit pattern of length >= a code's own length
// that has that code as a prefix resolves, through one or two array
// accesses, to that code's symbol and true length.
type huffmanTable struct {
	small [decodeLookupEntries]huffmanEntry
	long  []huffmanEntry
}

// buildHuffmanTable assigns canonical Huffman codes (RFC 1951 section
// 3.2.2) to every symbol with a non-zero length in lengths, then
// populates the two-level lookup table. count[L] must already hold the
// number of symbols with code length L; both are ordinary caller-owned
// scratch, not heap state the table retains after this call returns.
func buildHuffmanTable(lengths []int, count *[maxHuffTreeDepth + 1]int) *huffmanTable {
	var nextCode [maxHuffTreeDepth + 1]int
	for i := 1; i <= maxHuffTreeDepth; i++ {
		nextCode[i] = (nextCode[i-1] + count[i-1]) << 1
	}

	t := &huffmanTable{}
	codes := make([]int, len(lengths))
	var long []int // symbols whose code is longer than decodeLookupSize

	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		code := nextCode[l]
		nextCode[l]++

		// The decoder feeds low-order bits first, so the code is
		// stored bit-reversed: comparing against the incoming window
		// is then a plain mask instead of a bit-by-bit walk.
		rev := int(bits.Reverse16(uint16(code))) >> (16 - uint(l))
		codes[sym] = rev

		if l <= decodeLookupSize {
			entry := huffmanEntry(sym) | huffmanEntry(l)<<9
			for j := rev; j < decodeLookupEntries; j += 1 << uint(l) {
				t.small[j] = entry
			}
		} else {
			long = append(long, sym)
		}
	}

	// Long-code compaction: group symbols that share the same low
	// decodeLookupSize bits of their code ("first_bits") and give each
	// group one contiguous overflow region sized to its longest member.
	done := make([]bool, len(lengths))
	for _, sym := range long {
		if done[sym] {
			continue
		}

		firstBits := codes[sym] & decodeLookupMask
		maxLength := lengths[sym]
		group := []int{sym}
		for _, other := range long {
			if other == sym || done[other] {
				continue
			}
			if codes[other]&decodeLookupMask == firstBits {
				if lengths[other] > maxLength {
					maxLength = lengths[other]
				}
				group = append(group, other)
			}
		}

		base := len(t.long)
		t.long = append(t.long, make([]huffmanEntry, 1<<uint(maxLength-decodeLookupSize))...)

		for _, member := range group {
			l := lengths[member]
			longBits := codes[member] >> decodeLookupSize
			step := 1 << uint(l-decodeLookupSize)
			entry := huffmanEntry(member) | huffmanEntry(l)<<9
			for ; longBits < 1<<uint(maxLength-decodeLookupSize); longBits += step {
				t.long[base+longBits] = entry
			}
			done[member] = true
		}

		t.small[firstBits] = huffmanEntry(base) | huffmanEntry(maxLength)<<9 | longCodeFlag
	}

	return t
}

// decodeNext decodes the next Huffman symbol from s according to table.
// It refills the bit buffer if necessary and consumes exactly the
// decoded symbol's code length. Callers must check s.readInLength < 0
// afterward to detect input underflow before trusting the result.
func (s *State) decodeNext(table *huffmanTable) uint16 {
	if s.readInLength <= deflateCodeMaxLength {
		s.refill(0)
	}

	nextBits := uint32(s.readIn) & decodeLookupMask
	entry := table.small[nextBits]

	if entry < longCodeFlag {
		n := entry >> 9
		s.readIn >>= n
		s.readInLength -= int(n)
		return entry & 0x1FF
	}

	// Long-code path: mask the window to this group's longest member
	// and use the masked bits above decodeLookupSize as an index into
	// the overflow region the short-table entry points at.
	maxLen := (entry - longCodeFlag) >> 9
	mask := uint64(1)<<maxLen - 1
	masked := s.readIn & mask
	entry = table.long[(entry&0x1FF)+huffmanEntry(masked>>decodeLookupSize)]

	n := entry >> 9
	s.readIn >>= n
	s.readInLength -= int(n)
	return entry & 0x1FF
}
