package inflate

// lenStart and lenExtraBits map a length symbol (257..285, indexed here
// by symbol-257) to its base length and extra bit count, per RFC 1951
// section 3.2.5, page 11.
var lenStart = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lenExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distStart and distExtraBits do the same for the 30-symbol distance
// alphabet.
var distStart = [30]uint32{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145,
	8193, 12289, 16385, 24577,
}

var distExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// codeLengthOrder is the permutation RFC 1951 section 3.2.7 uses to pack
// the code-length alphabet's own lengths into a dynamic block header.
var codeLengthOrder = [codeLenCodes]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// The fixed-Huffman tables tolerate two extra unused entries beyond
// LitLen/DistLen so that the 9-bit/5-bit canonical code spaces are
// fully covered; real encoders never emit the two reserved symbols this
// leaves unreachable (286, 287, and distance symbols 30, 31).
const (
	fixedLitTableLen  = LitLen + 2
	fixedDistTableLen = DistLen + 2
)

var fixedLit, fixedDist *huffmanTable

func init() {
	var litLengths [fixedLitTableLen]int
	for i := 0; i < 144; i++ {
		litLengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		litLengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		litLengths[i] = 7
	}
	for i := 280; i < fixedLitTableLen; i++ {
		litLengths[i] = 8
	}
	var litCount [maxHuffTreeDepth + 1]int
	litCount[7] = 24
	litCount[8] = 152
	litCount[9] = 112

	var distLengths [fixedDistTableLen]int
	for i := range distLengths {
		distLengths[i] = 5
	}
	var distCount [maxHuffTreeDepth + 1]int
	distCount[5] = fixedDistTableLen

	fixedLit = buildHuffmanTable(litLengths[:], &litCount)
	fixedDist = buildHuffmanTable(distLengths[:], &distCount)
}

// setupFixedHeader installs the canned code lengths RFC 1951 section
// 3.2.6 defines for btype=1 blocks. The tables are built once at
// package init and copied in on every fixed block, matching the note
// that fixed tables "may be precomputed and memcpy'd" rather than
// rebuilt per block.
func (s *State) setupFixedHeader() {
	s.litHuff = *fixedLit
	s.distHuff = *fixedDist
}
