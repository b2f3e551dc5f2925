package inflate

// readHeader reads the 3-bit block prefix and dispatches on block type.
// Stored and fixed blocks are fully set up before returning; dynamic
// blocks delegate to setupDynamicHeader for the meta-Huffman-coded
// length run.
func (s *State) readHeader() Status {
	s.newBlock = false

	bfinal := s.readBits(1)
	btype := s.readBits(2)
	if s.readInLength < 0 {
		return EndOfInput
	}
	s.bfinal = bfinal == 1
	s.btype = int(btype)

	switch s.btype {
	case 0:
		// Stored block: whatever whole bytes are still buffered in
		// the bit register belong to this block's length header, not
		// to the Huffman stream just ended, so they're pushed back
		// onto the input and the register is cleared. Any fractional
		// bits short of a byte boundary are simply discarded.
		nb := s.readInLength / 8
		s.inPos -= nb
		s.readIn = 0
		s.readInLength = 0
		return DecompressionFinished

	case 1:
		s.setupFixedHeader()
		return DecompressionFinished

	case 2:
		return s.setupDynamicHeader()

	default:
		return InvalidBlockHeader
	}
}

// setupDynamicHeader reads HLIT/HDIST/HCLEN, builds the 19-entry
// code-length Huffman code, and run-length decodes it into combined
// literal/length and distance code-length arrays, per RFC 1951 section
// 3.2.7.
func (s *State) setupDynamicHeader() Status {
	hlit := int(s.readBits(5))
	hdist := int(s.readBits(5))
	hclen := int(s.readBits(4))
	if s.readInLength < 0 {
		return EndOfInput
	}
	if hlit+257 > LitLen || hdist+1 > DistLen {
		return InvalidBlockHeader
	}

	var codeLengths [codeLenCodes]int
	var codeCount [maxHuffTreeDepth + 1]int
	for i := 0; i < hclen+4; i++ {
		l := int(s.readBits(3))
		codeLengths[codeLengthOrder[i]] = l
		codeCount[l]++
	}
	if s.readInLength < 0 {
		return EndOfInput
	}
	codeTable := buildHuffmanTable(codeLengths[:], &codeCount)

	// lengths is one contiguous array: indices [0, hlit+257) hold the
	// literal/length code lengths, indices [LitLen, LitLen+hdist+1)
	// hold the distance code lengths. The write cursor jumps from the
	// end of the literal/length run straight to LitLen, skipping any
	// unused literal/length slots, the same layout the reference
	// decoder uses so a single run-length pass can decode both
	// alphabets back to back.
	lengths := make([]int, LitLen+DistLen)
	var litCount, distCount [maxHuffTreeDepth + 1]int
	count := &litCount

	litEnd := hlit + 257
	total := LitLen + hdist + 1

	i := 0
	advance := func() {
		i++
		if i == litEnd {
			i = LitLen
			count = &distCount
		}
	}

	havePrev := false
	prevLen := 0

	for i < total {
		sym := s.decodeNext(codeTable)
		if s.readInLength < 0 {
			return EndOfInput
		}

		switch {
		case sym < 16:
			count[sym]++
			lengths[i] = int(sym)
			prevLen = int(sym)
			havePrev = true
			advance()

		case sym == 16:
			// Repeat the previous slot's length 3+(2 extra bits)
			// times. "Previous" is whatever slot was most recently
			// written, including across the literal/length -> distance
			// boundary.
			if !havePrev {
				return InvalidBlockHeader
			}
			rep := 3 + int(s.readBits(2))
			if s.readInLength < 0 {
				return EndOfInput
			}
			for j := 0; j < rep; j++ {
				if i >= total {
					return InvalidBlockHeader
				}
				count[prevLen]++
				lengths[i] = prevLen
				advance()
			}

		case sym == 17:
			// Emit 3+(3 extra bits) zero-length slots. Slots are
			// already zero-valued by construction, so there is
			// nothing to write; "previous" is left pointing at the
			// last zero slot emitted, matching the reference decoder
			// (a later code 16 will then repeat a zero).
			rep := 3 + int(s.readBits(3))
			if s.readInLength < 0 {
				return EndOfInput
			}
			for j := 0; j < rep; j++ {
				if i >= total {
					return InvalidBlockHeader
				}
				prevLen = 0
				havePrev = true
				advance()
			}

		case sym == 18:
			// Same as 17, with an 11+(7 extra bits) run.
			rep := 11 + int(s.readBits(7))
			if s.readInLength < 0 {
				return EndOfInput
			}
			for j := 0; j < rep; j++ {
				if i >= total {
					return InvalidBlockHeader
				}
				prevLen = 0
				havePrev = true
				advance()
			}

		default:
			return InvalidBlockHeader
		}
	}

	s.litHuff = *buildHuffmanTable(lengths[:LitLen], &litCount)
	s.distHuff = *buildHuffmanTable(lengths[LitLen:LitLen+DistLen], &distCount)
	return DecompressionFinished
}
