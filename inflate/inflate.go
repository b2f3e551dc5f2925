// Package inflate implements a stateless RFC 1951 DEFLATE decompressor.
//
// Unlike the streaming decoder in the standard library's compress/flate,
// the decoder here takes a caller-supplied compressed input buffer and a
// caller-supplied output buffer and produces the inflated byte stream in
// a single call: there is no io.Reader, no internal buffering beyond the
// bit register, and no way to suspend a call partway through and resume
// it later. A caller whose output won't fit in one buffer is expected to
// size the buffer correctly up front; the decoder reports overflow and
// stops rather than growing anything.
package inflate

const (
	// LitLen is the size of the literal/length alphabet: 256 literal
	// bytes, one end-of-block symbol, and 29 length codes.
	LitLen = 286
	// DistLen is the size of the distance alphabet.
	DistLen = 30

	codeLenCodes = 19 // size of the meta Huffman code-length alphabet
)

// Status is the closed set of outcomes Stateless can return. It is not
// an error in the conventional Go sense on the hot path: every component
// decoder threads Status through its return value instead of panicking
// or wrapping stdlib errors, since the alphabet of failures is small and
// fixed by the format.
type Status int

const (
	// DecompressionFinished reports that the final block has been
	// fully decoded. It is also the zero value, returned internally by
	// component decoders to mean "no error, keep going".
	DecompressionFinished Status = iota
	// EndOfInput reports that the input was exhausted mid-block or
	// mid-header.
	EndOfInput
	// InvalidBlockHeader reports a malformed block type, HCLEN
	// sequence, or code-length repeat with no predecessor.
	InvalidBlockHeader
	// InvalidNonCompressedBlockLength reports a stored-block LEN/NLEN
	// mismatch.
	InvalidNonCompressedBlockLength
	// OutBufferOverflow reports that the output capacity was
	// insufficient for a literal, a back-copy, or a stored block.
	OutBufferOverflow
	// InvalidLookBackDistance reports a back-reference distance past
	// the start of the output produced so far.
	InvalidLookBackDistance
	// InvalidSymbol reports a literal/length symbol outside the valid
	// alphabet (286 or 287).
	InvalidSymbol
)

func (s Status) String() string {
	switch s {
	case DecompressionFinished:
		return "decompression finished"
	case EndOfInput:
		return "end of input"
	case InvalidBlockHeader:
		return "invalid block header"
	case InvalidNonCompressedBlockLength:
		return "invalid non-compressed block length"
	case OutBufferOverflow:
		return "output buffer overflow"
	case InvalidLookBackDistance:
		return "invalid look-back distance"
	case InvalidSymbol:
		return "invalid symbol"
	default:
		return "inflate: unknown status"
	}
}

// StatusError adapts a failing Status to the error interface for callers
// that would rather not switch on Status directly.
type StatusError struct{ Status Status }

func (e *StatusError) Error() string { return "inflate: " + e.Status.String() }

// Err returns nil for DecompressionFinished and a *StatusError
// otherwise.
func (s Status) Err() error {
	if s == DecompressionFinished {
		return nil
	}
	return &StatusError{s}
}

// State is the single mutable object threaded through a decode. The
// caller owns in and out for the duration of a call: they must not
// alias each other and must not be mutated externally while Stateless
// is running. The short lookup arrays of the two Huffman tables live
// inline in the struct; each table's long-code region is a separately
// allocated slice, and building a dynamic block's tables allocates
// scratch on the heap, so a decode is not allocation-free.
type State struct {
	in    []byte
	inPos int // index of the next input byte not yet logically consumed

	out    []byte
	outPos int // index of the next output byte to write; also total_out

	readIn       uint64 // bit buffer, LSB-first
	readInLength int    // signed residual bit count; negative means underflow

	litHuff  huffmanTable
	distHuff huffmanTable

	btype    int
	bfinal   bool
	newBlock bool
}

// Init wires in and out into s and resets all decode state. Re-init'ing
// a State and calling Stateless again on the same input is idempotent.
func (s *State) Init(in, out []byte) {
	*s = State{
		in:       in,
		out:      out,
		newBlock: true,
	}
}

// TotalOut returns the number of bytes written to out so far. It is
// accurate both after a successful decode and after a failed one: on
// any error, Out and TotalOut reflect exactly the bytes committed before
// the failing operation.
func (s *State) TotalOut() int { return s.outPos }

// Out returns the slice of out written so far.
func (s *State) Out() []byte { return s.out[:s.outPos] }

// AvailIn returns the number of input bytes not yet logically consumed.
// On DecompressionFinished this points one past the last whole byte of
// the compressed stream; on any error it is left in an
// implementation-defined but finite position.
func (s *State) AvailIn() int { return len(s.in) - s.inPos }

// Stateless decodes blocks until the final block's end-of-block marker
// has been consumed, or until an error is encountered. It never blocks,
// retries, or repairs a corrupt stream: one call either completes the
// decode or returns the first error.
func (s *State) Stateless() Status {
	for !s.newBlock || !s.bfinal {
		if s.newBlock {
			if st := s.readHeader(); st != DecompressionFinished {
				return st
			}
		}

		var st Status
		if s.btype == 0 {
			st = s.decodeStoredBlock()
		} else {
			st = s.decodeHuffmanBlock()
		}
		if st != DecompressionFinished {
			return st
		}
	}

	// Whole bytes still sitting in the bit register belong to the
	// caller, not to this decode: rewind next_in/avail_in so the caller
	// sees exactly the bytes logically consumed. Fractional bits are
	// discarded (they belong to the logical stream end).
	s.inPos -= s.readInLength / 8
	return DecompressionFinished
}

// Decompress is a convenience wrapper equivalent to calling Init
// followed by Stateless: decode in into out in one call and report how
// many bytes were produced.
func Decompress(in, out []byte) (n int, status Status) {
	var s State
	s.Init(in, out)
	status = s.Stateless()
	return s.TotalOut(), status
}
