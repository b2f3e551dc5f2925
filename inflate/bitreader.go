package inflate

import "encoding/binary"

// refill tops up s.readIn from s.in. When at least 8 bytes remain it
// performs one unaligned 64-bit load and merges in exactly enough new
// bytes to keep the existing residual bits aligned; otherwise it appends
// one byte at a time while there is room and input left. It never fails
// on short input — read_in_length may simply come up short of what the
// caller wanted, which the caller detects via a negative residual after
// its own bit consumption.
//
// minRequired is informational only, kept for symmetry with the
// refill(min_required) primitive described in the design: both paths
// below always load as much as the buffer width and remaining input
// allow, regardless of what was strictly needed.
func (s *State) refill(minRequired int) {
	_ = minRequired

	// A prior read already underflowed (readInLength < 0). Loading more
	// bits would require shifting by a negative amount, which Go's
	// shift operators don't define the way C's do; there is also no
	// point, since the caller is about to observe the negative residual
	// and fail regardless.
	if s.readInLength < 0 {
		return
	}

	availIn := len(s.in) - s.inPos
	if availIn >= 8 {
		newBytes := 8 - (s.readInLength+7)/8
		word := binary.LittleEndian.Uint64(s.in[s.inPos:])
		s.readIn |= word << uint(s.readInLength)
		s.inPos += newBytes
		s.readInLength += newBytes * 8
		return
	}

	for s.readInLength < 57 && s.inPos < len(s.in) {
		s.readIn |= uint64(s.in[s.inPos]) << uint(s.readInLength)
		s.inPos++
		s.readInLength += 8
	}
}

// readBits returns the next n bits (n must be < 57) from the input
// stream, refilling first if fewer than n bits are currently buffered.
// Underflow is signaled by a negative s.readInLength afterward, not by
// the return value: callers must check it before trusting the result.
func (s *State) readBits(n uint) uint64 {
	if s.readInLength < int(n) {
		s.refill(int(n))
	}

	ret := s.readIn & (1<<n - 1)
	s.readIn >>= n
	s.readInLength -= int(n)
	return ret
}
