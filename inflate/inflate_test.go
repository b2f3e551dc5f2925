package inflate

import (
	"bytes"
	"testing"

	"github.com/flatecore/sdeflate/inflate/inflatetest"
)

// Scenario from section 8: an empty fixed block, just the final-block bit,
// btype=1, and an immediate end-of-block symbol, packed into two bytes.
func TestEmptyFixedBlock(t *testing.T) {
	in := []byte{0x03, 0x00}
	out := make([]byte, 16)

	n, status := Decompress(in, out)
	if status != DecompressionFinished {
		t.Fatalf("status = %v, want DecompressionFinished", status)
	}
	if n != 0 {
		t.Fatalf("n = %d, want 0", n)
	}
}

func TestStoredBlock(t *testing.T) {
	payload := []byte("hello")
	length := len(payload)
	nlen := ^length & 0xFFFF

	in := []byte{
		0x01, // bfinal=1, btype=0
		byte(length), byte(length >> 8),
		byte(nlen), byte(nlen >> 8),
	}
	in = append(in, payload...)

	out := make([]byte, 16)
	n, status := Decompress(in, out)
	if status != DecompressionFinished {
		t.Fatalf("status = %v, want DecompressionFinished", status)
	}
	if !bytes.Equal(out[:n], payload) {
		t.Fatalf("out = %q, want %q", out[:n], payload)
	}
}

func TestStoredBlockBadLength(t *testing.T) {
	in := []byte{0x01, 0x05, 0x00, 0x05, 0x00, 'h', 'e', 'l', 'l', 'o'}
	out := make([]byte, 16)

	_, status := Decompress(in, out)
	if status != InvalidNonCompressedBlockLength {
		t.Fatalf("status = %v, want InvalidNonCompressedBlockLength", status)
	}
}

func TestOutputBufferOverflow(t *testing.T) {
	payload := []byte("hello")
	length := len(payload)
	nlen := ^length & 0xFFFF

	in := []byte{0x01, byte(length), byte(length >> 8), byte(nlen), byte(nlen >> 8)}
	in = append(in, payload...)

	out := make([]byte, 2)
	_, status := Decompress(in, out)
	if status != OutBufferOverflow {
		t.Fatalf("status = %v, want OutBufferOverflow", status)
	}
}

func TestTruncatedInput(t *testing.T) {
	in := []byte{0x01, 0x05, 0x00}
	out := make([]byte, 16)

	_, status := Decompress(in, out)
	if status != EndOfInput {
		t.Fatalf("status = %v, want EndOfInput", status)
	}
}

// A back-reference with distance 1 must replicate the single preceding
// byte length times rather than copying stale bytes, the overlap case
// spec.md calls out explicitly.
func TestBackCopyOverlap(t *testing.T) {
	var s State
	out := make([]byte, 16)
	s.Init(nil, out)

	s.out[0] = 'a'
	s.outPos = 1
	s.copyBack(1, 5)
	s.outPos += 5

	want := "aaaaaa"
	if got := string(s.Out()); got != want {
		t.Fatalf("Out() = %q, want %q", got, want)
	}
}

func TestDistanceEqualToTotalOutIsLegal(t *testing.T) {
	var s State
	out := make([]byte, 16)
	s.Init(nil, out)

	copy(s.out, "ab")
	s.outPos = 2

	s.copyBack(2, 2)
	s.outPos += 2

	if got := string(s.Out()); got != "abab" {
		t.Fatalf("Out() = %q, want %q", got, "abab")
	}
}

// A back-reference whose distance exceeds the bytes produced so far must be
// rejected rather than read out of bounds. The literal/distance tables here
// are deliberately single-symbol (not a valid canonical code, just enough
// to drive decodeNext deterministically) so the test isolates the distance
// check in decodeHuffmanBlock from the Huffman decode machinery.
func TestInvalidLookBackDistance(t *testing.T) {
	var litLengths [LitLen]int
	litLengths[257] = 1
	var litCount [maxHuffTreeDepth + 1]int
	litCount[1] = 1

	var distLengths [DistLen]int
	distLengths[0] = 1
	var distCount [maxHuffTreeDepth + 1]int
	distCount[1] = 1

	var s State
	s.Init([]byte{0x00}, make([]byte, 16))
	s.newBlock = false // as readHeader leaves it before a block body
	s.litHuff = *buildHuffmanTable(litLengths[:], &litCount)
	s.distHuff = *buildHuffmanTable(distLengths[:], &distCount)

	status := s.decodeHuffmanBlock()
	if status != InvalidLookBackDistance {
		t.Fatalf("status = %v, want InvalidLookBackDistance", status)
	}
}

func TestReadBitsZero(t *testing.T) {
	var s State
	s.Init([]byte{0xFF}, make([]byte, 1))
	if got := s.readBits(0); got != 0 {
		t.Fatalf("readBits(0) = %d, want 0", got)
	}
	if s.readInLength < 0 {
		t.Fatalf("readBits(0) underflowed")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	in := []byte{0x03, 0x00}
	out := make([]byte, 16)

	var s State
	s.Init(in, out)
	first := s.Stateless()

	s.Init(in, out)
	second := s.Stateless()

	if first != second {
		t.Fatalf("re-Init produced different status: %v vs %v", first, second)
	}
}

func TestRoundTripDynamicBlock64KiB(t *testing.T) {
	want := inflatetest.RepeatingText(64 * 1024)

	compressed, err := inflatetest.Compress(want, 6)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	out := make([]byte, len(want)+1024)
	n, status := Decompress(compressed, out)
	if status != DecompressionFinished {
		t.Fatalf("status = %v, want DecompressionFinished", status)
	}
	if !bytes.Equal(out[:n], want) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", n, len(want))
	}
}

func TestRoundTripStoredLevel(t *testing.T) {
	want := []byte("a small stored-block payload, well under 65535 bytes")

	compressed, err := inflatetest.Compress(want, 0)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	out := make([]byte, len(want)+16)
	n, status := Decompress(compressed, out)
	if status != DecompressionFinished {
		t.Fatalf("status = %v, want DecompressionFinished", status)
	}
	if !bytes.Equal(out[:n], want) {
		t.Fatalf("round trip mismatch: got %q, want %q", out[:n], want)
	}
}

func TestTotalOutMonotonic(t *testing.T) {
	want := inflatetest.RepeatingText(4096)
	compressed, err := inflatetest.Compress(want, 6)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	var s State
	s.Init(compressed, make([]byte, len(want)+16))

	prev := 0
	for !s.newBlock || !s.bfinal {
		if s.newBlock {
			if st := s.readHeader(); st != DecompressionFinished {
				t.Fatalf("readHeader: %v", st)
			}
		}
		var st Status
		if s.btype == 0 {
			st = s.decodeStoredBlock()
		} else {
			st = s.decodeHuffmanBlock()
		}
		if s.TotalOut() < prev {
			t.Fatalf("TotalOut decreased: %d < %d", s.TotalOut(), prev)
		}
		prev = s.TotalOut()
		if st != DecompressionFinished {
			t.Fatalf("block decode: %v", st)
		}
	}
}
