// Package kmer provides a compact 2-bit encoding for short ACGT sequences,
// a sliding scanner that produces the encoding of every window of a
// sequence, and enumeration of all k-mers over ACGT.
package kmer

import (
	"strings"

	"github.com/dnamessages/bio/biosimd"
	"github.com/grailbio/base/simd"
	gunsafe "github.com/grailbio/base/unsafe"
)

const (
	invalidKmerBits = uint8(255)

	// MaxLength is the longest sequence a Kmer can hold.
	MaxLength = 32
)

// Alphabet lists the nucleotides in encoding order.
const Alphabet = "ACGT"

var (
	asciiToKmerMap                  [256]uint8
	asciiToReverseComplementKmerMap [256]uint8
)

func init() {
	for i := range asciiToKmerMap {
		asciiToKmerMap[i] = invalidKmerBits
		asciiToReverseComplementKmerMap[i] = invalidKmerBits
	}
	for i := 0; i < len(Alphabet); i++ {
		asciiToKmerMap[Alphabet[i]] = uint8(i)
		asciiToReverseComplementKmerMap[Alphabet[i]] = uint8(3 - i)
	}
}

// Kmer is a compact encoding of a sequence of ACGT, up to 32 bases.  The
// first base occupies the most significant used bits, so for kmers of equal
// length numeric order is lexicographic order.
type Kmer uint64

// invalidKmer is a sentinel kmer.
const invalidKmer = Kmer(0xffffffffffffffff)

// Encode returns the 2-bit encoding of seq.  It returns false if seq is
// longer than MaxLength or contains a byte other than A, C, G, T.
func Encode(seq string) (Kmer, bool) {
	if len(seq) > MaxLength {
		return invalidKmer, false
	}
	k := asciiToKmer(seq)
	return k, k != invalidKmer
}

// Decode returns the ACGT string of the given length encoded by k.
func Decode(k Kmer, length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := length - 1; i >= 0; i-- {
		b.WriteByte(Alphabet[(k>>(2*uint(i)))&3])
	}
	return b.String()
}

// ReverseComplement returns the encoding of the reverse complement of the
// length-base kmer k.
func ReverseComplement(k Kmer, length int) Kmer {
	var rc Kmer
	for i := 0; i < length; i++ {
		rc = (rc << 2) | (3 - (k & 3))
		k >>= 2
	}
	return rc
}

func asciiToKmer(seq string) Kmer {
	var k Kmer
	for _, ch := range []byte(seq) {
		b := asciiToKmerMap[ch]
		if b == invalidKmerBits {
			return invalidKmer
		}
		k = (k << 2) | Kmer(b)
	}
	return k
}

func nextAmbiguousPosition(seq string, si int) int {
	for i := si; i < len(seq); i++ {
		if asciiToKmerMap[seq[i]] == invalidKmerBits {
			return i
		}
	}
	return len(seq)
}

// AtPos is one window produced by Scanner.
type AtPos struct {
	// Pos is the 0-based start of the window.
	Pos int
	// Forward and reverse-complement encodings of seq[Pos,Pos+k).
	Forward, ReverseComplement Kmer
}

// Scanner iterates over the length-k windows of a sequence, skipping any
// window that contains a byte other than A, C, G, T.
//
//   s := kmer.NewScanner(3)
//   s.Reset("ACGTN")
//   for s.Scan() {
//     km := s.Get()
//     ...
//   }
type Scanner struct {
	kmerLength int
	tmpSeq     []byte
	mask       Kmer // ~0 << (2*kmerLength)

	seq string
	si  int
	cur AtPos
}

// NewScanner creates a scanner for windows of the given length, which must be
// in [1, MaxLength].
func NewScanner(kmerLength int) *Scanner {
	if kmerLength <= 0 || kmerLength > MaxLength {
		panic("kmer.NewScanner: length out of range")
	}
	return &Scanner{
		kmerLength: kmerLength,
		mask:       ^(Kmer(0xffffffffffffffff) << Kmer(kmerLength*2 /*2==#bits per base*/)),
	}
}

// Reset starts a new scan over seq.
func (k *Scanner) Reset(seq string) {
	k.seq = seq
	k.si = 0
}

// Scan advances to the next valid window.  It returns false when there are
// no more windows.
func (k *Scanner) Scan() bool {
	if k.si > 0 /*k.cur is set*/ && k.si == k.cur.Pos+1 && k.si+k.kmerLength <= len(k.seq) {
		nextCh := k.seq[k.si+k.kmerLength-1]
		if bits := asciiToKmerMap[nextCh]; bits != invalidKmerBits {
			// Fast path. Directly add the 2-bit encoding of "nextCh" to k.cur.Forward
			// and k.cur.ReverseComplement.
			k.cur.Pos = k.si
			k.cur.Forward = ((k.cur.Forward << 2) | Kmer(bits)) & k.mask
			shift := (Kmer(k.kmerLength) - 1) * 2
			k.cur.ReverseComplement = (k.cur.ReverseComplement >> 2) | (Kmer(asciiToReverseComplementKmerMap[nextCh]) << shift)
			k.si++
			return true
		}
		// Fall through
	}

	for k.si+k.kmerLength <= len(k.seq) {
		forwardStr := k.seq[k.si : k.si+k.kmerLength]
		var forwardKmer, reverseKmer Kmer
		if forwardKmer = asciiToKmer(forwardStr); forwardKmer == invalidKmer {
			k.si = nextAmbiguousPosition(k.seq, k.si) + 1
			continue
		}
		simd.ResizeUnsafe(&k.tmpSeq, k.kmerLength)
		biosimd.ReverseComp8NoValidate(k.tmpSeq, gunsafe.StringToBytes(forwardStr))
		if reverseKmer = asciiToKmer(gunsafe.BytesToString(k.tmpSeq)); reverseKmer == invalidKmer {
			panic("shouldn't happen")
		}
		k.cur = AtPos{Pos: k.si, Forward: forwardKmer, ReverseComplement: reverseKmer}
		k.si++
		return true
	}
	return false
}

// Get returns the window found by the last successful call to Scan.
func (k *Scanner) Get() AtPos { return k.cur }

// All returns every string of length k over ACGT, in lexicographic order.
// It returns [""] when k == 0.
func All(k int) []string {
	var fn func(partial string, length int) []string
	fn = func(partial string, length int) []string {
		if len(partial) == length {
			return []string{partial}
		}

		kmers := []string{}
		for _, c := range []byte(Alphabet) {
			newPartial := append([]byte(partial), c)
			kmers = append(kmers, fn(string(newPartial), length)...)
		}
		return kmers
	}

	return fn("", k)
}
