package ori

import (
	"fmt"
	"sort"

	"github.com/dnamessages/bio/biosimd"
	"github.com/dnamessages/bio/kmer"
	"github.com/grailbio/base/errors"
	gunsafe "github.com/grailbio/base/unsafe"
)

func validateACGT(what, seq string) error {
	if i := biosimd.FirstNonACGT8(gunsafe.StringToBytes(seq)); i >= 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("%s: invalid base %q at offset %d in %q", what, seq[i], i, seq))
	}
	return nil
}

// ImmediateNeighbors returns pattern followed by every string obtained by
// replacing exactly one of its bases with a different one.  Substitutions
// are listed by position, then in ACGT order of the replacement base, so for
// an ACGT pattern the result has exactly 1+3*len(pattern) distinct entries.
// A byte outside ACGT is replaced by each of the four bases, which adds one
// entry per such byte; use Neighbors when the input needs validating.
func ImmediateNeighbors(pattern string) []string {
	result := make([]string, 0, 1+3*len(pattern))
	result = append(result, pattern)
	buf := []byte(pattern)
	for i := range buf {
		orig := buf[i]
		for _, b := range []byte(kmer.Alphabet) {
			if b == orig {
				continue
			}
			buf[i] = b
			result = append(result, string(buf))
		}
		buf[i] = orig
	}
	return result
}

// Neighbors returns, in lexicographic order and without duplicates, every
// string over ACGT of the same length as pattern whose Hamming distance from
// pattern is at most maxDiff.  The result is empty if maxDiff is negative
// and holds only pattern if maxDiff == 0.  Neighbors returns an
// errors.Invalid error if pattern contains a byte other than A, C, G, T.
func Neighbors(pattern string, maxDiff int) ([]string, error) {
	if err := validateACGT("neighbors", pattern); err != nil {
		return nil, err
	}
	if maxDiff < 0 {
		return []string{}, nil
	}
	return dedup(neighbors(pattern, maxDiff)), nil
}

// neighbors builds the neighborhood recursively from the neighborhood of
// pattern[1:].  A suffix neighbor that already uses the whole budget can
// only be extended with pattern's own first base; any other can take all
// four.  The result may contain duplicates.
func neighbors(pattern string, maxDiff int) []string {
	if maxDiff <= 0 || len(pattern) == 0 {
		return []string{pattern}
	}
	if len(pattern) == 1 {
		return []string{"A", "C", "G", "T"}
	}
	suffix := pattern[1:]
	var result []string
	for _, s := range neighbors(suffix, maxDiff) {
		if mismatches(suffix, s, maxDiff) < maxDiff {
			for _, b := range []byte(kmer.Alphabet) {
				result = append(result, string(b)+s)
			}
		} else {
			result = append(result, pattern[:1]+s)
		}
	}
	return result
}

func dedup(seqs []string) []string {
	seen := make(map[string]struct{}, len(seqs))
	result := make([]string, 0, len(seqs))
	for _, s := range seqs {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			result = append(result, s)
		}
	}
	sort.Strings(result)
	return result
}

// FrequentWordsWithMismatches returns, in lexicographic order, the length-k
// strings over ACGT that maximize the number of windows of text within
// Hamming distance d.  The strings need not occur in text.  If
// reverseComplements is set, windows within distance d of a string's reverse
// complement count towards it as well.
//
// k must be at most kmer.MaxLength.  The result is empty if k <= 0,
// k > len(text) or d < 0.
func FrequentWordsWithMismatches(text string, k, d int, reverseComplements bool) ([]string, error) {
	if k > kmer.MaxLength {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("frequent words: k=%d exceeds %d", k, kmer.MaxLength))
	}
	if err := validateACGT("frequent words", text); err != nil {
		return nil, err
	}
	if k <= 0 || k > len(text) || d < 0 {
		return []string{}, nil
	}
	counts := map[kmer.Kmer]int{}
	s := kmer.NewScanner(k)
	s.Reset(text)
	countNeighbors := func(window string) {
		for _, n := range dedup(neighbors(window, d)) {
			km, _ := kmer.Encode(n)
			counts[km]++
		}
	}
	for s.Scan() {
		km := s.Get()
		countNeighbors(kmer.Decode(km.Forward, k))
		if reverseComplements {
			countNeighbors(kmer.Decode(km.ReverseComplement, k))
		}
	}
	maxCount := 0
	var best []kmer.Kmer
	for km, n := range counts {
		switch {
		case n > maxCount:
			maxCount = n
			best = append(best[:0], km)
		case n == maxCount:
			best = append(best, km)
		}
	}
	sort.Slice(best, func(i, j int) bool { return best[i] < best[j] })
	result := make([]string, len(best))
	for i, km := range best {
		result[i] = kmer.Decode(km, k)
	}
	return result, nil
}
