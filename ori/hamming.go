package ori

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// HammingDistance returns the number of positions at which a and b differ.
// It returns an errors.Invalid error if a and b have different lengths.
func HammingDistance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("hamming distance: length mismatch: %d (%q) vs %d (%q)", len(a), a, len(b), b))
	}
	return mismatches(a, b, len(a)), nil
}

// mismatches counts the differing positions of two equal-length strings,
// giving up once the count exceeds limit.  The return value is then
// limit+1.
func mismatches(a, b string, limit int) int {
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if n++; n > limit {
				return n
			}
		}
	}
	return n
}

// ApproximatePatternMatchingStarts returns, in ascending order, every 0-based
// offset i such that genome[i:i+len(pattern)] differs from pattern in at
// most maxDiff positions.  The result is empty if pattern is longer than
// genome or maxDiff is negative.
func ApproximatePatternMatchingStarts(pattern, genome string, maxDiff int) []int {
	pos := []int{}
	if maxDiff < 0 {
		return pos
	}
	k := len(pattern)
	for i := 0; i+k <= len(genome); i++ {
		if mismatches(genome[i:i+k], pattern, maxDiff) <= maxDiff {
			pos = append(pos, i)
		}
	}
	return pos
}

// ApproximatePatternCount returns the number of windows of genome within
// Hamming distance maxDiff of pattern.
func ApproximatePatternCount(pattern, genome string, maxDiff int) int {
	return len(ApproximatePatternMatchingStarts(pattern, genome, maxDiff))
}
