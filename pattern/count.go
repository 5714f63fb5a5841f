package pattern

import "strings"

// CountPattern returns the number of times pattern occurs in text,
// including overlapping occurrences.  It returns 0 if pattern is empty or
// longer than text.
//
//   CountPattern("GACCATCAAAACTGATAAACTACTTAAAAATCAGTAAA", "AAA") == 7
func CountPattern(text, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}
	count := 0
	for i := 0; ; {
		j := strings.Index(text[i:], pattern)
		if j < 0 {
			return count
		}
		count++
		i += j + 1
	}
}

// PatternStartPositions returns the 0-based start offset of every occurrence
// of pattern in text, overlapping occurrences included, in ascending order.
// The result is empty if pattern is empty or longer than text.
func PatternStartPositions(pattern, text string) []int {
	pos := []int{}
	if len(pattern) == 0 {
		return pos
	}
	for i := 0; ; {
		j := strings.Index(text[i:], pattern)
		if j < 0 {
			return pos
		}
		pos = append(pos, i+j)
		i += j + 1
	}
}
