package ori

// Skew returns the cumulative G-C skew of genome: result[i] is the number of
// G minus the number of C among the first i bases, so len(result) ==
// len(genome)+1 and result[0] == 0.  Bytes other than C and G do not change
// the skew.
func Skew(genome string) []int {
	skew := make([]int, len(genome)+1)
	for i := 0; i < len(genome); i++ {
		skew[i+1] = skew[i] + skewStep(genome[i])
	}
	return skew
}

func skewStep(b byte) int {
	switch b {
	case 'C':
		return -1
	case 'G':
		return 1
	}
	return 0
}

// FindMinimumSkew returns the 1-based positions i, in ascending order, at
// which the skew over genome[:i] reaches its minimum.  The scan starts at
// level 0 before the first base, and that starting point is never reported
// itself; a genome whose skew never returns to 0 or below yields no
// positions.
//
// In many bacterial genomes the minimum lies near ori.
//
//   FindMinimumSkew("TAAAGACTGCCGAGAGGCCAACACGAGTGCTAGAACGAGGGGCGTAAACGCGGGTCCGAT") == []int{11, 24}
func FindMinimumSkew(genome string) []int {
	level, minLevel := 0, 0
	pos := []int{}
	for i := 0; i < len(genome); i++ {
		level += skewStep(genome[i])
		switch {
		case level == minLevel:
			pos = append(pos, i+1)
		case level < minLevel:
			minLevel = level
			pos = append(pos[:0], i+1)
		}
	}
	return pos
}
