package pattern

import "sort"

// FindClumps returns, in lexicographic order, every distinct length-k
// substring of genome that occurs at least minCount times within some
// window of length windowLen.  It returns an empty slice when no window of
// that length fits in genome.
func FindClumps(genome string, k, windowLen, minCount int) []string {
	result := []string{}
	if k <= 0 || windowLen < k || windowLen > len(genome) {
		return result
	}
	clumps := map[string]struct{}{}
	freq := FrequencyTable(genome[:windowLen], k)
	for key, n := range freq {
		if n >= minCount {
			clumps[key] = struct{}{}
		}
	}
	for i := 1; i+windowLen <= len(genome); i++ {
		leaving := genome[i-1 : i-1+k]
		if freq[leaving]--; freq[leaving] == 0 {
			delete(freq, leaving)
		}
		entering := genome[i+windowLen-k : i+windowLen]
		freq[entering]++
		if freq[entering] >= minCount {
			clumps[entering] = struct{}{}
		}
	}
	for key := range clumps {
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}
