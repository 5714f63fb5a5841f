package pattern

import (
	"runtime"
	"sort"

	farm "github.com/dgryski/go-farm"
	"github.com/dnamessages/bio/biosimd"
	"github.com/dnamessages/bio/kmer"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	gunsafe "github.com/grailbio/base/unsafe"
)

// FrequencyTable returns the number of occurrences of every length-k
// substring of text.  The table is empty (but non-nil) if k <= 0 or
// k > len(text).
//
//   FrequencyTable("CAAAAACTCAAA", 3) ==
//     map[string]int{"CAA": 2, "AAA": 4, "AAC": 1, "ACT": 1, "CTC": 1, "TCA": 1}
func FrequencyTable(text string, k int) map[string]int {
	if k <= 0 || k > len(text) {
		return map[string]int{}
	}
	if k <= kmer.MaxLength && biosimd.FirstNonACGT8(gunsafe.StringToBytes(text)) < 0 {
		return packedFrequencyTable(text, k)
	}
	return windowFrequencyTable(text, k, 0, len(text)-k+1)
}

// windowFrequencyTable counts the k-mers starting at positions [start, limit).
func windowFrequencyTable(text string, k, start, limit int) map[string]int {
	freq := map[string]int{}
	for i := start; i < limit; i++ {
		freq[text[i:i+k]]++
	}
	return freq
}

// packedFrequencyTable counts k-mers on their 2-bit encoding and converts
// the keys back to strings at the end.  text must consist of ACGT only.
func packedFrequencyTable(text string, k int) map[string]int {
	packed := map[kmer.Kmer]int{}
	s := kmer.NewScanner(k)
	s.Reset(text)
	for s.Scan() {
		packed[s.Get().Forward]++
	}
	freq := make(map[string]int, len(packed))
	for km, n := range packed {
		freq[kmer.Decode(km, k)] = n
	}
	return freq
}

// ParallelFrequencyTable computes the same table as FrequencyTable, using up
// to parallelism goroutines.  parallelism <= 0 means runtime.NumCPU().
//
// The window range is split into contiguous jobs, each producing a partial
// table.  The partial tables are then merged shard by shard, where a key's
// shard is chosen by its farmhash, so that no two merge jobs touch the same
// key.
func ParallelFrequencyTable(text string, k, parallelism int) map[string]int {
	if k <= 0 || k > len(text) {
		return map[string]int{}
	}
	nWindow := len(text) - k + 1
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > nWindow {
		parallelism = nWindow
	}
	if parallelism == 1 {
		return FrequencyTable(text, k)
	}
	log.Debug.Printf("ParallelFrequencyTable: %d windows, k=%d, %d jobs", nWindow, k, parallelism)

	partials := make([]map[string]int, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * nWindow) / parallelism
		endIdx := ((jobIdx + 1) * nWindow) / parallelism
		partials[jobIdx] = windowFrequencyTable(text, k, startIdx, endIdx)
		return nil
	})
	if err != nil {
		log.Panicf("ParallelFrequencyTable: count: %v", err)
	}

	nShard := parallelism
	shards := make([]map[string]int, nShard)
	err = traverse.Each(nShard, func(shard int) error {
		merged := map[string]int{}
		for _, partial := range partials {
			for key, n := range partial {
				if shardOf(key, nShard) == shard {
					merged[key] += n
				}
			}
		}
		shards[shard] = merged
		return nil
	})
	if err != nil {
		log.Panicf("ParallelFrequencyTable: merge: %v", err)
	}

	freq := map[string]int{}
	for _, shard := range shards {
		for key, n := range shard {
			freq[key] = n
		}
	}
	return freq
}

func shardOf(key string, nShard int) int {
	return int(farm.Hash64(gunsafe.StringToBytes(key)) % uint64(nShard))
}

// MostFrequentPatterns returns the length-k substrings of text that occur
// most often, in lexicographic order.  It returns an empty slice if text has
// no length-k substring.
func MostFrequentPatterns(text string, k int) []string {
	return MostFrequentKeys(FrequencyTable(text, k))
}

// MostFrequentKeys returns, in lexicographic order, the keys of freq that
// have the largest count.  Keys with a count <= 0 are never returned.  Use it
// on the result of ParallelFrequencyTable.
func MostFrequentKeys(freq map[string]int) []string {
	result := []string{}
	maxCount := 0
	for key, n := range freq {
		switch {
		case n <= 0:
		case n > maxCount:
			maxCount = n
			result = append(result[:0], key)
		case n == maxCount:
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result
}
