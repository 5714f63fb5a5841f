package kmer

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/grailbio/testutil/h"
	"github.com/stretchr/testify/assert"
)

func testListKmers(seq string, kmerLength int) []AtPos {
	k := NewScanner(kmerLength)
	k.Reset(seq)
	var pos []AtPos
	for k.Scan() {
		pos = append(pos, k.Get())
	}
	return pos
}

func TestScanner(t *testing.T) {
	expect.That(t, testListKmers("AAAGTTCAGGT", 5),
		h.ElementsAre(
			AtPos{0, 11, 127},
			AtPos{1, 47, 31},
			AtPos{2, 189, 519},
			AtPos{3, 756, 897},
			AtPos{4, 978, 480},
			AtPos{5, 842, 376},
			AtPos{6, 299, 94},
		))
}

func TestScannerSkipsAmbiguousWindows(t *testing.T) {
	var got []int
	for _, km := range testListKmers("ACGNACGTNA", 3) {
		got = append(got, km.Pos)
		assert.Equal(t, km.ReverseComplement, ReverseComplement(km.Forward, 3))
	}
	expect.EQ(t, got, []int{0, 4, 5})

	expect.EQ(t, len(testListKmers("AC", 3)), 0)
	expect.EQ(t, len(testListKmers("NNNNN", 2)), 0)
}

func TestScannerMatchesEncode(t *testing.T) {
	seq := "GACCATCAAAACTGATAAACTACTTAAAAATCAGTAAA"
	for _, k := range []int{1, 3, 8, 32} {
		kms := testListKmers(seq, k)
		expect.EQ(t, len(kms), len(seq)-k+1)
		for _, km := range kms {
			want, ok := Encode(seq[km.Pos : km.Pos+k])
			assert.True(t, ok)
			assert.Equal(t, want, km.Forward, "k=%d pos=%d", k, km.Pos)
			assert.Equal(t, seq[km.Pos:km.Pos+k], Decode(km.Forward, k))
			assert.Equal(t, ReverseComplement(km.Forward, k), km.ReverseComplement, "k=%d pos=%d", k, km.Pos)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, s := range []string{"", "A", "T", "ACGT", "AAAAAAAAAAACAAAC", "TTATAT", "GATTACAGATTACAGATTACAGATTACAGATT"} {
		k, ok := Encode(s)
		assert.True(t, ok, s)
		expect.EQ(t, Decode(k, len(s)), s)
	}
	_, ok := Encode("ACGN")
	expect.False(t, ok)
	_, ok = Encode("acgt")
	expect.False(t, ok)
	_, ok = Encode("GATTACAGATTACAGATTACAGATTACAGATTA")
	expect.False(t, ok)
}

func TestReverseComplement(t *testing.T) {
	k, _ := Encode("AAAACCCGGT")
	expect.EQ(t, Decode(ReverseComplement(k, 10), 10), "ACCGGGTTTT")
	k, _ = Encode("ACGT")
	expect.EQ(t, ReverseComplement(k, 4), k)
}

func TestAll(t *testing.T) {
	expect.EQ(t, All(0), []string{""})
	expect.EQ(t, All(1), []string{"A", "C", "G", "T"})
	all := All(3)
	expect.EQ(t, len(all), 64)
	expect.EQ(t, all[0], "AAA")
	expect.EQ(t, all[63], "TTT")
	for i, s := range all {
		k, ok := Encode(s)
		assert.True(t, ok)
		// Lexicographic order matches numeric order of the encoding.
		assert.Equal(t, Kmer(i), k)
	}
}
