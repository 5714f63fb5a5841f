// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

// revComp8Table maps 'A'/'C'/'G'/'T' to their Watson-Crick complement and
// every other byte to 'N'.
var revComp8Table [256]byte

// isACGTTable[x] is 1 iff x is one of 'A', 'C', 'G', 'T'.
var isACGTTable [256]byte

func init() {
	for i := range revComp8Table {
		revComp8Table[i] = 'N'
	}
	revComp8Table['A'] = 'T'
	revComp8Table['C'] = 'G'
	revComp8Table['G'] = 'C'
	revComp8Table['T'] = 'A'

	isACGTTable['A'] = 1
	isACGTTable['C'] = 1
	isACGTTable['G'] = 1
	isACGTTable['T'] = 1
}

// FirstNonACGT8 returns the index of the first byte in ascii8[] that is not
// one of 'A', 'C', 'G', 'T', or -1 if there is no such byte.  Lowercase
// bases are rejected.
func FirstNonACGT8(ascii8 []byte) int {
	for i, b := range ascii8 {
		if isACGTTable[b] == 0 {
			return i
		}
	}
	return -1
}

// ReverseComp8Inplace reverse-complements ascii8[], assuming that it's using
// ASCII encoding.  More precisely, it maps 'A' to 'T', 'C' to 'G', 'G' to
// 'C', 'T' to 'A', and everything else to 'N'.
func ReverseComp8Inplace(ascii8 []byte) {
	nByte := len(ascii8)
	nByteDiv2 := nByte >> 1
	for idx, invIdx := 0, nByte-1; idx != nByteDiv2; idx, invIdx = idx+1, invIdx-1 {
		ascii8[idx], ascii8[invIdx] = revComp8Table[ascii8[invIdx]], revComp8Table[ascii8[idx]]
	}
	if nByte&1 == 1 {
		ascii8[nByteDiv2] = revComp8Table[ascii8[nByteDiv2]]
	}
}

// ReverseComp8NoValidate writes the reverse-complement of src[] to dst[],
// assuming src is using ASCII encoding and every value is one of 'A', 'C',
// 'G', 'T'.  Use FirstNonACGT8 first when that is not known to hold; other
// bytes are written as 'N'.
//
// It panics if len(dst) != len(src).
func ReverseComp8NoValidate(dst, src []byte) {
	nByte := len(src)
	if len(dst) != nByte {
		panic("ReverseComp8NoValidate requires len(dst) == len(src).")
	}
	for idx, invIdx := 0, nByte-1; idx != nByte; idx, invIdx = idx+1, invIdx-1 {
		dst[idx] = revComp8Table[src[invIdx]]
	}
}
