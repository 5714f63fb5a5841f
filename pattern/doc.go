// Package pattern implements exact pattern search over DNA sequences:
// counting and locating occurrences of a pattern, k-mer frequency tables,
// most frequent k-mers, clump finding, and reverse complements.
//
// All functions are pure.  Sequences are plain Go strings over A, C, G, T;
// positions are 0-based.
package pattern
