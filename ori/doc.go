// Package ori implements the routines used to locate a bacterial origin of
// replication (ori): the cumulative G-C skew scan, Hamming distance,
// approximate pattern matching, and generation of Hamming neighborhoods for
// finding frequent words with mismatches.
package ori
