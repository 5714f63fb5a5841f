/*
bio-ori scans the sequences of a FASTA file for likely replication origins.

For every sequence it reports the 1-based positions where the cumulative G-C
skew reaches its minimum, the most frequent k-mers of the whole sequence,
and the most frequent k-mers with mismatches (counting reverse complements)
in a window starting at the first skew minimum, which is where DnaA boxes
are expected.

Output is a TSV with columns SEQ, KIND, VALUE and COUNT.  KIND is one of
  skew_min  VALUE is a 1-based position, COUNT the skew there
  kmer      VALUE is a k-mer, COUNT its number of occurrences
  dnaa_box  VALUE is a k-mer, COUNT its approximate occurrences in the window

Sample usage:
bio-ori -k 9 -window 500 -mismatches 1 -out ori.tsv genome.fa.gz
*/
package main
