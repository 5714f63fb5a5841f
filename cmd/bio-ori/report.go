package main

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dnamessages/bio/encoding/fasta"
	"github.com/dnamessages/bio/ori"
	"github.com/dnamessages/bio/pattern"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
)

// Opts controls what Run reports.
type Opts struct {
	// KmerLength is the length of the k-mers counted, both for the
	// whole-sequence frequency table and for the DnaA box search.
	KmerLength int
	// TopKmers enables the whole-sequence most frequent k-mer report.
	TopKmers bool
	// Window is the length of the region, starting at the first skew
	// minimum, that is searched for DnaA boxes.  0 disables the search.
	Window int
	// Mismatches is the Hamming distance allowed between a DnaA box and its
	// occurrences.
	Mismatches int
	// Parallelism bounds the number of goroutines used for k-mer counting.
	// 0 means runtime.NumCPU().
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	KmerLength:  9,
	TopKmers:    true,
	Window:      500,
	Mismatches:  1,
	Parallelism: 0,
}

func (o Opts) validate() error {
	if o.KmerLength <= 0 {
		return errors.E(errors.Invalid, "k must be positive, got", strconv.Itoa(o.KmerLength))
	}
	if o.Window < 0 {
		return errors.E(errors.Invalid, "window must not be negative, got", strconv.Itoa(o.Window))
	}
	if o.Mismatches < 0 {
		return errors.E(errors.Invalid, "mismatches must not be negative, got", strconv.Itoa(o.Mismatches))
	}
	return nil
}

// loadFa reads the FASTA file at fapath, decompressing it if the name ends
// in .gz.
func loadFa(ctx context.Context, fapath string) (fa fasta.Fasta, err error) {
	var infile file.File
	if infile, err = file.Open(ctx, fapath); err != nil {
		return
	}
	defer func() {
		if e := infile.Close(ctx); e != nil && err == nil {
			err = e
		}
	}()
	reader := io.Reader(infile.Reader(ctx))
	if strings.HasSuffix(fapath, ".gz") {
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(reader); err != nil {
			return nil, errors.E(err, "couldn't decompress", fapath)
		}
		defer func() {
			if e := gz.Close(); e != nil && err == nil {
				err = e
			}
		}()
		reader = gz
	}
	return fasta.New(reader)
}

// Run reports skew minima, frequent k-mers and DnaA box candidates for every
// sequence in the FASTA file at fapath.  The TSV is written to outPath, or to
// stdout if outPath is "-" or empty.
func Run(ctx context.Context, fapath, outPath string, opts Opts) (err error) {
	if err = opts.validate(); err != nil {
		return err
	}
	fa, err := loadFa(ctx, fapath)
	if err != nil {
		return errors.E(err, "couldn't load", fapath)
	}

	var w io.Writer = os.Stdout
	if outPath != "" && outPath != "-" {
		var out file.File
		if out, err = file.Create(ctx, outPath); err != nil {
			return err
		}
		defer func() {
			if e := out.Close(ctx); e != nil && err == nil {
				err = e
			}
		}()
		w = out.Writer(ctx)
	}
	return writeReport(fa, opts, w)
}

func writeReport(fa fasta.Fasta, opts Opts, w io.Writer) error {
	outTSV := tsv.NewWriter(w)
	outTSV.WriteString("SEQ\tKIND\tVALUE\tCOUNT")
	if err := outTSV.EndLine(); err != nil {
		return err
	}
	writeRow := func(seqName, kind, value string, count int) error {
		outTSV.WriteString(seqName)
		outTSV.WriteString(kind)
		outTSV.WriteString(value)
		outTSV.WriteString(strconv.Itoa(count))
		return outTSV.EndLine()
	}

	for _, seqName := range fa.SeqNames() {
		seq, err := fa.Seq(seqName)
		if err != nil {
			return err
		}
		seqLen, err := fa.Len(seqName)
		if err != nil {
			return err
		}
		log.Printf("%s: scanning %d bases", seqName, seqLen)

		skew := ori.Skew(seq)
		minPos := ori.FindMinimumSkew(seq)
		for _, pos := range minPos {
			if err := writeRow(seqName, "skew_min", strconv.Itoa(pos), skew[pos]); err != nil {
				return err
			}
		}

		if opts.TopKmers {
			freq := pattern.ParallelFrequencyTable(seq, opts.KmerLength, opts.Parallelism)
			for _, km := range pattern.MostFrequentKeys(freq) {
				if err := writeRow(seqName, "kmer", km, freq[km]); err != nil {
					return err
				}
			}
		}

		if opts.Window > 0 && len(minPos) > 0 {
			start := minPos[0] - 1
			end := start + opts.Window
			if end > int(seqLen) {
				end = int(seqLen)
			}
			region, err := fa.Get(seqName, uint64(start), uint64(end))
			if err != nil {
				return err
			}
			boxes, err := ori.FrequentWordsWithMismatches(region, opts.KmerLength, opts.Mismatches, true)
			if err != nil {
				log.Error.Printf("%s: skipping DnaA box search in [%d,%d): %v", seqName, start, end, err)
				continue
			}
			for _, box := range boxes {
				rc, err := pattern.ComplementarySequence(box)
				if err != nil {
					return err
				}
				n := ori.ApproximatePatternCount(box, region, opts.Mismatches) +
					ori.ApproximatePatternCount(rc, region, opts.Mismatches)
				if err := writeRow(seqName, "dnaa_box", box, n); err != nil {
					return err
				}
			}
		}
	}
	return outTSV.Flush()
}
