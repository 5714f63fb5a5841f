package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	kmerLength  = flag.Int("k", DefaultOpts.KmerLength, "Length of the k-mers to count")
	topKmers    = flag.Bool("top-kmers", DefaultOpts.TopKmers, "Report the most frequent k-mers of each sequence")
	window      = flag.Int("window", DefaultOpts.Window, "Length of the window after the first skew minimum searched for DnaA boxes; 0 disables the search")
	mismatches  = flag.Int("mismatches", DefaultOpts.Mismatches, "Max Hamming distance of a DnaA box occurrence")
	parallelism = flag.Int("parallelism", DefaultOpts.Parallelism, "Maximum number of goroutines used for k-mer counting; 0 = runtime.NumCPU()")
	outPath     = flag.String("out", "-", "Output TSV path; '-' writes to stdout")
)

func bioOriUsage() {
	fmt.Printf("Usage: %s [OPTIONS] fapath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioOriUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		log.Fatalf("Exactly one positional argument (fapath) expected; please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
	}
	ctx := vcontext.Background()
	opts := Opts{
		KmerLength:  *kmerLength,
		TopKmers:    *topKmers,
		Window:      *window,
		Mismatches:  *mismatches,
		Parallelism: *parallelism,
	}
	if err := Run(ctx, flag.Arg(0), *outPath, opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Debug.Printf("exiting")
}
