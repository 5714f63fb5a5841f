package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
)

const testFasta = ">seq1 example genome\n" +
	"TAAAGACTGCCGAGAGGCCAACACGAGTGC\n" +
	"TAGAACGAGGGGCGTAAACGCGGGTCCGAT\n" +
	">seq2\n" +
	"CNNATG\n"

var wantReport = strings.Join([]string{
	"SEQ\tKIND\tVALUE\tCOUNT",
	"seq1\tskew_min\t11\t-1",
	"seq1\tskew_min\t24\t-1",
	"seq1\tkmer\tCGA\t4",
	"seq1\tkmer\tGAG\t4",
	"seq1\tdnaa_box\tCGC\t11",
	"seq1\tdnaa_box\tGCG\t11",
	"seq2\tskew_min\t1\t-1",
	"seq2\tskew_min\t2\t-1",
	"seq2\tskew_min\t3\t-1",
	"seq2\tskew_min\t4\t-1",
	"seq2\tskew_min\t5\t-1",
	"seq2\tkmer\tATG\t1",
	"seq2\tkmer\tCNN\t1",
	"seq2\tkmer\tNAT\t1",
	"seq2\tkmer\tNNA\t1",
}, "\n") + "\n"

func testOpts() Opts {
	opts := DefaultOpts
	opts.KmerLength = 3
	opts.Window = 20
	opts.Mismatches = 1
	opts.Parallelism = 2
	return opts
}

func writeGzip(t *testing.T, path, data string) {
	f, err := os.Create(path)
	assert.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(data))
	assert.NoError(t, err)
	assert.NoError(t, gz.Close())
	assert.NoError(t, f.Close())
}

func TestRun(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	plainPath := filepath.Join(tempDir, "genome.fa")
	assert.NoError(t, ioutil.WriteFile(plainPath, []byte(testFasta), 0644))
	gzPath := filepath.Join(tempDir, "genome.fa.gz")
	writeGzip(t, gzPath, testFasta)

	for _, inPath := range []string{plainPath, gzPath} {
		outPath := filepath.Join(tempDir, filepath.Base(inPath)+".tsv")
		assert.NoError(t, Run(ctx, inPath, outPath, testOpts()))
		got, err := ioutil.ReadFile(outPath)
		assert.NoError(t, err)
		expect.EQ(t, string(got), wantReport, "input: %s", inPath)
	}
}

func TestRunWithoutKmers(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	inPath := filepath.Join(tempDir, "genome.fa")
	assert.NoError(t, ioutil.WriteFile(inPath, []byte(">s\nGGCAG\n"), 0644))
	outPath := filepath.Join(tempDir, "out.tsv")
	opts := testOpts()
	opts.TopKmers = false
	opts.Window = 0
	assert.NoError(t, Run(ctx, inPath, outPath, opts))
	got, err := ioutil.ReadFile(outPath)
	assert.NoError(t, err)
	expect.EQ(t, string(got), "SEQ\tKIND\tVALUE\tCOUNT\n")
}

// Every position of a long assembly gap ties for the minimum skew.
func TestRunLongGap(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	const gapLen = 200000
	var fa strings.Builder
	fa.WriteString(">gap\nC\n")
	for i := 0; i < gapLen; i += 100 {
		fa.WriteString(strings.Repeat("N", 100))
		fa.WriteString("\n")
	}
	fa.WriteString("G\n")
	inPath := filepath.Join(tempDir, "gap.fa")
	assert.NoError(t, ioutil.WriteFile(inPath, []byte(fa.String()), 0644))
	outPath := filepath.Join(tempDir, "out.tsv")
	opts := testOpts()
	opts.TopKmers = false
	assert.NoError(t, Run(ctx, inPath, outPath, opts))

	got, err := ioutil.ReadFile(outPath)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(got), "\n"), "\n")
	// Header, then positions 1..gapLen+1.  The DnaA window is all N.
	expect.EQ(t, len(lines), gapLen+2)
	expect.EQ(t, lines[1], "gap\tskew_min\t1\t-1")
	expect.EQ(t, lines[len(lines)-1], "gap\tskew_min\t200001\t-1")
	for _, line := range lines[1:] {
		if !strings.HasSuffix(line, "\t-1") {
			t.Fatalf("unexpected row %q", line)
		}
	}
}

func TestRunErrors(t *testing.T) {
	ctx := vcontext.Background()
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()

	err := Run(ctx, filepath.Join(tempDir, "missing.fa"), filepath.Join(tempDir, "out.tsv"), testOpts())
	expect.True(t, err != nil)

	inPath := filepath.Join(tempDir, "genome.fa")
	assert.NoError(t, ioutil.WriteFile(inPath, []byte(testFasta), 0644))
	opts := testOpts()
	opts.KmerLength = 0
	err = Run(ctx, inPath, filepath.Join(tempDir, "out.tsv"), opts)
	expect.True(t, errors.Is(errors.Invalid, err))

	badGz := filepath.Join(tempDir, "bad.fa.gz")
	assert.NoError(t, ioutil.WriteFile(badGz, []byte(testFasta), 0644))
	err = Run(ctx, badGz, filepath.Join(tempDir, "out.tsv"), testOpts())
	expect.True(t, err != nil)
}

func TestMain(m *testing.M) {
	shutdown := grail.Init()
	defer shutdown()
	os.Exit(m.Run())
}
