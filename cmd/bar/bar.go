// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bar computes a banded, anchored pairwise alignment between two DNA
// sequences given as single-record FASTA files, seeding the band with
// lastz and posterior-decoding the pair-HMM over the resulting matrix.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/kortschak/bar"
	"github.com/kortschak/bar/anchor"
	"github.com/kortschak/bar/pairhmm"
)

var (
	xFile = flag.String("x", "", "input fasta file for the first sequence (required)")
	yFile = flag.String("y", "", "input fasta file for the second sequence (required)")

	lastzPath = flag.String("lastz", "", "path to lastz if not in $PATH")
	runLastz  = flag.Bool("run-lastz", true, `actually run lastz
    	false is useful to test the banded aligner in isolation
    	on sequences short enough to need no anchors`,
	)

	threshold      = flag.Float64("threshold", 0, "minimum posterior match probability to report (0 uses the package default)")
	diagExpansion  = flag.Int("diagonal-expansion", 0, "diagonal expansion around each anchor (0 uses the package default)")
	alignAmbiguous = flag.Bool("align-ambiguity-characters", false, "set Parameters.AlignAmbiguityCharacters (the aligner does not consume it)")
	verbose        = flag.Bool("v", false, "log lastz invocations and split-rectangle statistics")

	outFile = flag.String("out", "", "output file name (default stdout)")
	errFile = flag.String("err", "", "log file name (default stderr)")
)

func main() {
	flag.Parse()
	if *xFile == "" || *yFile == "" {
		fmt.Fprintln(os.Stderr, "invalid argument: must have -x and -y set")
		flag.Usage()
		os.Exit(1)
	}

	if *errFile != "" {
		w, err := os.Create(*errFile)
		if err != nil {
			log.Fatalf("failed to create log file: %v", err)
		}
		defer w.Close()
		log.SetOutput(w)
	}
	outStream := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("failed to create out file: %v", err)
		}
		defer f.Close()
		outStream = f
	}

	sX, err := readOneSequence(*xFile)
	if err != nil {
		log.Fatalf("failed to read %q: %v", *xFile, err)
	}
	sY, err := readOneSequence(*yFile)
	if err != nil {
		log.Fatalf("failed to read %q: %v", *yFile, err)
	}

	p := bar.DefaultParameters()
	if *threshold > 0 {
		p.Threshold = *threshold
	}
	if *diagExpansion > 0 {
		p.DiagonalExpansion = *diagExpansion
	}
	p.AlignAmbiguityCharacters = *alignAmbiguous

	anchor.Verbose = *verbose

	var finder anchor.SeedFinder
	if *runLastz {
		finder = &anchor.External{LastzPath: *lastzPath, Verbose: *verbose}
	}

	log.Printf("aligning %q (%d bases) against %q (%d bases)", *xFile, len(sX), *yFile, len(sY))
	pairs, err := bar.GetAlignedPairs(sX, sY, finder, p)
	if err != nil {
		log.Fatalf("alignment failed: %v", err)
	}

	log.Printf("found %d aligned pairs", len(pairs))
	for _, ap := range pairs {
		fmt.Fprintf(outStream, "%d\t%d\t%.6f\n", ap.X, ap.Y, float64(ap.Prob)/pairhmm.ProbScale)
	}
}

// readOneSequence reads the first FASTA record from file and returns its
// raw base sequence.
func readOneSequence(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := seqio.NewScanner(fasta.NewReader(f, linear.NewSeq("", nil, alphabet.DNA)))
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: no sequence records found", file)
	}
	seq := sc.Seq().(*linear.Seq)
	raw := make([]byte, len(seq.Seq))
	for i, l := range seq.Seq {
		raw[i] = byte(l)
	}
	return raw, nil
}
