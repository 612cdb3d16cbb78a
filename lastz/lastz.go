// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lastz provides interaction with the lastz local aligner, used as
// the external seed finder behind anchor.SeedFinder.
package lastz

import (
	"errors"
	"os/exec"
	"text/template"

	"github.com/biogo/external"
)

var ErrMissingRequired = errors.New("lastz: missing required argument")

// LASTZ defines parameters for the lastz aligner. Target and Query are
// positional arguments naming FASTA files; lastz indexes the target, but
// for a single pairwise comparison it does not matter which of sX/sY fills
// which role so long as the caller translates reported coordinates back
// consistently.
type LASTZ struct {
	// Usage: lastz target[.fasta] query[.fasta] [options]
	//
	Cmd string `buildarg:"{{if .}}{{.}}{{else}}lastz{{end}}"` // lastz

	Target string `buildarg:"{{.}}"` // target[.fasta]
	Query  string `buildarg:"{{.}}"` // query[.fasta]

	// Output options:
	Output string `buildarg:"{{if .}}--output{{split}}{{.}}{{end}}"` // --output: outfile (stdout if empty)
	Format string `buildarg:"{{if .}}--format{{split}}{{.}}{{end}}"` // --format=cigar|general|sam|...

	// Seeding and scoring options:
	Seed      string `buildarg:"{{if .}}--seed{{split}}{{.}}{{end}}"`      // --seed
	HspThresh int    `buildarg:"{{if .}}--hspthresh{{split}}{{.}}{{end}}"` // --hspthresh: HSP score threshold
	Gapped    bool   `buildarg:"{{if .}}--gapped{{end}}"`                  // --gapped: perform gapped extension
	Chain     bool   `buildarg:"{{if .}}--chain{{end}}"`                   // --chain: chain HSPs before gapped extension
	Strand    string `buildarg:"{{if .}}--strand{{split}}{{.}}{{end}}"`    // --strand=both|plus|minus
	Ambiguous string `buildarg:"{{if .}}--ambiguous{{split}}{{.}}{{end}}"` // --ambiguous=iupac|n|x

	// Masking options:
	Masking  int  `buildarg:"{{if .}}--masking{{split}}{{.}}{{end}}"` // --masking: mask after this many hits at a position
	NoUnmask bool `buildarg:"{{if .}}--nounmask{{end}}"`              // --nounmask: do not unmask the target/query
	Unmask   bool `buildarg:"{{if .}}--unmask{{end}}"`                // --unmask: ignore lower-case masking

	// Reporting options:
	Identity string `buildarg:"{{if .}}--identity{{split}}{{.}}{{end}}"` // --identity=min[..max]
	Coverage string `buildarg:"{{if .}}--coverage{{split}}{{.}}{{end}}"` // --coverage=min[..max]

	NoTrivial bool `buildarg:"{{if .}}--notrivial{{end}}"` // --notrivial: omit the self-alignment block
}

// BuildCommand returns an exec.Cmd built from the parameters in l.
func (l LASTZ) BuildCommand() (*exec.Cmd, error) {
	if l.Target == "" || l.Query == "" {
		return nil, ErrMissingRequired
	}
	cl := external.Must(external.Build(l, template.FuncMap{}))
	return exec.Command(cl[0], cl[1:]...), nil
}

// Default returns the LASTZ parameterisation the anchor finder drives:
// gapped, chained, plus-strand-only HSPs reported as CIGAR. Masking is
// left to the caller via Mask, since repeat handling differs between the
// top-level and recursive non-repeat-masked passes.
func Default(target, query string) LASTZ {
	return LASTZ{
		Target:    target,
		Query:     query,
		Format:    "cigar",
		HspThresh: 800,
		Chain:     true,
		Gapped:    true,
		Strand:    "plus",
		Ambiguous: "iupac",
		NoTrivial: true,
	}
}

// Mask sets the masking behaviour appropriate to whether lower-case
// (repeat-masked) bases should be given special treatment for this call.
func (l LASTZ) Mask(repeatMask bool) LASTZ {
	if repeatMask {
		l.Masking = 1
	} else {
		l.Unmask = true
	}
	return l
}
