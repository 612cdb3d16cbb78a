package anchor

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/hts/sam"

	"github.com/kortschak/bar/lastz"
	"github.com/kortschak/bar/pairhmm"
)

// External drives lastz as the SeedFinder. LastzPath overrides the binary
// named on PATH; Verbose, when set, logs the command line of every lastz
// invocation in the style of cablastp's Exec.
type External struct {
	LastzPath string
	Verbose   bool
}

var _ SeedFinder = (*External)(nil)

// FindSeedMatches writes sX and sY to temporary FASTA files, runs lastz
// over them, and converts the resulting CIGAR-format hits to anchor pairs
// local to sX/sY, discarding the first and last trim bases of every
// matched run so that anchors sit away from alignment-boundary noise.
func (e *External) FindSeedMatches(sX, sY []byte, trim int, repeatMask bool) ([]Pair, error) {
	targetFile, err := writeTempFasta("target", sX)
	if err != nil {
		return nil, seedFinderIO("writing target sequence: %v", err)
	}
	defer os.Remove(targetFile)

	queryFile, err := writeTempFasta("query", sY)
	if err != nil {
		return nil, seedFinderIO("writing query sequence: %v", err)
	}
	defer os.Remove(queryFile)

	outFile, err := ioutil.TempFile("", "bar-lastz-out-*.cigar")
	if err != nil {
		return nil, seedFinderIO("creating output file: %v", err)
	}
	outFile.Close()
	defer os.Remove(outFile.Name())

	params := lastz.Default(targetFile, queryFile).Mask(repeatMask)
	params.Output = outFile.Name()
	if e.LastzPath != "" {
		params.Cmd = e.LastzPath
	}

	cmd, err := params.BuildCommand()
	if err != nil {
		return nil, seedFinderIO("building lastz command: %v", err)
	}
	if err := e.run(cmd); err != nil {
		return nil, err
	}

	f, err := os.Open(outFile.Name())
	if err != nil {
		return nil, seedFinderIO("reading lastz output: %v", err)
	}
	defer f.Close()

	return parseCigarHits(f, trim)
}

// run executes cmd, converting anything written to stderr into a
// SeedFinderIO error.
func (e *External) run(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if e.Verbose {
		log.Printf("%s\n", strings.Join(cmd.Args, " "))
	}
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return seedFinderIO("running %q: %v\n\nstderr:\n%s", strings.Join(cmd.Args, " "), err, stderr.String())
		}
		return seedFinderIO("running %q: %v", strings.Join(cmd.Args, " "), err)
	}
	return nil
}

func seedFinderIO(format string, args ...interface{}) error {
	return &pairhmm.Error{Kind: pairhmm.SeedFinderIO, Msg: fmt.Sprintf(format, args...)}
}

// writeTempFasta writes seq as a single FASTA record to a temporary file
// and returns its path.
func writeTempFasta(prefix string, seq []byte) (string, error) {
	f, err := ioutil.TempFile("", "bar-"+prefix+"-*.fasta")
	if err != nil {
		return "", err
	}
	defer f.Close()

	s := linear.NewSeq(prefix, alphabet.BytesToLetters(seq), alphabet.DNA)
	if _, err := fmt.Fprintf(f, "%60a\n", s); err != nil {
		return "", err
	}
	return f.Name(), nil
}

// cigarHit is one parsed line of lastz's --format=cigar output:
//
//	cigar name1 start1 end1 strand1 name2 start2 end2 strand2 score editOps...
type cigarHit struct {
	x0, y0 int
	ops    []sam.CigarOp
}

// parseCigarHits reads lastz cigar-format output and returns, for every
// aligned-match run longer than 2*trim, the interior positions of that
// run (with the first and last trim bases of the run discarded) as
// anchor pairs local to the two input sequences.
func parseCigarHits(r io.Reader, trim int) ([]Pair, error) {
	var out []Pair
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.HasPrefix(line, "cigar") {
			continue
		}
		hit, err := parseCigarLine(line)
		if err != nil {
			return nil, seedFinderIO("parsing lastz output line %q: %v", line, err)
		}
		x, y := hit.x0, hit.y0
		for _, op := range hit.ops {
			n := op.Len()
			switch op.Type() {
			case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch:
				if n > 2*trim {
					for i := trim; i < n-trim; i++ {
						out = append(out, Pair{x + i, y + i})
					}
				}
				x += n
				y += n
			case sam.CigarInsertion:
				y += n
			case sam.CigarDeletion:
				x += n
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, seedFinderIO("reading lastz output: %v", err)
	}
	return out, nil
}

// parseCigarLine parses a single lastz cigar-format line. lastz's cigar
// format is a space-separated record, not a SAM CIGAR string, so the
// tokenizer is hand-rolled; only sam.CigarOpType's M/I/D classification
// is reused from biogo/hts/sam.
func parseCigarLine(line string) (cigarHit, error) {
	fields := strings.Fields(line)
	if len(fields) < 10 || fields[0] != "cigar" {
		return cigarHit{}, fmt.Errorf("malformed cigar record")
	}
	start1, err := strconv.Atoi(fields[2])
	if err != nil {
		return cigarHit{}, err
	}
	start2, err := strconv.Atoi(fields[6])
	if err != nil {
		return cigarHit{}, err
	}

	var hit cigarHit
	hit.x0, hit.y0 = start1, start2
	rest := fields[10:]
	for i := 0; i+1 < len(rest); i += 2 {
		op := rest[i]
		n, err := strconv.Atoi(rest[i+1])
		if err != nil {
			return cigarHit{}, err
		}
		var opType sam.CigarOpType
		switch op {
		case "M":
			opType = sam.CigarMatch
		case "I":
			opType = sam.CigarInsertion
		case "D":
			opType = sam.CigarDeletion
		default:
			continue
		}
		hit.ops = append(hit.ops, sam.NewCigarOp(opType, n))
	}
	return hit, nil
}
