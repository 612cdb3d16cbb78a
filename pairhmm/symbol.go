package pairhmm

import "math"

// Symbol is one of the five characters the aligner reasons about: the four
// DNA bases plus N for anything else.
type Symbol uint8

// The symbol alphabet. Order matches the reference aligner's enum so the
// match table below lines up index-for-index.
const (
	A Symbol = iota
	C
	G
	T
	N
)

const symbolCount = 5

// symbolOf maps a byte to a Symbol, case-insensitively. Anything outside
// {A,C,G,T} in either case maps to N.
var symbolOf = func() [256]Symbol {
	var t [256]Symbol
	for i := range t {
		t[i] = N
	}
	t['A'], t['a'] = A, A
	t['C'], t['c'] = C, C
	t['G'], t['g'] = G, G
	t['T'], t['t'] = T, T
	return t
}()

// SymbolOf returns the Symbol for a single input byte.
func SymbolOf(b byte) Symbol { return symbolOf[b] }

// SymbolString is an owning sequence of Symbol.
type SymbolString []Symbol

// NewSymbolString converts raw sequence bytes (as returned by a biogo
// linear.Seq) into a SymbolString.
func NewSymbolString(raw []byte) SymbolString {
	s := make(SymbolString, len(raw))
	for i, b := range raw {
		s[i] = SymbolOf(b)
	}
	return s
}

// Emission log-probabilities for the symbol match model. Values are fixed
// by the reference aligner and must reproduce its posteriors bit-for-bit.
const (
	emissionMatch        = -2.1149196655034745 // log(0.12064298095701059)
	emissionTransversion = -4.5691014376830479 // log(0.010367271172731285)
	emissionTransition   = -3.9833860032220842 // log(0.01862247669752685)
	emissionMatchN       = -3.2188758248682006 // log(0.04)
	emissionGap          = -1.6094379124341003 // log(0.2)
)

// matchTable[x*5+y] is the log-probability of observing (x, y) as a match.
// A↔G and C↔T are transitions; all other non-N cross pairs are
// transversions; any row or column touching N uses the N-match value.
var matchTable = [symbolCount * symbolCount]float64{
	/*        A                     C                     G                     T                     N */
	/* A */ emissionMatch, emissionTransversion, emissionTransition, emissionTransversion, emissionMatchN,
	/* C */ emissionTransversion, emissionMatch, emissionTransversion, emissionTransition, emissionMatchN,
	/* G */ emissionTransition, emissionTransversion, emissionMatch, emissionTransversion, emissionMatchN,
	/* T */ emissionTransversion, emissionTransition, emissionTransversion, emissionMatch, emissionMatchN,
	/* N */ emissionMatchN, emissionMatchN, emissionMatchN, emissionMatchN, emissionMatchN,
}

// MatchProb returns the log-probability of x and y being aligned as a
// match. It is symmetric: MatchProb(x, y) == MatchProb(y, x).
func MatchProb(x, y Symbol) float64 {
	return matchTable[int(x)*symbolCount+int(y)]
}

// GapProb returns the log-probability of emitting z opposite a gap. It does
// not depend on the particular symbol.
func GapProb(z Symbol) float64 {
	_ = z
	return emissionGap
}

// sanity check that the documented constants above match their log()
// values to the precision the reference aligner used; this runs once at
// package init and panics (an Internal-class bug) rather than silently
// drifting if someone edits a literal without updating the comment.
func init() {
	const tol = 1e-9
	check := func(name string, got, want float64) {
		if math.Abs(got-want) > tol {
			panic("pairhmm: " + name + " constant does not match its documented value")
		}
	}
	check("emissionMatch", emissionMatch, math.Log(0.12064298095701059))
	check("emissionTransversion", emissionTransversion, math.Log(0.010367271172731285))
	check("emissionTransition", emissionTransition, math.Log(0.01862247669752685))
	check("emissionMatchN", emissionMatchN, math.Log(0.04))
	check("emissionGap", emissionGap, math.Log(0.2))
}
