package pairhmm

import "testing"

func TestSymbolOfCaseInsensitive(t *testing.T) {
	pairs := []struct {
		b    byte
		want Symbol
	}{
		{'A', A}, {'a', A},
		{'C', C}, {'c', C},
		{'G', G}, {'g', G},
		{'T', T}, {'t', T},
		{'N', N}, {'-', N}, {'x', N},
	}
	for _, p := range pairs {
		if got := SymbolOf(p.b); got != p.want {
			t.Errorf("SymbolOf(%q) = %v, want %v", p.b, got, p.want)
		}
	}
}

func TestNewSymbolString(t *testing.T) {
	s := NewSymbolString([]byte("AcGtn"))
	want := SymbolString{A, C, G, T, N}
	if len(s) != len(want) {
		t.Fatalf("len(s) = %d, want %d", len(s), len(want))
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestMatchProbSymmetric(t *testing.T) {
	symbols := []Symbol{A, C, G, T, N}
	for _, x := range symbols {
		for _, y := range symbols {
			if MatchProb(x, y) != MatchProb(y, x) {
				t.Errorf("MatchProb(%v, %v) != MatchProb(%v, %v)", x, y, y, x)
			}
		}
	}
}

func TestMatchProbSelfIsBestExceptN(t *testing.T) {
	for _, x := range []Symbol{A, C, G, T} {
		self := MatchProb(x, x)
		for _, y := range []Symbol{A, C, G, T} {
			if y == x {
				continue
			}
			if MatchProb(x, y) >= self {
				t.Errorf("MatchProb(%v, %v) = %v >= MatchProb(%v, %v) = %v: self-match should be most probable",
					x, y, MatchProb(x, y), x, x, self)
			}
		}
	}
}

func TestGapProbIndependentOfSymbol(t *testing.T) {
	want := GapProb(A)
	for _, x := range []Symbol{C, G, T, N} {
		if got := GapProb(x); got != want {
			t.Errorf("GapProb(%v) = %v, want %v", x, got, want)
		}
	}
}
