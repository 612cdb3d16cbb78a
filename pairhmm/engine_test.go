package pairhmm

import "testing"

func TestGetAlignedPairsWithBandingEmptyInputs(t *testing.T) {
	pairs, err := GetAlignedPairsWithBanding(nil, nil, nil, DefaultParameters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("len(pairs) = %d, want 0", len(pairs))
	}
}

func TestGetAlignedPairsWithBandingRejectsBadParameters(t *testing.T) {
	p := DefaultParameters()
	p.Threshold = -1
	_, err := GetAlignedPairsWithBanding(nil, NewSymbolString([]byte("ACGT")), NewSymbolString([]byte("ACGT")), p)
	if err == nil {
		t.Fatal("expected error for invalid Threshold, got nil")
	}
	perr, ok := err.(*Error)
	if !ok || perr.Kind != BadParameters {
		t.Errorf("err = %v, want *Error{Kind: BadParameters}", err)
	}
}

func TestGetAlignedPairsWithBandingIdenticalSequences(t *testing.T) {
	s := NewSymbolString([]byte("ACGTTAGCCATGGACTTTAGCGTACCGTAGA"))
	pairs, err := GetAlignedPairsWithBanding(nil, s, s, DefaultParameters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) == 0 {
		t.Fatal("expected aligned pairs for identical sequences, got none")
	}
	// The identity diagonal X==Y must dominate: every reported pair should
	// lie on it for two identical runs of ACGT.
	for _, ap := range pairs {
		if ap.X != ap.Y {
			t.Errorf("pair (%d,%d) not on the identity diagonal for identical sequences", ap.X, ap.Y)
		}
	}
}

func TestGetAlignedPairsWithBandingOutputDomain(t *testing.T) {
	sX := NewSymbolString([]byte("ACGTACGTTTGGCATCAGT"))
	sY := NewSymbolString([]byte("ACGTACCTTTGGCATCAGA"))
	pairs, err := GetAlignedPairsWithBanding(nil, sX, sY, DefaultParameters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[[2]int]bool)
	for _, ap := range pairs {
		if ap.Prob < 0 || ap.Prob > ProbScale {
			t.Errorf("pair (%d,%d) has out-of-range Prob %d", ap.X, ap.Y, ap.Prob)
		}
		if ap.X < 0 || ap.X >= len(sX) || ap.Y < 0 || ap.Y >= len(sY) {
			t.Errorf("pair (%d,%d) out of sequence bounds (lX=%d, lY=%d)", ap.X, ap.Y, len(sX), len(sY))
		}
		key := [2]int{ap.X, ap.Y}
		if seen[key] {
			t.Errorf("pair (%d,%d) reported more than once", ap.X, ap.Y)
		}
		seen[key] = true
	}
}

func TestGetAlignedPairsWithBandingDeterministic(t *testing.T) {
	sX := NewSymbolString([]byte("ACGTACGTTTGGCATCAGTGGGACATTAGCGA"))
	sY := NewSymbolString([]byte("ACGTACCTTTGGCATCAGAGGGACATTTAGCGA"))
	p := DefaultParameters()

	first, err := GetAlignedPairsWithBanding(nil, sX, sY, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GetAlignedPairsWithBanding(nil, sX, sY, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("len(first) = %d, len(second) = %d: not deterministic", len(first), len(second))
	}
	firstSet := make(map[AlignedPair]bool, len(first))
	for _, ap := range first {
		firstSet[ap] = true
	}
	for _, ap := range second {
		if !firstSet[ap] {
			t.Errorf("pair %+v present on second run but not first", ap)
		}
	}
}

func TestGetAlignedPairsWithBandingCheckpointIndependence(t *testing.T) {
	sX := NewSymbolString([]byte("ACGTACGTTTGGCATCAGTGGGACATTAGCGAACGTACGTTTGGCATCAGTGGGACATTAGCGA"))
	sY := NewSymbolString([]byte("ACGTACCTTTGGCATCAGAGGGACATTTAGCGAACGTACCTTTGGCATCAGAGGGACATTTAGCGA"))

	coarse := DefaultParameters()
	coarse.MinDiagsBetweenTraceBack = 1000
	coarse.TraceBackDiagonals = 40

	fine := DefaultParameters()
	fine.MinDiagsBetweenTraceBack = 10
	fine.TraceBackDiagonals = 2

	coarsePairs, err := GetAlignedPairsWithBanding(nil, sX, sY, coarse)
	if err != nil {
		t.Fatalf("unexpected error (coarse): %v", err)
	}
	finePairs, err := GetAlignedPairsWithBanding(nil, sX, sY, fine)
	if err != nil {
		t.Fatalf("unexpected error (fine): %v", err)
	}

	toSet := func(pairs []AlignedPair) map[[2]int]int {
		m := make(map[[2]int]int, len(pairs))
		for _, ap := range pairs {
			m[[2]int{ap.X, ap.Y}] = ap.Prob
		}
		return m
	}
	coarseSet, fineSet := toSet(coarsePairs), toSet(finePairs)
	if len(coarseSet) != len(fineSet) {
		t.Fatalf("coarse reports %d distinct pairs, fine reports %d: checkpoint interval changed the result",
			len(coarseSet), len(fineSet))
	}
	for k, v := range coarseSet {
		fv, ok := fineSet[k]
		if !ok {
			t.Errorf("pair %v present with coarse checkpointing but not fine", k)
			continue
		}
		diff := v - fv
		if diff < -1 || diff > 1 {
			// Quantisation can differ by one ULP of ProbScale depending on
			// which antidiagonal recomputed the normalising constant.
			t.Errorf("pair %v: coarse Prob=%d, fine Prob=%d, differ by more than quantisation noise", k, v, fv)
		}
	}
}

func TestGetAlignedPairsWithBandingRespectsAnchors(t *testing.T) {
	sX := NewSymbolString([]byte("ACGTACGTTTGGCATCAGTGGGACATTAGCGA"))
	sY := NewSymbolString([]byte("ACGTACCTTTGGCATCAGAGGGACATTTAGCGA"))
	p := DefaultParameters()
	p.DiagonalExpansion = 2

	anchors := [][2]int{{15, 16}}
	pairs, err := GetAlignedPairsWithBanding(anchors, sX, sY, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) == 0 {
		t.Fatal("expected some aligned pairs constrained to a narrow band around the anchor")
	}
}
