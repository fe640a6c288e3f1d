package accretion

import "testing"

func TestIsDustAvailable(t *testing.T) {
	bands := []DustBand{
		{InnerEdge: 0, OuterEdge: 1, HasDust: false},
		{InnerEdge: 1, OuterEdge: 2, HasDust: true},
		{InnerEdge: 2, OuterEdge: 3, HasDust: false},
	}

	if IsDustAvailable(bands, 0, 1) {
		t.Fatalf("expected no dust in [0,1)")
	}
	if !IsDustAvailable(bands, 0.5, 1.5) {
		t.Fatalf("expected dust overlap with [1,2)")
	}
	if IsDustAvailable(bands, 2, 3) {
		t.Fatalf("expected no dust in [2,3)")
	}
}

func TestSplitFullyOutside(t *testing.T) {
	star := StaticStar{MassRatio: 1, LuminosityRatio: 1}
	calc := NewCalculator(star, DefaultDoleConstants())

	bands := []DustBand{{InnerEdge: 10, OuterEdge: 20, HasDust: true, HasGas: true}}
	proto := ProtoPlanet{Axis: 0.5, Ecc: 0, Mass: 1e-15}

	got := Split(bands, proto, true, calc)
	if len(got) != 1 || got[0] != bands[0] {
		t.Fatalf("expected band unchanged, got %+v", got)
	}
}

func TestSplitCoversCoverage(t *testing.T) {
	// Regardless of how a band is split, total radial measure (sum of
	// outer-inner) is preserved.
	bands := []DustBand{{InnerEdge: 0, OuterEdge: 10, HasDust: true, HasGas: true}}

	cases := []struct {
		name           string
		sweepInner     float64
		sweepOuter     float64
		retainGas      bool
		expectedPieces int
	}{
		{"middle", 3, 7, true, 3},
		{"innerEdge", 0, 4, true, 2},
		{"outerEdge", 6, 10, true, 2},
		{"wholeBand", 0, 10, false, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pieces := splitBand(bands[0], c.sweepInner, c.sweepOuter, c.retainGas)
			if len(pieces) != c.expectedPieces {
				t.Fatalf("expected %d pieces, got %d: %+v", c.expectedPieces, len(pieces), pieces)
			}

			var measure float64
			for i, p := range pieces {
				measure += p.OuterEdge - p.InnerEdge
				if i > 0 && pieces[i-1].OuterEdge != p.InnerEdge {
					t.Fatalf("pieces not contiguous: %+v", pieces)
				}
			}
			if measure != bands[0].OuterEdge-bands[0].InnerEdge {
				t.Fatalf("radial measure not preserved: got %v want %v", measure, bands[0].OuterEdge-bands[0].InnerEdge)
			}
			if pieces[0].InnerEdge != bands[0].InnerEdge {
				t.Fatalf("first piece must start at band inner edge")
			}
			if pieces[len(pieces)-1].OuterEdge != bands[0].OuterEdge {
				t.Fatalf("last piece must end at band outer edge")
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	bands := []DustBand{
		{InnerEdge: 0, OuterEdge: 1, HasDust: true, HasGas: true},
		{InnerEdge: 1, OuterEdge: 2, HasDust: true, HasGas: true},
		{InnerEdge: 2, OuterEdge: 3, HasDust: false, HasGas: true},
		{InnerEdge: 3, OuterEdge: 4, HasDust: false, HasGas: false},
	}

	once := Merge(bands)
	twice := Merge(once)

	if len(once) != len(twice) {
		t.Fatalf("merge not idempotent: %+v vs %+v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("merge not idempotent at %d: %+v vs %+v", i, once[i], twice[i])
		}
	}

	if len(once) != 3 {
		t.Fatalf("expected the two dusted bands to collapse into one, got %+v", once)
	}
	if once[0].InnerEdge != 0 || once[0].OuterEdge != 2 {
		t.Fatalf("expected merged dusted band [0,2), got %+v", once[0])
	}
}

func TestMergeNoAdjacentMergeable(t *testing.T) {
	bands := []DustBand{
		{InnerEdge: 0, OuterEdge: 1, HasDust: true, HasGas: false},
		{InnerEdge: 1, OuterEdge: 2, HasDust: false, HasGas: true},
	}
	got := Merge(bands)
	if len(got) != 2 {
		t.Fatalf("expected no merge across differing bands, got %+v", got)
	}
}

func TestSplitNoOverlapPreservesBands(t *testing.T) {
	star := StaticStar{MassRatio: 1, LuminosityRatio: 1}
	calc := NewCalculator(star, DefaultDoleConstants())

	bands := []DustBand{
		{InnerEdge: 0, OuterEdge: 1, HasDust: true, HasGas: true},
		{InnerEdge: 1, OuterEdge: 2, HasDust: true, HasGas: true},
	}
	proto := ProtoPlanet{Axis: 100, Ecc: 0, Mass: 1e-15}

	split := Split(bands, proto, true, calc)
	merged := Merge(split)

	if len(merged) != 1 {
		t.Fatalf("expected untouched bands to remain mergeable into one, got %+v", merged)
	}
	if merged[0].InnerEdge != 0 || merged[0].OuterEdge != 2 {
		t.Fatalf("expected coverage [0,2) preserved, got %+v", merged[0])
	}
}
