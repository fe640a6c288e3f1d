package accretion

// DustBand is a radial annulus of the disc. Bands are held in an ordered
// sequence by ascending edge; adjacent bands touch and the sequence covers
// [0, outer_dust_limit] exactly.
type DustBand struct {
	InnerEdge float64
	OuterEdge float64
	HasDust   bool
	HasGas    bool
}

// IsDustAvailable reports whether any dusted band overlaps (inner, outer).
func IsDustAvailable(bands []DustBand, inner, outer float64) bool {
	for _, b := range bands {
		if b.HasDust && b.OuterEdge > inner && b.InnerEdge < outer {
			return true
		}
	}
	return false
}

// Split partitions bands against a protoplanet's sweep annulus. retainGas
// is true for sub-critical bodies (they leave gas behind for future
// bodies) and false for gas giants (which strip gas permanently).
func Split(bands []DustBand, proto ProtoPlanet, retainGas bool, calc *Calculator) []DustBand {
	sweepInner, sweepOuter := proto.SweepLimits(calc)

	result := make([]DustBand, 0, len(bands)+2)
	for _, b := range bands {
		result = append(result, splitBand(b, sweepInner, sweepOuter, retainGas)...)
	}
	return result
}

func splitBand(b DustBand, sweepInner, sweepOuter float64, retainGas bool) []DustBand {
	if sweepOuter <= b.InnerEdge || sweepInner >= b.OuterEdge {
		// Case 1: fully outside the sweep annulus.
		return []DustBand{b}
	}

	if sweepInner <= b.InnerEdge && sweepOuter >= b.OuterEdge {
		// Case 5: band fully inside the sweep annulus.
		return []DustBand{{
			InnerEdge: b.InnerEdge,
			OuterEdge: b.OuterEdge,
			HasDust:   false,
			HasGas:    b.HasGas && retainGas,
		}}
	}

	if sweepInner > b.InnerEdge && sweepOuter < b.OuterEdge {
		// Case 2: sweep annulus strictly inside the band, three pieces.
		return []DustBand{
			{InnerEdge: b.InnerEdge, OuterEdge: sweepInner, HasDust: b.HasDust, HasGas: b.HasGas},
			{InnerEdge: sweepInner, OuterEdge: sweepOuter, HasDust: false, HasGas: b.HasGas && retainGas},
			{InnerEdge: sweepOuter, OuterEdge: b.OuterEdge, HasDust: b.HasDust, HasGas: b.HasGas},
		}
	}

	if sweepInner <= b.InnerEdge {
		// Case 4: sweep overlaps the band's inner edge only.
		return []DustBand{
			{InnerEdge: b.InnerEdge, OuterEdge: sweepOuter, HasDust: false, HasGas: b.HasGas && retainGas},
			{InnerEdge: sweepOuter, OuterEdge: b.OuterEdge, HasDust: b.HasDust, HasGas: b.HasGas},
		}
	}

	// Case 3: sweep overlaps the band's outer edge only.
	return []DustBand{
		{InnerEdge: b.InnerEdge, OuterEdge: sweepInner, HasDust: b.HasDust, HasGas: b.HasGas},
		{InnerEdge: sweepInner, OuterEdge: b.OuterEdge, HasDust: false, HasGas: b.HasGas && retainGas},
	}
}

// Merge collapses adjacent bands sharing (has_dust, has_gas) into one,
// in a single left-to-right pass. Idempotent: merge(merge(x)) == merge(x).
func Merge(bands []DustBand) []DustBand {
	if len(bands) == 0 {
		return bands
	}

	result := make([]DustBand, 0, len(bands))
	result = append(result, bands[0])

	for _, b := range bands[1:] {
		last := &result[len(result)-1]
		if last.HasDust == b.HasDust && last.HasGas == b.HasGas && last.OuterEdge == b.InnerEdge {
			last.OuterEdge = b.OuterEdge
			continue
		}
		result = append(result, b)
	}

	return result
}
