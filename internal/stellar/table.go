package stellar

// classEntry describes one spectral class's slice of the cumulative
// distribution and its sampling ranges. UpperBound is the cumulative
// probability at the top of this class, so a draw u lands in the first
// entry whose UpperBound exceeds u.
//
// Class frequencies (O 0.003%, B 0.13%, A 0.6%, F 3%, G 8%, K 12%, M ~76%)
// follow the real-galaxy table used to validate
// sargonas-stellar-lab's system generator.
type classEntry struct {
	Class      SpectralClass
	UpperBound float64
	MassMin    float64
	MassMax    float64
	TempMinK   float64
	TempMaxK   float64
}

var classTable = []classEntry{
	{ClassO, 0.00003, 16.0, 40.0, 30000, 50000},
	{ClassB, 0.00133, 2.1, 16.0, 10000, 30000},
	{ClassA, 0.00733, 1.4, 2.1, 7500, 10000},
	{ClassF, 0.03733, 1.04, 1.4, 6000, 7500},
	{ClassG, 0.11733, 0.8, 1.04, 5200, 6000},
	{ClassK, 0.23733, 0.45, 0.8, 3700, 5200},
	{ClassM, 1.0, 0.08, 0.45, 2400, 3700},
}

// sampleClassRange resolves a uniform draw to a class and its mass and
// temperature ranges.
func sampleClassRange(u float64) classEntry {
	for _, entry := range classTable {
		if u < entry.UpperBound {
			return entry
		}
	}
	return classTable[len(classTable)-1]
}
