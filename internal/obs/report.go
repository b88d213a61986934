package obs

import "fmt"

// Report is the engine's diagnostic summary, printed to stdout on demand.
// The layout is free-form and not a compatibility contract.
type Report struct {
	RootLevel      int
	RootPopulation uint64
	Hashcount      int
	BucketMin      int
	BucketMax      int
	EmptyPercent   float64
}

// Print writes the report as indented free-form text.
func (r Report) Print() {
	fmt.Println("Hashtable report:")
	fmt.Printf("\tRoot level: %d\n", r.RootLevel)
	fmt.Printf("\tRoot population: %d\n", r.RootPopulation)
	fmt.Printf("\tHashcount: %d\n", r.Hashcount)
	fmt.Printf("\tMin: %d\n", r.BucketMin)
	fmt.Printf("\tMax: %d\n", r.BucketMax)
	fmt.Printf("\tEmpty percent: %f\n\n", r.EmptyPercent)
}
