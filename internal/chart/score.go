package chart

// BarLength changes the number of beats per measure from Measure onwards.
type BarLength struct {
	Measure int
	Value   float64 // Beats per measure
}

// Bpm changes the tempo from Tick onwards.
type Bpm struct {
	Tick  int
	Value float64
}

// TimeScale changes the scroll speed multiplier from Tick onwards.
type TimeScale struct {
	Tick  int
	Value float64
}

// Score is a complete chart, already flattened into per category note
// lists. It is built once by a parser and never mutated afterwards.
type Score struct {
	Metadata     Metadata
	BarLengths   []BarLength
	Bpms         []Bpm
	Taps         []Note
	Directionals []Note
	Slides       [][]Note // Each slide is its steps in tick order
	Guides       [][]Note // Each guide is its points in tick order
	TimeScales   []TimeScale
}
