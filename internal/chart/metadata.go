package chart

// Metadata holds the optional header fields of a chart. String fields are
// absent when empty, numeric fields when nil. The field order here is the
// order the fields are written in.
type Metadata struct {
	Title       string
	Subtitle    string
	Artist      string
	Genre       string
	Designer    string
	Difficulty  string
	PlayLevel   string
	SongID      string
	Wave        string
	WaveOffset  *float64
	Jacket      string
	Background  string
	Movie       string
	MovieOffset *float64
	BaseBpm     *float64
	Requests    []string
}
