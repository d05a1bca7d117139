package chart

// Note is one placed symbol on a lane. Type is a category specific code,
// rendered with the base-36 width as the two character cell of a note line.
type Note struct {
	Tick  int // Absolute position, TicksPerBeat ticks to a beat
	Lane  int // The chart column, 0-35
	Width int // Lanes covered, at least 1
	Type  int // See the constants below for the category the note is in
}

// Tap line symbol codes.
const (
	TapNote          = 1
	TapCritical      = 2
	TapFlick         = 3
	TapTrace         = 5
	TapTraceCritical = 6
	TapErase         = 7
	TapEraseCritical = 8
)

// Air (directional) line symbol codes.
const (
	AirUp        = 1
	AirDown      = 2
	AirLeftUp    = 3
	AirRightUp   = 4
	AirLeftDown  = 5
	AirRightDown = 6
)

// Slide line symbol codes.
const (
	SlideStart       = 1
	SlideEnd         = 2
	SlideVisibleStep = 3
	SlideStep        = 5
)

// Guide line symbol codes.
const (
	GuideStart = 1
	GuideEnd   = 2
	GuideStep  = 5
)
