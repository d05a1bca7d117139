package sus

import (
	"fmt"

	"git.lost.host/meutraa/susc/internal/chart"
)

// segment is a run of measures sharing one bar length, anchored at an
// absolute tick. The last segment has no end, it extends forever.
type segment struct {
	startTick int
	measure   int
	value     float64 // Beats per measure
}

// Timeline answers which measure an absolute tick falls in.
type Timeline struct {
	segments     []segment
	ticksPerBeat int
}

// NewTimeline builds a timeline from the bar length changes, which must be
// sorted by measure ascending and anchored at measure 0.
func NewTimeline(barLengths []chart.BarLength, ticksPerBeat int) (*Timeline, error) {
	if len(barLengths) == 0 {
		return nil, &ValidationError{Reason: "no bar length changes"}
	}
	if barLengths[0].Measure != 0 {
		return nil, &ValidationError{Reason: fmt.Sprintf(
			"first bar length change is at measure %v, not 0", barLengths[0].Measure)}
	}

	segments := make([]segment, len(barLengths))
	tick := 0
	for i, bl := range barLengths {
		segments[i] = segment{startTick: tick, measure: bl.Measure, value: bl.Value}
		if i+1 < len(barLengths) {
			tick += int(float64(barLengths[i+1].Measure-bl.Measure) * bl.Value * float64(ticksPerBeat))
		}
	}

	return &Timeline{segments: segments, ticksPerBeat: ticksPerBeat}, nil
}

// Locate returns the measure containing tick, the offset within that
// measure, and the measure's length in ticks. Valid arbitrarily far past
// the last bar length change.
func (t *Timeline) Locate(tick int) (measure, offset, ticksPerMeasure int) {
	for i := len(t.segments) - 1; i >= 0; i-- {
		seg := t.segments[i]
		if tick < seg.startTick && i != 0 {
			continue
		}
		ticksPerMeasure = int(seg.value * float64(t.ticksPerBeat))
		rel := tick - seg.startTick
		measure = seg.measure + rel/ticksPerMeasure
		offset = rel % ticksPerMeasure
		return
	}
	// Not reached, the first segment always starts at tick 0
	return 0, 0, 0
}
