package usc

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"
	"sort"

	"git.lost.host/meutraa/susc/internal/chart"
)

// DefaultParser reads a USC chart and flattens its objects into the per
// category note lists of a chart.Score.
type DefaultParser struct{}

// ticksPerBeat is fixed by the USC format, beats are rational multiples
// of quarter notes.
const ticksPerBeat = 480

type document struct {
	Version int `json:"version"`
	Usc     struct {
		Offset  float64  `json:"offset"`
		Objects []object `json:"objects"`
	} `json:"usc"`
}

type object struct {
	Type        string       `json:"type"`
	Beat        float64      `json:"beat"`
	Bpm         float64      `json:"bpm"`
	Lane        float64      `json:"lane"`
	Size        float64      `json:"size"`
	Critical    bool         `json:"critical"`
	Trace       bool         `json:"trace"`
	Direction   string       `json:"direction"`
	Color       string       `json:"color"`
	Changes     []timeScale  `json:"changes"`
	Connections []connection `json:"connections"`
	Midpoints   []connection `json:"midpoints"`
}

type timeScale struct {
	Beat      float64 `json:"beat"`
	TimeScale float64 `json:"timeScale"`
}

type connection struct {
	Type      string  `json:"type"`
	Beat      float64 `json:"beat"`
	Lane      float64 `json:"lane"`
	Size      float64 `json:"size"`
	Critical  *bool   `json:"critical"` // nil on invisible slide steps
	Ease      string  `json:"ease"`
	JudgeType string  `json:"judgeType"`
	Direction string  `json:"direction"`
}

func beatToTick(beat float64) int {
	return int(math.Round(ticksPerBeat * beat))
}

// USC lanes are centered, SUS lanes count from the left edge.
func susLane(lane, size float64) int {
	return int(lane - size + 8)
}

// USC sizes are in half lane units.
func susWidth(size float64) int {
	return int(size * 2)
}

func note(tick, lane, width, kind int) chart.Note {
	return chart.Note{Tick: tick, Lane: lane, Width: width, Type: kind}
}

func (p *DefaultParser) Parse(file string) (*chart.Score, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); nil != err {
		return nil, fmt.Errorf("unable to parse usc chart: %w", err)
	}

	score := chart.Score{}
	offset := doc.Usc.Offset
	score.Metadata.WaveOffset = &offset

	// USC charts carry no bar length objects, every chart is 4/4
	score.BarLengths = []chart.BarLength{{Measure: 0, Value: 4}}

	for _, o := range doc.Usc.Objects {
		switch o.Type {
		case "bpm":
			score.Bpms = append(score.Bpms, chart.Bpm{Tick: beatToTick(o.Beat), Value: o.Bpm})
		case "timeScaleGroup":
			for _, change := range o.Changes {
				score.TimeScales = append(score.TimeScales, chart.TimeScale{
					Tick:  beatToTick(change.Beat),
					Value: change.TimeScale,
				})
			}
		case "single":
			p.convertSingle(&score, o)
		case "slide":
			p.convertSlide(&score, o)
		case "guide":
			p.convertGuide(&score, o)
		case "damage":
			// Damage notes do not exist in SUS, drop them
		default:
			return nil, fmt.Errorf("unknown usc object type %q", o.Type)
		}
	}

	return &score, nil
}

func (p *DefaultParser) convertSingle(score *chart.Score, o object) {
	tick := beatToTick(o.Beat)
	lane := susLane(o.Lane, o.Size)
	width := susWidth(o.Size)

	kind := chart.TapNote
	if o.Trace {
		kind = chart.TapTrace
		if o.Critical {
			kind = chart.TapTraceCritical
		}
	} else if o.Critical {
		kind = chart.TapCritical
	}
	score.Taps = append(score.Taps, note(tick, lane, width, kind))

	switch o.Direction {
	case "up":
		score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirUp))
	case "left":
		score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirLeftUp))
	case "right":
		score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirRightUp))
	}
}

func (p *DefaultParser) convertSlide(score *chart.Score, o object) {
	steps := append([]connection(nil), o.Connections...)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Beat < steps[j].Beat })

	var slide []chart.Note
	for _, step := range steps {
		tick := beatToTick(step.Beat)
		lane := susLane(step.Lane, step.Size)
		width := susWidth(step.Size)
		critical := step.Critical != nil && *step.Critical

		switch step.Type {
		case "start":
			switch step.Ease {
			case "in":
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirDown))
			case "out":
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirRightDown))
			}
			switch step.JudgeType {
			case "none":
				kind := chart.TapErase
				if critical {
					kind = chart.TapEraseCritical
				}
				score.Taps = append(score.Taps, note(tick, lane, width, kind))
			case "trace":
				kind := chart.TapTrace
				if critical {
					kind = chart.TapTraceCritical
				}
				score.Taps = append(score.Taps, note(tick, lane, width, kind))
			case "normal":
				if critical {
					score.Taps = append(score.Taps, note(tick, lane, width, chart.TapCritical))
				}
			}
			slide = append(slide, note(tick, lane, width, chart.SlideStart))

		case "tick", "attach":
			switch step.Ease {
			case "in":
				score.Taps = append(score.Taps, note(tick, lane, width, chart.TapNote))
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirDown))
			case "out":
				score.Taps = append(score.Taps, note(tick, lane, width, chart.TapNote))
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirRightDown))
			}
			if step.Type == "tick" {
				kind := chart.SlideStep
				if step.Critical != nil {
					kind = chart.SlideVisibleStep
				}
				slide = append(slide, note(tick, lane, width, kind))
			} else {
				// Attach points are judged as flicks but ignored by the slide
				score.Taps = append(score.Taps, note(tick, lane, width, chart.TapFlick))
				slide = append(slide, note(tick, lane, width, chart.SlideStep))
			}

		case "end":
			switch step.JudgeType {
			case "none":
				kind := chart.TapErase
				if critical {
					kind = chart.TapEraseCritical
				}
				score.Taps = append(score.Taps, note(tick, lane, width, kind))
			case "trace":
				kind := chart.TapTrace
				if critical {
					kind = chart.TapTraceCritical
				}
				score.Taps = append(score.Taps, note(tick, lane, width, kind))
			case "normal":
				if step.Direction != "" && critical {
					score.Taps = append(score.Taps, note(tick, lane, width, chart.TapCritical))
				}
			}
			switch step.Direction {
			case "up":
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirUp))
			case "left":
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirLeftUp))
			case "right":
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirRightUp))
			}
			slide = append(slide, note(tick, lane, width, chart.SlideEnd))
		}
	}

	score.Slides = append(score.Slides, slide)
}

func (p *DefaultParser) convertGuide(score *chart.Score, o object) {
	points := append([]connection(nil), o.Midpoints...)
	sort.SliceStable(points, func(i, j int) bool { return points[i].Beat < points[j].Beat })

	// Yellow and green guides are judged through overlaid erase taps,
	// yellow uses the critical variant. Other colors get no overlay.
	overlay := o.Color == "yellow" || o.Color == "green"
	erase := chart.TapErase
	if o.Color == "yellow" {
		erase = chart.TapEraseCritical
	}

	var guide []chart.Note
	for i, point := range points {
		tick := beatToTick(point.Beat)
		lane := susLane(point.Lane, point.Size)
		width := susWidth(point.Size)

		switch {
		case i == 0:
			if overlay {
				score.Taps = append(score.Taps, note(tick, lane, width, erase))
			}
			switch point.Ease {
			case "in":
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirUp))
			case "out":
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirRightDown))
			}
			guide = append(guide, note(tick, lane, width, chart.GuideStart))

		case i == len(points)-1:
			if o.Color == "yellow" {
				score.Taps = append(score.Taps, note(tick, lane, width, erase))
			}
			guide = append(guide, note(tick, lane, width, chart.GuideEnd))

		default:
			switch point.Ease {
			case "in":
				if overlay {
					score.Taps = append(score.Taps, note(tick, lane, width, erase))
				}
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirDown))
			case "out":
				if overlay {
					score.Taps = append(score.Taps, note(tick, lane, width, erase))
				}
				score.Directionals = append(score.Directionals, note(tick, lane, width, chart.AirRightDown))
			default:
				if o.Color == "yellow" {
					score.Taps = append(score.Taps, note(tick, lane, width, erase))
				}
			}
			guide = append(guide, note(tick, lane, width, chart.GuideStep))
		}
	}

	score.Guides = append(score.Guides, guide)
}
