package usc

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/susc/internal/chart"
	"git.lost.host/meutraa/susc/internal/sus"
)

const fixture = `{
	"version": 2,
	"usc": {
		"offset": -0.25,
		"objects": [
			{"type": "bpm", "beat": 0, "bpm": 120},
			{"type": "timeScaleGroup", "changes": [
				{"beat": 0, "timeScale": 1},
				{"beat": 4, "timeScale": 0.5}
			]},
			{"type": "single", "beat": 1, "lane": -1.5, "size": 1.5, "direction": "up"},
			{"type": "single", "beat": 2, "lane": 0, "size": 2, "critical": true, "trace": true},
			{"type": "slide", "connections": [
				{"type": "start", "beat": 4, "lane": -2, "size": 1, "critical": false, "ease": "out", "judgeType": "normal"},
				{"type": "tick", "beat": 4.5, "lane": -1, "size": 1, "ease": "linear"},
				{"type": "tick", "beat": 5, "lane": -1, "size": 1, "critical": false, "ease": "linear"},
				{"type": "end", "beat": 6, "lane": 0, "size": 1, "critical": false, "ease": "linear", "judgeType": "normal", "direction": "up"}
			]},
			{"type": "guide", "color": "green", "midpoints": [
				{"beat": 8, "lane": 0, "size": 1, "ease": "linear"},
				{"beat": 9, "lane": 1, "size": 1, "ease": "linear"},
				{"beat": 10, "lane": 2, "size": 1, "ease": "linear"}
			]}
		]
	}
}`

func parseFixture(t *testing.T, text string) (*chart.Score, error) {
	file := filepath.Join(t.TempDir(), "chart.usc")
	if err := ioutil.WriteFile(file, []byte(text), 0644); nil != err {
		t.Fatal("unable to write fixture", err)
	}
	parser := DefaultParser{}
	return parser.Parse(file)
}

func equalNotes(p, q []chart.Note) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func TestParse(t *testing.T) {
	score, err := parseFixture(t, fixture)
	if nil != err {
		t.Fatal("unable to parse fixture", err)
	}

	if nil == score.Metadata.WaveOffset || *score.Metadata.WaveOffset != -0.25 {
		t.Log("wave offset", score.Metadata.WaveOffset)
		t.Fail()
	}

	// Every chart gets the implicit 4/4 anchor
	expectedBarLengths := []chart.BarLength{{Measure: 0, Value: 4}}
	if len(score.BarLengths) != 1 || score.BarLengths[0] != expectedBarLengths[0] {
		t.Log("bar lengths", score.BarLengths)
		t.Log("expected   ", expectedBarLengths)
		t.Fail()
	}

	expectedBpms := []chart.Bpm{{Tick: 0, Value: 120}}
	if len(score.Bpms) != 1 || score.Bpms[0] != expectedBpms[0] {
		t.Log("bpms    ", score.Bpms)
		t.Log("expected", expectedBpms)
		t.Fail()
	}

	expectedTimeScales := []chart.TimeScale{
		{Tick: 0, Value: 1},
		{Tick: 1920, Value: 0.5},
	}
	if len(score.TimeScales) != 2 ||
		score.TimeScales[0] != expectedTimeScales[0] ||
		score.TimeScales[1] != expectedTimeScales[1] {
		t.Log("timescales", score.TimeScales)
		t.Log("expected  ", expectedTimeScales)
		t.Fail()
	}

	// The plain single, the critical trace single, and the green guide's
	// start erase tap
	expectedTaps := []chart.Note{
		{Tick: 480, Lane: 5, Width: 3, Type: chart.TapNote},
		{Tick: 960, Lane: 6, Width: 4, Type: chart.TapTraceCritical},
		{Tick: 3840, Lane: 7, Width: 2, Type: chart.TapErase},
	}
	if !equalNotes(score.Taps, expectedTaps) {
		t.Log("taps    ", score.Taps)
		t.Log("expected", expectedTaps)
		t.Fail()
	}

	// The single's flick, the slide start's ease out and the slide end's
	// flick
	expectedDirectionals := []chart.Note{
		{Tick: 480, Lane: 5, Width: 3, Type: chart.AirUp},
		{Tick: 1920, Lane: 5, Width: 2, Type: chart.AirRightDown},
		{Tick: 2880, Lane: 7, Width: 2, Type: chart.AirUp},
	}
	if !equalNotes(score.Directionals, expectedDirectionals) {
		t.Log("directionals", score.Directionals)
		t.Log("expected    ", expectedDirectionals)
		t.Fail()
	}

	expectedSlide := []chart.Note{
		{Tick: 1920, Lane: 5, Width: 2, Type: chart.SlideStart},
		{Tick: 2160, Lane: 6, Width: 2, Type: chart.SlideStep},
		{Tick: 2400, Lane: 6, Width: 2, Type: chart.SlideVisibleStep},
		{Tick: 2880, Lane: 7, Width: 2, Type: chart.SlideEnd},
	}
	if len(score.Slides) != 1 || !equalNotes(score.Slides[0], expectedSlide) {
		t.Log("slides  ", score.Slides)
		t.Log("expected", expectedSlide)
		t.Fail()
	}

	expectedGuide := []chart.Note{
		{Tick: 3840, Lane: 7, Width: 2, Type: chart.GuideStart},
		{Tick: 4320, Lane: 8, Width: 2, Type: chart.GuideStep},
		{Tick: 4800, Lane: 9, Width: 2, Type: chart.GuideEnd},
	}
	if len(score.Guides) != 1 || !equalNotes(score.Guides[0], expectedGuide) {
		t.Log("guides  ", score.Guides)
		t.Log("expected", expectedGuide)
		t.Fail()
	}
}

func TestParseYellowGuide(t *testing.T) {
	score, err := parseFixture(t, `{
		"version": 2,
		"usc": {
			"offset": 0,
			"objects": [
				{"type": "guide", "color": "yellow", "midpoints": [
					{"beat": 0, "lane": 0, "size": 1, "ease": "linear"},
					{"beat": 1, "lane": 0, "size": 1, "ease": "linear"},
					{"beat": 2, "lane": 0, "size": 1, "ease": "linear"}
				]}
			]
		}
	}`)
	if nil != err {
		t.Fatal("unable to parse fixture", err)
	}

	// Yellow guides overlay a critical erase tap on every point
	expectedTaps := []chart.Note{
		{Tick: 0, Lane: 7, Width: 2, Type: chart.TapEraseCritical},
		{Tick: 480, Lane: 7, Width: 2, Type: chart.TapEraseCritical},
		{Tick: 960, Lane: 7, Width: 2, Type: chart.TapEraseCritical},
	}
	if !equalNotes(score.Taps, expectedTaps) {
		t.Log("taps    ", score.Taps)
		t.Log("expected", expectedTaps)
		t.Fail()
	}
}

// A parsed chart has to dump without further preparation
func TestParseThenDump(t *testing.T) {
	score, err := parseFixture(t, fixture)
	if nil != err {
		t.Fatal("unable to parse fixture", err)
	}

	out, err := sus.Dumps(score, sus.Options{})
	if nil != err {
		t.Fatal("unable to dump parsed chart", err)
	}
	for _, line := range []string{"#00002:4", "#BPM01:120", "#WAVEOFFSET -0.25"} {
		if !strings.Contains(out, line) {
			t.Log("missing ", line)
			t.Log("out:\n" + out)
			t.Fail()
		}
	}
}

// Guides of other colors carry no overlay taps, only the ease airs
func TestParseNeutralGuide(t *testing.T) {
	score, err := parseFixture(t, `{
		"version": 2,
		"usc": {
			"offset": 0,
			"objects": [
				{"type": "guide", "color": "neutral", "midpoints": [
					{"beat": 0, "lane": 0, "size": 1, "ease": "in"},
					{"beat": 1, "lane": 0, "size": 1, "ease": "out"},
					{"beat": 2, "lane": 0, "size": 1, "ease": "linear"}
				]}
			]
		}
	}`)
	if nil != err {
		t.Fatal("unable to parse fixture", err)
	}

	if len(score.Taps) != 0 {
		t.Log("taps    ", score.Taps)
		t.Log("expected none")
		t.Fail()
	}
	expectedDirectionals := []chart.Note{
		{Tick: 0, Lane: 7, Width: 2, Type: chart.AirUp},
		{Tick: 480, Lane: 7, Width: 2, Type: chart.AirRightDown},
	}
	if !equalNotes(score.Directionals, expectedDirectionals) {
		t.Log("directionals", score.Directionals)
		t.Log("expected    ", expectedDirectionals)
		t.Fail()
	}
}

func TestParseUnknownObject(t *testing.T) {
	_, err := parseFixture(t, `{
		"version": 2,
		"usc": {"offset": 0, "objects": [{"type": "hold", "beat": 0}]}
	}`)
	if nil == err {
		t.Fatal("expected an error for an unknown object type")
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := parseFixture(t, `{"version": 2, "usc": `)
	if nil == err {
		t.Fatal("expected an error for malformed json")
	}
}
