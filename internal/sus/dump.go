package sus

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/susc/internal/chart"
)

// Version of the dumper, embedded in the default header comment.
const Version = "0.2.0"

// DefaultTicksPerBeat is used unless the metadata carries a
// "ticks_per_beat N" request.
const DefaultTicksPerBeat = 480

// DefaultComment is the header written when Options.Comment is empty.
var DefaultComment = fmt.Sprintf("This file was generated by susc v%v.", Version)

// Options configure a single dump.
type Options struct {
	Comment          string // Header comment, DefaultComment when empty
	Space            bool   // Write "#TAG: value" instead of "#TAG:value"
	StrictCollisions bool   // Fail when two symbols land on the same cell
}

// Dump writes score to w in SUS form.
func Dump(w io.Writer, score *chart.Score, opts Options) error {
	text, err := Dumps(score, opts)
	if nil != err {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// Dumps renders score as a complete SUS document.
func Dumps(score *chart.Score, opts Options) (string, error) {
	comment := opts.Comment
	if comment == "" {
		comment = DefaultComment
	}
	sep := ""
	if opts.Space {
		sep = " "
	}

	lines := []string{comment}

	ticksPerBeat := DefaultTicksPerBeat
	lines, ticksPerBeat, err := appendMetadata(lines, &score.Metadata, ticksPerBeat)
	if nil != err {
		return "", err
	}
	lines = append(lines, "")

	// Sorted copies, the score itself is never touched
	barLengths := append([]chart.BarLength(nil), score.BarLengths...)
	sort.SliceStable(barLengths, func(i, j int) bool { return barLengths[i].Measure < barLengths[j].Measure })
	bpms := append([]chart.Bpm(nil), score.Bpms...)
	sort.SliceStable(bpms, func(i, j int) bool { return bpms[i].Tick < bpms[j].Tick })
	taps := sortedNotes(score.Taps)
	directionals := sortedNotes(score.Directionals)
	slides := sortedGroups(score.Slides)
	guides := sortedGroups(score.Guides)
	timeScales := append([]chart.TimeScale(nil), score.TimeScales...)
	sort.SliceStable(timeScales, func(i, j int) bool { return timeScales[i].Tick < timeScales[j].Tick })

	for _, bl := range barLengths {
		lines = append(lines, fmt.Sprintf("#%03d02:%v%v", bl.Measure, sep, FormatNumber(bl.Value)))
	}
	lines = append(lines, "")

	timeline, err := NewTimeline(barLengths, ticksPerBeat)
	if nil != err {
		return "", err
	}
	builder := NewLineBuilder(timeline, opts.StrictCollisions)

	table := NewBpmTable()
	for _, bpm := range bpms {
		id, fresh, err := table.Identifier(bpm.Value)
		if nil != err {
			return "", err
		}
		if fresh {
			lines = append(lines, fmt.Sprintf("#BPM%v:%v%v", id, sep, FormatNumber(bpm.Value)))
		}
		if err := builder.Push(bpm.Tick, "08", id); nil != err {
			return "", err
		}
	}
	lines = append(lines, "")

	// The hi-speed block is a stub, only the change points are kept.
	// Irregular measures are ignored here, a bar is four beats.
	ticksPerBar := ticksPerBeat * 4
	points := make([]string, 0, len(timeScales))
	for _, ts := range timeScales {
		points = append(points, fmt.Sprintf("%v'%v:%v", ts.Tick/ticksPerBar, ts.Tick%ticksPerBar, FormatNumber(ts.Value)))
	}
	lines = append(lines,
		fmt.Sprintf("#TIL00: %q", strings.Join(points, ", ")),
		"#HISPEED 00",
		"#MEASUREHS 00",
		"")

	for _, note := range taps {
		if err := builder.Push(note.Tick, "1"+base36Digit(note.Lane), symbol(note)); nil != err {
			return "", err
		}
	}
	for _, note := range directionals {
		if err := builder.Push(note.Tick, "5"+base36Digit(note.Lane), symbol(note)); nil != err {
			return "", err
		}
	}

	var slideChannels ChannelAllocator
	if err := pushGroups(builder, &slideChannels, slides, "3", "slide"); nil != err {
		return "", err
	}
	var guideChannels ChannelAllocator
	if err := pushGroups(builder, &guideChannels, guides, "9", "guide"); nil != err {
		return "", err
	}

	lines = append(lines, builder.RenderAll(sep)...)
	lines = append(lines, "")

	return strings.Join(lines, "\n"), nil
}

// pushGroups assigns each group a channel spanning its first to last step
// and pushes every step onto the line for its lane and channel.
func pushGroups(builder *LineBuilder, channels *ChannelAllocator, groups [][]chart.Note, category, name string) error {
	for _, steps := range groups {
		if len(steps) == 0 {
			return &ValidationError{Reason: "empty " + name + " group"}
		}
		channel, err := channels.Generate(steps[0].Tick, steps[len(steps)-1].Tick)
		if nil != err {
			return err
		}
		for _, note := range steps {
			tag := category + base36Digit(note.Lane) + base36Digit(channel)
			if err := builder.Push(note.Tick, tag, symbol(note)); nil != err {
				return err
			}
		}
	}
	return nil
}

// symbol renders a note's two character cell, the type code then the
// base-36 width.
func symbol(n chart.Note) string {
	return fmt.Sprintf("%d%v", n.Type, base36Digit(n.Width))
}

func appendMetadata(lines []string, meta *chart.Metadata, ticksPerBeat int) ([]string, int, error) {
	str := func(name, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("#%v %q", name, value))
		}
	}
	num := func(name string, value *float64) {
		if nil != value {
			lines = append(lines, fmt.Sprintf("#%v %v", name, FormatNumber(*value)))
		}
	}

	str("TITLE", meta.Title)
	str("SUBTITLE", meta.Subtitle)
	str("ARTIST", meta.Artist)
	str("GENRE", meta.Genre)
	str("DESIGNER", meta.Designer)
	str("DIFFICULTY", meta.Difficulty)
	str("PLAYLEVEL", meta.PlayLevel)
	str("SONGID", meta.SongID)
	str("WAVE", meta.Wave)
	num("WAVEOFFSET", meta.WaveOffset)
	str("JACKET", meta.Jacket)
	str("BACKGROUND", meta.Background)
	str("MOVIE", meta.Movie)
	num("MOVIEOFFSET", meta.MovieOffset)
	num("BASEBPM", meta.BaseBpm)

	if len(meta.Requests) > 0 {
		lines = append(lines, "")
		for _, request := range meta.Requests {
			lines = append(lines, fmt.Sprintf("#REQUEST %q", request))
			if !strings.HasPrefix(request, "ticks_per_beat") {
				continue
			}
			fields := strings.Fields(request)
			if len(fields) < 2 {
				return nil, 0, &ValidationError{Reason: "malformed request: " + request}
			}
			value, err := strconv.Atoi(fields[1])
			if nil != err {
				return nil, 0, &ValidationError{Reason: "malformed request: " + request}
			}
			ticksPerBeat = value
		}
	}

	return lines, ticksPerBeat, nil
}

func sortedNotes(notes []chart.Note) []chart.Note {
	sorted := append([]chart.Note(nil), notes...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Tick < sorted[j].Tick })
	return sorted
}

func sortedGroups(groups [][]chart.Note) [][]chart.Note {
	sorted := append([][]chart.Note(nil), groups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) == 0 || len(sorted[j]) == 0 {
			return len(sorted[j]) != 0
		}
		return sorted[i][0].Tick < sorted[j][0].Tick
	})
	return sorted
}
