package sus

import (
	"fmt"
	"strings"
)

type rawNote struct {
	offset int
	data   string
}

type noteLine struct {
	ticksPerMeasure int
	raws            []rawNote
}

// LineBuilder accumulates note symbols per measure and line tag, and
// renders each line at the coarsest resolution that still places every
// symbol exactly.
type LineBuilder struct {
	timeline *Timeline
	strict   bool
	order    []string
	lines    map[string]*noteLine
}

func NewLineBuilder(timeline *Timeline, strict bool) *LineBuilder {
	return &LineBuilder{
		timeline: timeline,
		strict:   strict,
		lines:    map[string]*noteLine{},
	}
}

// Push records a two character symbol on the line tagged tag, in
// whichever measure tick falls in. A later push to the same offset
// overwrites an earlier one, unless strict collision checking is on.
func (b *LineBuilder) Push(tick int, tag, data string) error {
	measure, offset, ticksPerMeasure := b.timeline.Locate(tick)
	key := fmt.Sprintf("%03d%v", measure, tag)

	line, ok := b.lines[key]
	if !ok {
		line = &noteLine{ticksPerMeasure: ticksPerMeasure}
		b.lines[key] = line
		b.order = append(b.order, key)
	}

	if b.strict {
		for _, raw := range line.raws {
			if raw.offset == offset && raw.data != data {
				return &ValidationError{Reason: fmt.Sprintf(
					"symbols %v and %v collide on line %v at offset %v", raw.data, data, key, offset)}
			}
		}
	}

	line.raws = append(line.raws, rawNote{offset: offset, data: data})
	return nil
}

// RenderAll renders every line, in first push order.
func (b *LineBuilder) RenderAll(sep string) []string {
	rendered := make([]string, 0, len(b.order))
	for _, key := range b.order {
		line := b.lines[key]

		resolution := line.ticksPerMeasure
		for _, raw := range line.raws {
			resolution = gcd(resolution, raw.offset)
		}

		cells := make([]string, line.ticksPerMeasure/resolution)
		for i := range cells {
			cells[i] = "00"
		}
		for _, raw := range line.raws {
			cells[raw.offset/resolution] = raw.data
		}

		rendered = append(rendered, fmt.Sprintf("#%v:%v%v", key, sep, strings.Join(cells, "")))
	}
	return rendered
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
