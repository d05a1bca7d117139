package sus

import (
	"errors"
	"testing"
)

type channelTest struct {
	Start, End int
	Expected   int
}

// Expectations assume the requests are made in order on one allocator
var channelTests = [][]channelTest{
	// Sequential groups all share the first channel
	{{0, 100, 0}, {200, 300, 0}, {400, 500, 0}},
	// Overlapping groups are kept apart
	{{0, 960, 0}, {480, 1440, 1}, {500, 1500, 2}},
	// Touching endpoints still count as overlapping
	{{0, 100, 0}, {100, 200, 1}},
	// A zero length group at tick 0 still occupies its channel
	{{0, 0, 0}, {0, 0, 1}},
	// A freed channel is reused before an untouched one
	{{0, 100, 0}, {50, 200, 1}, {300, 400, 0}},
}

func TestGenerate(t *testing.T) {
	for _, tests := range channelTests {
		allocator := ChannelAllocator{}
		for i, test := range tests {
			out, err := allocator.Generate(test.Start, test.End)
			if nil != err {
				t.Fatal("unable to generate channel", err)
			}
			if out != test.Expected {
				t.Log("request ", i, test.Start, test.End)
				t.Log("out     ", out)
				t.Log("expected", test.Expected)
				t.Fail()
			}
		}
	}
}

func TestGenerateExhaustion(t *testing.T) {
	allocator := ChannelAllocator{}
	for i := 0; i < 36; i++ {
		out, err := allocator.Generate(0, 1000)
		if nil != err {
			t.Fatal("unable to generate channel", i, err)
		}
		if out != i {
			t.Log("out     ", out)
			t.Log("expected", i)
			t.Fail()
		}
	}

	_, err := allocator.Generate(0, 1000)
	var rerr *ResourceExhaustedError
	if !errors.As(err, &rerr) {
		t.Fatal("expected a ResourceExhaustedError, got", err)
	}
}
