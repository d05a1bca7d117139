package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/susc/internal/chart"
)

func GetScore() (*chart.Score, error) {
	var score chart.Score
	if err := json.Unmarshal([]byte(data), &score); nil != err {
		return nil, err
	}
	return &score, nil
}

const data = `{
	"Metadata": {
		"Title": "Endless Line",
		"Artist": "a composer",
		"Designer": "a charter",
		"WaveOffset": 0.5,
		"Requests": ["side_lane true"]
	},
	"BarLengths": [
		{"Measure": 0, "Value": 4}
	],
	"Bpms": [
		{"Tick": 0, "Value": 120},
		{"Tick": 1920, "Value": 187.5},
		{"Tick": 3840, "Value": 120}
	],
	"Taps": [
		{"Tick": 0, "Lane": 2, "Width": 3, "Type": 1},
		{"Tick": 480, "Lane": 6, "Width": 2, "Type": 2},
		{"Tick": 720, "Lane": 10, "Width": 4, "Type": 5}
	],
	"Directionals": [
		{"Tick": 480, "Lane": 6, "Width": 2, "Type": 1}
	],
	"Slides": [
		[
			{"Tick": 960, "Lane": 4, "Width": 3, "Type": 1},
			{"Tick": 1440, "Lane": 5, "Width": 3, "Type": 5},
			{"Tick": 1920, "Lane": 6, "Width": 3, "Type": 2}
		]
	],
	"Guides": [
		[
			{"Tick": 2400, "Lane": 8, "Width": 2, "Type": 1},
			{"Tick": 2880, "Lane": 8, "Width": 2, "Type": 2}
		]
	],
	"TimeScales": [
		{"Tick": 0, "Value": 1},
		{"Tick": 1920, "Value": 0.5}
	]
}`
