package config

import (
	"git.lost.host/meutraa/susc/internal/sus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Input    = kingpin.Arg("input", "Chart file or directory to convert").Required().ExistingFileOrDir()
	Output   = kingpin.Flag("output", "Directory to write .sus files to, next to the input if unset").Short('o').String()
	Comment  = kingpin.Flag("comment", "Header comment for generated files").Short('c').String()
	Space    = kingpin.Flag("space", "Write a space between each directive tag and its value").Bool()
	Strict   = kingpin.Flag("strict", "Fail when two notes collide on one line cell").Bool()
	Force    = kingpin.Flag("force", "Convert even when the history says the chart is unchanged").Short('f').Bool()
	History  = kingpin.Flag("history", "Conversion history database").Default("susc.db").String()
	Title    = kingpin.Flag("title", "Chart title metadata").String()
	Artist   = kingpin.Flag("artist", "Chart artist metadata").String()
	Designer = kingpin.Flag("designer", "Chart designer metadata").String()
)

func init() {
	kingpin.Version(sus.Version)
	kingpin.Parse()
}
