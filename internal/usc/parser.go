package usc

import "git.lost.host/meutraa/susc/internal/chart"

type Parser interface {
	Parse(file string) (*chart.Score, error)
}
