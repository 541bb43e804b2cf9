package mock

import "github.com/fwojciec/roster"

var _ roster.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of roster.Scorer.
type Scorer struct {
	ScoreFn func(a, b string) int
}

func (s *Scorer) Score(a, b string) int {
	return s.ScoreFn(a, b)
}
