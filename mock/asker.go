package mock

import (
	"context"

	"github.com/fwojciec/roster"
)

var _ roster.Asker = (*Asker)(nil)

// Asker is a mock implementation of roster.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, tone roster.Tone) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string, tone roster.Tone) (string, error) {
	return a.AskFn(ctx, question, tone)
}
