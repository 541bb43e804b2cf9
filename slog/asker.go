// Package slog provides logging decorators for roster services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/roster"
)

// Ensure LoggingAsker implements roster.Asker.
var _ roster.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging of model calls.
type LoggingAsker struct {
	next   roster.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next roster.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the outcome.
func (a *LoggingAsker) Ask(ctx context.Context, question string, tone roster.Tone) (string, error) {
	begin := time.Now()
	answer, err := a.next.Ask(ctx, question, tone)
	if err != nil {
		a.logger.Warn("model call failed",
			"tone", string(tone),
			"duration", time.Since(begin),
			"code", roster.ErrorCode(err),
			"error", roster.ErrorMessage(err),
		)
		return answer, err
	}
	a.logger.Info("model call",
		"tone", string(tone),
		"duration", time.Since(begin),
		"answer_len", len(answer),
	)
	return answer, nil
}
