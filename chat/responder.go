// Package chat runs the question-answering interaction cycle: local record
// matching first, the remote model as fallback, and the conversation log.
package chat

import (
	"context"
	"strings"

	"github.com/fwojciec/roster"
	"golang.org/x/time/rate"
)

// Source identifies where a reply came from.
type Source int

const (
	SourceRecord Source = iota
	SourceModel
	SourceError
)

// Reply is the outcome of answering one question.
type Reply struct {
	Text   string
	Source Source

	// Record is the matched record when Source is SourceRecord.
	Record *roster.Record

	// Score is the match score when Source is SourceRecord.
	Score int

	// Err is the model failure when Source is SourceError.
	Err error
}

// Responder answers questions from the record table, falling back to the
// remote model when no record matches.
type Responder struct {
	Records roster.RecordService
	Scorer  roster.Scorer
	Asker   roster.Asker

	// Limiter bounds the rate of model calls. Nil means unlimited.
	Limiter *rate.Limiter
}

// Respond answers a single question. It never returns an error: model
// failures become an error reply. A failing record lookup is treated as an
// empty table.
func (r *Responder) Respond(ctx context.Context, question string, tone roster.Tone) Reply {
	records, err := r.Records.FindRecords(ctx, roster.RecordFilter{})
	if err != nil {
		records = nil
	}

	if rec, score := roster.Match(question, records, r.Scorer); rec != nil {
		return Reply{
			Text:   roster.FormatAnswer(rec, question),
			Source: SourceRecord,
			Record: rec,
			Score:  score,
		}
	}

	answer, err := r.ask(ctx, question, tone)
	if err != nil {
		return Reply{Text: ErrorReply(err), Source: SourceError, Err: err}
	}
	return Reply{Text: answer, Source: SourceModel}
}

func (r *Responder) ask(ctx context.Context, question string, tone roster.Tone) (string, error) {
	if r.Asker == nil {
		return "", roster.Errorf(roster.EUNAVAILABLE, "no model configured")
	}
	if r.Limiter != nil && !r.Limiter.Allow() {
		return "", roster.Errorf(roster.EUNAVAILABLE, "too many questions, try again shortly")
	}
	return r.Asker.Ask(ctx, question, tone)
}

// Submit runs one interaction cycle on the session: it appends the user
// turn, answers it with the session tone, and appends the bot turn.
// Blank input records nothing and reports false.
func (r *Responder) Submit(ctx context.Context, s *roster.Session, input string) (Reply, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Reply{}, false
	}

	s.Append(roster.RoleUser, input)
	reply := r.Respond(ctx, input, s.Tone)
	s.Append(roster.RoleBot, reply.Text)
	return reply, true
}

// ErrorReply formats a model failure as the user-visible bot reply.
func ErrorReply(err error) string {
	return "Error: could not get an answer from the model (" + roster.ErrorMessage(err) + ")"
}
