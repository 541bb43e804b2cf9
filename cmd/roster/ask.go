package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/roster"
	"github.com/fwojciec/roster/chat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	tone, err := roster.ParseTone(c.Tone)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", roster.ErrorMessage(err))
		return err
	}

	question := strings.TrimSpace(strings.Join(c.Question, " "))
	if question == "" {
		err := roster.Errorf(roster.EINVALID, "question required")
		fmt.Fprintf(deps.Stderr, "error: %s\n", roster.ErrorMessage(err))
		return err
	}

	reply := deps.Responder.Respond(deps.Ctx, question, tone)
	if reply.Source == chat.SourceError {
		fmt.Fprintln(deps.Stderr, reply.Text)
		return reply.Err
	}
	if reply.Source == chat.SourceRecord {
		deps.Logger.Debug("answered from records", "name", reply.Record.DisplayName(), "score", reply.Score)
	}

	fmt.Fprintln(deps.Stdout, reply.Text)
	return nil
}
