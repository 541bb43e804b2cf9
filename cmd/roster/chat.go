package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/roster"
	rosterhttp "github.com/fwojciec/roster/http"
	"github.com/fwojciec/roster/tui"
	"github.com/google/uuid"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	tone, err := roster.ParseTone(c.Tone)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", roster.ErrorMessage(err))
		return err
	}

	session := roster.NewSession(uuid.NewString())
	session.SetTone(tone)

	cfg := tui.Config{}
	if deps.DataUnavailable {
		cfg.Banner = rosterhttp.DataUnavailableBanner
	}

	p := tea.NewProgram(
		tui.NewModel(deps.Ctx, deps.Responder, session, cfg),
		tea.WithContext(deps.Ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}
