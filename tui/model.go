// Package tui provides a terminal chat shell built on Bubble Tea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/roster"
	"github.com/fwojciec/roster/chat"
)

// Config holds the optional settings of a Model.
type Config struct {
	// BotLabel names the bot in the transcript. Defaults to "Grok".
	BotLabel string

	// Banner is shown above the transcript when non-empty.
	Banner string

	// Style is a glamour standard style name such as "dark" or "notty".
	// Empty selects the style from the terminal background.
	Style string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff71ce")).Bold(true)
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#05ffa1")).Bold(true)
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#01cdfe")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7a7f99"))
)

// replyMsg carries the answer to a submitted question.
type replyMsg struct {
	reply chat.Reply
}

// Model is the Bubble Tea model of the chat shell.
type Model struct {
	ctx       context.Context
	responder *chat.Responder
	session   *roster.Session
	cfg       Config

	input    textinput.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer

	width   int
	pending bool
}

// NewModel returns a chat shell model driving responder on session.
func NewModel(ctx context.Context, responder *chat.Responder, session *roster.Session, cfg Config) Model {
	if cfg.BotLabel == "" {
		cfg.BotLabel = "Grok"
	}

	input := textinput.New()
	input.Prompt = "❯ "
	input.CharLimit = 2000
	input.Placeholder = "Ask " + cfg.BotLabel + " a question"
	input.Focus()

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	return Model{
		ctx:       ctx,
		responder: responder,
		session:   session,
		cfg:       cfg,
		input:     input,
		viewport:  vp,
		width:     80,
	}
}

// Session returns the conversation the model is driving.
func (m Model) Session() *roster.Session {
	return m.session
}

// Pending reports whether a question is awaiting its answer.
func (m Model) Pending() bool {
	return m.pending
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-m.chromeHeight(), 3)
		m.input.Width = max(msg.Width-4, 10)
		m.renderer = nil
		m.refresh()
		return m, nil

	case replyMsg:
		m.pending = false
		m.session.Append(roster.RoleBot, msg.reply.Text)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.session.SetTone(m.session.Tone.Next())
			return m, nil
		case tea.KeyCtrlL:
			if m.pending {
				return m, nil
			}
			m.session.Clear()
			m.refresh()
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	question := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if question == "" {
		return m, nil
	}

	m.session.Append(roster.RoleUser, question)
	m.pending = true
	m.refresh()

	ctx, responder, tone := m.ctx, m.responder, m.session.Tone
	return m, func() tea.Msg {
		return replyMsg{reply: responder.Respond(ctx, question, tone)}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Chat with "+m.cfg.BotLabel) + "  " +
		helpStyle.Render("tone: "+string(m.session.Tone)))
	b.WriteString("\n")
	if m.cfg.Banner != "" {
		b.WriteString(bannerStyle.Render(m.cfg.Banner))
		b.WriteString("\n")
	}
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	help := "enter send · ctrl+t tone · ctrl+l clear · pgup/pgdn scroll · esc quit"
	if m.pending {
		help = m.cfg.BotLabel + " is thinking..."
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func (m Model) chromeHeight() int {
	h := 4
	if m.cfg.Banner != "" {
		h++
	}
	return h
}

// refresh re-renders the transcript into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m *Model) transcript() string {
	var b strings.Builder
	for _, t := range m.session.Turns {
		if t.Role == roster.RoleUser {
			b.WriteString(userStyle.Render("You") + ": " + t.Content + "\n\n")
			continue
		}
		b.WriteString(botStyle.Render(m.cfg.BotLabel) + ":\n")
		b.WriteString(m.renderMarkdown(t.Content))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderMarkdown(s string) string {
	if m.renderer == nil {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(max(m.width-4, 20))}
		if m.cfg.Style != "" {
			opts = append(opts, glamour.WithStandardStyle(m.cfg.Style))
		} else {
			opts = append(opts, glamour.WithAutoStyle())
		}
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return s + "\n"
		}
		m.renderer = r
	}
	out, err := m.renderer.Render(s)
	if err != nil {
		return s + "\n"
	}
	return out
}
