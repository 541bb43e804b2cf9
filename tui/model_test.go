package tui_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/roster"
	"github.com/fwojciec/roster/chat"
	"github.com/fwojciec/roster/edlib"
	"github.com/fwojciec/roster/mock"
	"github.com/fwojciec/roster/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, asks *[]string) tui.Model {
	t.Helper()

	responder := &chat.Responder{
		Records: &mock.RecordService{
			FindRecordsFn: func(context.Context, roster.RecordFilter) ([]*roster.Record, error) {
				return []*roster.Record{{
					PersonName:        "Jane Smith",
					FirstName:         "Jane",
					LastName:          "Smith",
					DegreeTypeName:    "PhD",
					DegreeInstitution: "State University",
					DegreeYear:        "2001",
				}}, nil
			},
		},
		Scorer: edlib.NewTokenSortScorer(),
		Asker: &mock.Asker{
			AskFn: func(_ context.Context, question string, tone roster.Tone) (string, error) {
				*asks = append(*asks, string(tone)+":"+question)
				return "Probably sunny.", nil
			},
		},
	}
	m := tui.NewModel(context.Background(), responder, roster.NewSession("tui"), tui.Config{Style: "notty"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(tui.Model)
}

func typeText(t *testing.T, m tui.Model, s string) tui.Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(tui.Model)
}

// press sends a key and runs the returned command, feeding a reply back.
func press(t *testing.T, m tui.Model, key tea.KeyType) tui.Model {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	m = updated.(tui.Model)
	if cmd == nil {
		return m
	}
	msg := cmd()
	updated, _ = m.Update(msg)
	return updated.(tui.Model)
}

func TestModel_Submit(t *testing.T) {
	t.Parallel()

	t.Run("answers from records", func(t *testing.T) {
		t.Parallel()

		var asks []string
		m := newModel(t, &asks)

		m = typeText(t, m, "Does Jane Smith hold a degree?")
		m = press(t, m, tea.KeyEnter)

		turns := m.Session().Turns
		require.Len(t, turns, 2)
		assert.Equal(t, roster.Turn{Role: roster.RoleUser, Content: "Does Jane Smith hold a degree?"}, turns[0])
		assert.Equal(t, "Jane Smith earned a PhD from State University in 2001.", turns[1].Content)
		assert.Empty(t, asks)
		assert.False(t, m.Pending())
		assert.Contains(t, m.View(), "You")
	})

	t.Run("marks pending until the reply arrives", func(t *testing.T) {
		t.Parallel()

		var asks []string
		m := newModel(t, &asks)
		m = typeText(t, m, "What's the weather today?")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(tui.Model)

		require.NotNil(t, cmd)
		assert.True(t, m.Pending())
		assert.Len(t, m.Session().Turns, 1)
		assert.Contains(t, m.View(), "thinking")

		updated, _ = m.Update(cmd())
		m = updated.(tui.Model)

		assert.False(t, m.Pending())
		assert.Equal(t, []string{"Witty:What's the weather today?"}, asks)
		require.Len(t, m.Session().Turns, 2)
		assert.Equal(t, "Probably sunny.", m.Session().Turns[1].Content)
	})

	t.Run("ignores blank input", func(t *testing.T) {
		t.Parallel()

		var asks []string
		m := newModel(t, &asks)
		m = typeText(t, m, "   ")

		m = press(t, m, tea.KeyEnter)

		assert.Empty(t, m.Session().Turns)
		assert.False(t, m.Pending())
	})
}

func TestModel_Tone(t *testing.T) {
	t.Parallel()

	var asks []string
	m := newModel(t, &asks)

	m = press(t, m, tea.KeyCtrlT)
	assert.Equal(t, roster.ToneFormal, m.Session().Tone)
	assert.Contains(t, m.View(), "tone: Formal")

	m = typeText(t, m, "tell me a joke")
	press(t, m, tea.KeyEnter)

	assert.Equal(t, []string{"Formal:tell me a joke"}, asks)
}

func TestModel_Clear(t *testing.T) {
	t.Parallel()

	var asks []string
	m := newModel(t, &asks)
	m = press(t, m, tea.KeyCtrlT)
	m = typeText(t, m, "Does Jane Smith hold a degree?")
	m = press(t, m, tea.KeyEnter)
	require.Len(t, m.Session().Turns, 2)

	m = press(t, m, tea.KeyCtrlL)

	assert.Empty(t, m.Session().Turns)
	assert.Equal(t, roster.ToneFormal, m.Session().Tone)
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	var asks []string
	m := newModel(t, &asks)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_Banner(t *testing.T) {
	t.Parallel()

	m := tui.NewModel(context.Background(), &chat.Responder{}, roster.NewSession("tui"), tui.Config{
		Banner: "Record data file not found or invalid.",
		Style:  "notty",
	})

	assert.Contains(t, m.View(), "Record data file not found or invalid.")
}
