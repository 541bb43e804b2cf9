package roster_test

import (
	"testing"

	"github.com/fwojciec/roster"
	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("starts empty with default tone", func(t *testing.T) {
		t.Parallel()

		s := roster.NewSession("sess-1")

		assert.Equal(t, "sess-1", s.ID)
		assert.Empty(t, s.Turns)
		assert.Equal(t, roster.ToneWitty, s.Tone)
		assert.False(t, s.CreatedAt.IsZero())
	})

	t.Run("appends turns in order", func(t *testing.T) {
		t.Parallel()

		s := roster.NewSession("sess-1")
		s.Append(roster.RoleUser, "hello")
		s.Append(roster.RoleBot, "hi")

		assert.Equal(t, []roster.Turn{
			{Role: roster.RoleUser, Content: "hello"},
			{Role: roster.RoleBot, Content: "hi"},
		}, s.Turns)
	})

	t.Run("clear removes turns and keeps tone", func(t *testing.T) {
		t.Parallel()

		s := roster.NewSession("sess-1")
		s.SetTone(roster.ToneCasual)
		s.Append(roster.RoleUser, "hello")

		s.Clear()

		assert.Empty(t, s.Turns)
		assert.Equal(t, roster.ToneCasual, s.Tone)
	})
}
