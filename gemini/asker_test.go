package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/roster"
	"github.com/fwojciec/roster/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, "")

	_, err := asker.Ask(context.Background(), "", roster.ToneWitty)

	require.Error(t, err)
	assert.Equal(t, roster.EINVALID, roster.ErrorCode(err))
	assert.Contains(t, roster.ErrorMessage(err), "question required")
}

func TestAsker_Ask_ReturnsUnavailableWithoutClient(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, "")

	_, err := asker.Ask(context.Background(), "hello", roster.ToneWitty)

	require.Error(t, err)
	assert.Equal(t, roster.EUNAVAILABLE, roster.ErrorCode(err))
}

func TestNewAsker_DefaultsModel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gemini.DefaultModel, gemini.NewAsker(nil, "").Model())
	assert.Equal(t, "gemini-2.0-flash", gemini.NewAsker(nil, "gemini-2.0-flash").Model())
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.5, *config.Temperature, 0.001)
	assert.Nil(t, config.SystemInstruction)
}

func TestBuildContents_WrapsQuestionInTonePrompt(t *testing.T) {
	t.Parallel()

	contents := gemini.BuildContents("What's the weather today?", roster.ToneFormal)

	require.Len(t, contents, 1)
	assert.Equal(t, "user", contents[0].Role)
	require.Len(t, contents[0].Parts, 1)
	assert.Equal(t, "Answer in a formal tone: What's the weather today?", contents[0].Parts[0].Text)
}
