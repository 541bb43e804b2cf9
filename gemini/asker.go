// Package gemini provides a roster.Asker backed by Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/roster"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements roster.Asker at compile time.
var _ roster.Asker = (*Asker)(nil)

// Asker implements roster.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Model returns the model identifier sent with each request.
func (a *Asker) Model() string {
	return a.model
}

// Ask answers a free-form question in the requested tone.
func (a *Asker) Ask(ctx context.Context, question string, tone roster.Tone) (string, error) {
	if question == "" {
		return "", roster.Errorf(roster.EINVALID, "question required")
	}
	if a.client == nil {
		return "", roster.Errorf(roster.EUNAVAILABLE, "gemini client not configured")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		BuildContents(question, tone),
		BuildConfig(),
	)
	if err != nil {
		return "", roster.Errorf(roster.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return "", roster.Errorf(roster.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(roster.AskTemperature)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

// BuildContents returns the single user message carrying the tone prompt.
func BuildContents(question string, tone roster.Tone) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(roster.TonePrompt(tone, question), genai.RoleUser),
	}
}
