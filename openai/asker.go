// Package openai provides a roster.Asker for OpenAI-compatible
// chat-completion APIs such as xAI Grok.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fwojciec/roster"
	"github.com/sashabaranov/go-openai"
)

// Defaults for the xAI chat-completion API.
const (
	DefaultBaseURL = "https://api.x.ai/v1"
	DefaultModel   = "grok-3-mini"
)

// Ensure Asker implements roster.Asker at compile time.
var _ roster.Asker = (*Asker)(nil)

// Asker implements roster.Asker using the go-openai client.
type Asker struct {
	client *openai.Client
	model  string
}

type options struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures an Asker.
type Option func(*options)

// WithBaseURL sets the API base URL, without the /chat/completions suffix.
// Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = strings.TrimRight(u, "/")
	}
}

// WithModel sets the model identifier. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// NewAsker creates a new Asker authenticating with apiKey.
func NewAsker(apiKey string, opts ...Option) *Asker {
	o := options{baseURL: DefaultBaseURL, model: DefaultModel}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = o.baseURL
	if o.httpClient != nil {
		cfg.HTTPClient = o.httpClient
	}
	return &Asker{client: openai.NewClientWithConfig(cfg), model: o.model}
}

// Model returns the model identifier sent with each request.
func (a *Asker) Model() string {
	return a.model
}

// Ask sends the tone-prefixed question as a single user message and returns
// the content of the first choice. No retries are attempted.
func (a *Asker) Ask(ctx context.Context, question string, tone roster.Tone) (string, error) {
	if question == "" {
		return "", roster.Errorf(roster.EINVALID, "question required")
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: roster.TonePrompt(tone, question),
		}},
		Temperature: roster.AskTemperature,
	})
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", roster.Errorf(roster.EINTERNAL, "malformed response: no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", roster.Errorf(roster.EINTERNAL, "malformed response: no message content")
	}
	return content, nil
}

// classify maps a go-openai error to a coded error.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.HTTPStatusCode)
		}
		return roster.Errorf(roster.EUNAVAILABLE, "HTTP %d: %s", apiErr.HTTPStatusCode, msg)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return roster.Errorf(roster.EUNAVAILABLE, "HTTP %d: %s", reqErr.HTTPStatusCode, http.StatusText(reqErr.HTTPStatusCode))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return roster.Errorf(roster.EINTERNAL, "malformed response: %v", err)
	}

	return roster.Errorf(roster.EUNAVAILABLE, "chat request failed: %v", err)
}
