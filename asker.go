package roster

import (
	"context"
	"strings"
)

// Tone is the style directive passed to the remote model.
type Tone string

// Supported tones.
const (
	ToneWitty  Tone = "Witty"
	ToneFormal Tone = "Formal"
	ToneCasual Tone = "Casual"
)

// DefaultTone is the tone of a new session.
const DefaultTone = ToneWitty

// Tones returns the supported tones in display order.
func Tones() []Tone {
	return []Tone{ToneWitty, ToneFormal, ToneCasual}
}

// ParseTone returns the tone named by s, ignoring case.
// Returns EINVALID for an unknown tone.
func ParseTone(s string) (Tone, error) {
	for _, t := range Tones() {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, nil
		}
	}
	return "", Errorf(EINVALID, "unknown tone %q", s)
}

// Next returns the tone following t in display order, wrapping around.
func (t Tone) Next() Tone {
	tones := Tones()
	for i, v := range tones {
		if v == t {
			return tones[(i+1)%len(tones)]
		}
	}
	return DefaultTone
}

// TonePrompt prefixes the question with the tone directive sent to the model.
func TonePrompt(tone Tone, question string) string {
	return "Answer in a " + strings.ToLower(string(tone)) + " tone: " + question
}

// AskTemperature is the sampling temperature used for remote answers.
const AskTemperature = 0.5

// Asker answers free-text questions with a remote language model.
type Asker interface {
	// Ask sends the question with the tone directive and returns the
	// generated text.
	Ask(ctx context.Context, question string, tone Tone) (string, error)
}
