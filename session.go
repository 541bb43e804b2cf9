package roster

import "time"

// Role identifies the speaker of a turn.
type Role string

// Turn roles.
const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn represents one message of a conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session represents one user's conversation and its tone setting.
// Turns are append-only; Clear is the only way to remove them.
type Session struct {
	ID        string    `json:"id"`
	Turns     []Turn    `json:"turns"`
	Tone      Tone      `json:"tone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSession returns an empty session with the default tone.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		Tone:      DefaultTone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds a turn to the end of the conversation.
func (s *Session) Append(role Role, content string) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content})
	s.UpdatedAt = time.Now().UTC()
}

// Clear removes all turns. The tone is kept.
func (s *Session) Clear() {
	s.Turns = nil
	s.UpdatedAt = time.Now().UTC()
}

// SetTone changes the tone used for remote answers.
func (s *Session) SetTone(tone Tone) {
	s.Tone = tone
	s.UpdatedAt = time.Now().UTC()
}
