package model

import (
	"fmt"
	"strings"
	"time"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting is the assistant turn a conversation starts with and is reset to.
const Greeting = "Hello! I'm your emotionally intelligent AI assistant. How can I help you today? Feel free to share what's on your mind."

// ConversationTurn is a single message in a conversation.
type ConversationTurn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is an append-only sequence of turns.
// Reset is the only operation that drops turns.
// A Conversation is owned by one client session and is not safe for concurrent use.
type Conversation struct {
	turns []ConversationTurn
}

// NewConversation returns a conversation seeded with the assistant greeting.
func NewConversation(now time.Time) *Conversation {
	c := &Conversation{}
	c.Reset(now)
	return c
}

// Append adds a turn at the end of the conversation.
func (c *Conversation) Append(role Role, content string, at time.Time) (ConversationTurn, error) {
	if role != RoleUser && role != RoleAssistant {
		return ConversationTurn{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if strings.TrimSpace(content) == "" {
		return ConversationTurn{}, ErrEmptyContent
	}
	turn := ConversationTurn{Role: role, Content: content, Timestamp: at}
	c.turns = append(c.turns, turn)
	return turn, nil
}

// Reset replaces every turn with a single greeting.
func (c *Conversation) Reset(now time.Time) {
	c.turns = []ConversationTurn{{Role: RoleAssistant, Content: Greeting, Timestamp: now}}
}

// Turns returns a copy of the turns in order.
func (c *Conversation) Turns() []ConversationTurn {
	out := make([]ConversationTurn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of turns.
func (c *Conversation) Len() int {
	return len(c.turns)
}

// Transcript renders the last n turns as "role: content" lines, oldest first.
// n <= 0 renders every turn.
func (c *Conversation) Transcript(n int) string {
	turns := c.turns
	if n > 0 && len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	var b strings.Builder
	for i, t := range turns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(string(t.Role))
		b.WriteString(": ")
		b.WriteString(t.Content)
	}
	return b.String()
}
