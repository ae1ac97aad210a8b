package core

import (
	"time"

	"github.com/google/uuid"
)

// Reaction is a single emoji reaction left on a message. The same user may
// react with the same emoji more than once; entries keep insertion order.
type Reaction struct {
	Emoji string
	User  string
}

// Message is the domain model for a chat message. Author is a snapshot of
// the sender's display name at posting time and never changes afterwards.
type Message struct {
	ID        string
	Author    string
	Body      string
	Reactions []Reaction
	CreatedAt time.Time
}

func newMessage(author, body string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Author:    author,
		Body:      body,
		CreatedAt: time.Now(),
	}
}

// snapshot returns a copy safe to hand to other goroutines. The hub keeps
// mutating the stored message's reaction list after broadcast.
func (m *Message) snapshot() *Message {
	cp := *m
	if len(m.Reactions) > 0 {
		cp.Reactions = append([]Reaction(nil), m.Reactions...)
	}
	return &cp
}
