package core

// DefaultHistoryLimit caps how many messages a room retains.
const DefaultHistoryLimit = 100

// Room groups clients subscribed to the same channel and owns their shared
// message history. All methods are called from the hub loop only.
type Room struct {
	Name    string
	clients map[*Client]struct{}
	history []*Message
	limit   int
}

// NewRoom constructs an empty room. A non-positive limit falls back to
// DefaultHistoryLimit.
func NewRoom(name string, limit int) *Room {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Room{
		Name:    name,
		clients: make(map[*Client]struct{}),
		limit:   limit,
	}
}

// AddClient inserts a client into the room. Returns true if newly added.
func (r *Room) AddClient(c *Client) bool {
	if _, exists := r.clients[c]; exists {
		return false
	}
	r.clients[c] = struct{}{}
	return true
}

// RemoveClient deletes a client from the room. Returns true if removed.
func (r *Room) RemoveClient(c *Client) bool {
	if _, exists := r.clients[c]; !exists {
		return false
	}
	delete(r.clients, c)
	return true
}

// Broadcast sends an event to all clients in the room.
func (r *Room) Broadcast(event *Event) {
	for client := range r.clients {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}

// BroadcastExcept sends an event to all clients in the room but skip.
func (r *Room) BroadcastExcept(event *Event, skip *Client) {
	for client := range r.clients {
		if client == skip {
			continue
		}
		select {
		case client.Events <- event:
		default:
		}
	}
}

// Append stores a message, evicting the single oldest entry once the
// history bound is exceeded. Eviction is strictly by insertion age.
func (r *Room) Append(m *Message) {
	r.history = append(r.history, m)
	if len(r.history) > r.limit {
		r.history = r.history[1:]
	}
}

// History returns snapshots of the retained messages in post order.
func (r *Room) History() []*Message {
	out := make([]*Message, len(r.history))
	for i, m := range r.history {
		out[i] = m.snapshot()
	}
	return out
}

// Find returns the retained message with the given id, or nil. Evicted and
// deleted messages are unreachable.
func (r *Room) Find(id string) *Message {
	for _, m := range r.history {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Delete removes the message with the given id. Returns true if removed.
func (r *Room) Delete(id string) bool {
	for i, m := range r.history {
		if m.ID == id {
			r.history = append(r.history[:i], r.history[i+1:]...)
			return true
		}
	}
	return false
}

// React appends a reaction to the message with the given id and returns a
// snapshot of the updated reaction list. Returns false if the message is
// no longer retained.
func (r *Room) React(id, emoji, user string) ([]Reaction, bool) {
	m := r.Find(id)
	if m == nil {
		return nil, false
	}
	m.Reactions = append(m.Reactions, Reaction{Emoji: emoji, User: user})
	return append([]Reaction(nil), m.Reactions...), true
}

// Empty returns true if no clients are in the room.
func (r *Room) Empty() bool {
	return len(r.clients) == 0
}
