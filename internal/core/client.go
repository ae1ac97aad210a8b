package core

// Client is a connected session as seen by the core layer. Name and Room
// are owned by the hub loop after registration; the transport only reads ID.
type Client struct {
	ID   string
	Name string
	Room string

	Commands chan *Command
	Events   chan *Event

	closed chan struct{}
}

// NewClient constructs a client with initialized channels. The id should be
// unique per connection; it keys registry ownership checks.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 16),
		closed:   make(chan struct{}),
	}
}
