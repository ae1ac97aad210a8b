package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomList carries the set of known room names.
	EventRoomList EventKind = iota
	// EventHistory delivers a room's full message history.
	EventHistory
	// EventRoomMessage notifies room members about a new chat message.
	EventRoomMessage
	// EventUpdateReactions carries a message's updated reaction list.
	EventUpdateReactions
	// EventUserConnected notifies a room that a user claimed a name.
	EventUserConnected
	// EventUserDisconnected notifies a room that a user went away.
	EventUserDisconnected
	// EventUserList carries the global presence list.
	EventUserList
	// EventKicked tells one client an admin asked it to leave.
	EventKicked
	// EventPrivateMessage delivers a direct message to one client.
	EventPrivateMessage
	// EventError notifies a client about a domain error (strict mode only).
	EventError
)

// Event is sent to clients to describe what happened in the system.
// Message payloads are snapshots; receivers never share state with the hub.
type Event struct {
	Kind      EventKind
	Room      string
	User      string     // EventUserConnected, EventUserDisconnected
	From      string     // EventPrivateMessage
	Text      string     // EventPrivateMessage
	Message   *Message   // EventRoomMessage
	Messages  []*Message // EventHistory
	MessageID string     // EventUpdateReactions
	Reactions []Reaction // EventUpdateReactions
	Rooms     []string   // EventRoomList
	Users     []string   // EventUserList
	Error     *CoreError // EventError
}
