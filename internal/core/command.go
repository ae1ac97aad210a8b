package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandSetUsername claims a display name for the session.
	CommandSetUsername CommandKind = iota
	// CommandJoinRoom moves the session into a room, creating it if needed.
	CommandJoinRoom
	// CommandCreateRoom ensures a room exists without joining it.
	CommandCreateRoom
	// CommandSendMessage posts a chat message to the current room.
	CommandSendMessage
	// CommandAddReaction appends an emoji reaction to a message.
	CommandAddReaction
	// CommandDeleteMessage removes a message (admin only).
	CommandDeleteMessage
	// CommandKickUser sends an advisory kick notice to a user (admin only).
	CommandKickUser
	// CommandPrivateMessage delivers a direct message to one user.
	CommandPrivateMessage
)

// Command represents an action requested by a client.
type Command struct {
	Kind      CommandKind
	Name      string // CommandSetUsername
	Room      string // CommandJoinRoom, CommandCreateRoom
	Text      string // CommandSendMessage, CommandPrivateMessage
	MessageID string // CommandAddReaction, CommandDeleteMessage
	Emoji     string // CommandAddReaction
	Target    string // CommandKickUser, CommandPrivateMessage
}
