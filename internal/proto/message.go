package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeSetUsername    = "set_username"
	InboundTypeJoinRoom       = "join_room"
	InboundTypeCreateRoom     = "create_room"
	InboundTypeChatMessage    = "chat_message"
	InboundTypeAddReaction    = "add_reaction"
	InboundTypeDeleteMessage  = "delete_message"
	InboundTypeKickUser       = "kick_user"
	InboundTypePrivateMessage = "private_message"

	OutboundTypeRoomList         = "room_list"
	OutboundTypeChatHistory      = "chat_history"
	OutboundTypeChatMessage      = "chat_message"
	OutboundTypeUpdateReactions  = "update_reactions"
	OutboundTypeUserConnected    = "user_connected"
	OutboundTypeUserDisconnected = "user_disconnected"
	OutboundTypeUserList         = "user_list"
	OutboundTypeKicked           = "kicked"
	OutboundTypePrivateMessage   = "private_message"
	OutboundTypeError            = "error"
)

// SetUsernameData claims a display name for the connection.
type SetUsernameData struct {
	Name string `json:"name"`
}

// RoomData names a room for join and create requests.
type RoomData struct {
	Room string `json:"room"`
}

// ChatMessageData is a chat message from the client.
type ChatMessageData struct {
	Text string `json:"text"`
}

// AddReactionData reacts to a message in the current room.
type AddReactionData struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

// DeleteMessageData removes a message (admin only).
type DeleteMessageData struct {
	MessageID string `json:"message_id"`
}

// KickUserData names the user to kick (admin only).
type KickUserData struct {
	User string `json:"user"`
}

// PrivateMessageData is a direct message to one user.
type PrivateMessageData struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// WireReaction is a single reaction on a message.
type WireReaction struct {
	Emoji string `json:"emoji"`
	User  string `json:"user"`
}

// WireMessage is a chat message as delivered to clients.
type WireMessage struct {
	ID        string         `json:"id"`
	Author    string         `json:"author"`
	Body      string         `json:"body"`
	Reactions []WireReaction `json:"reactions"`
	TS        int64          `json:"ts"`
}

// RoomListData carries the known room names.
type RoomListData struct {
	Rooms []string `json:"rooms"`
}

// ChatHistoryData carries a room's full retained history.
type ChatHistoryData struct {
	Room     string        `json:"room"`
	Messages []WireMessage `json:"messages"`
}

// ChatMessageEvent announces a new message to a room.
type ChatMessageEvent struct {
	Room    string      `json:"room"`
	Message WireMessage `json:"message"`
}

// UpdateReactionsData carries a message's updated reaction list.
type UpdateReactionsData struct {
	Room      string         `json:"room"`
	MessageID string         `json:"message_id"`
	Reactions []WireReaction `json:"reactions"`
}

// PresenceData names the user behind connected/disconnected events.
type PresenceData struct {
	Room string `json:"room,omitempty"`
	User string `json:"user"`
}

// UserListData carries the global presence list.
type UserListData struct {
	Users []string `json:"users"`
}

// PrivateMessageEvent delivers a direct message to its target.
type PrivateMessageEvent struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
