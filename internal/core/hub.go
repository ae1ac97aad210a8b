package core

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
)

// AnonymousName is the author fallback for sessions that never claimed a
// display name.
const AnonymousName = "Anonymous"

// DefaultRoomName is the well-known room every session starts in.
const DefaultRoomName = "General"

// Options configures a Hub.
type Options struct {
	// DefaultRoom is the room new sessions land in. Defaults to
	// DefaultRoomName.
	DefaultRoom string
	// HistoryLimit bounds per-room retention. Defaults to
	// DefaultHistoryLimit.
	HistoryLimit int
	// StrictErrors surfaces authorization and not-found failures as
	// EventError instead of dropping them silently.
	StrictErrors bool
	// Substitute rewrites message bodies before they are stored (emoji
	// shortcode expansion). Nil leaves text untouched.
	Substitute func(string) string
	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger
}

type actionKind int

const (
	actRegister actionKind = iota
	actUnregister
	actCommand
	actRoomNames
)

type action struct {
	kind   actionKind
	client *Client
	cmd    *Command
	reply  chan []string
}

// Hub is the single-writer broker for all shared chat state. Rooms, the
// registry and every client's Name/Room field are mutated only by the Run
// loop; cross-goroutine effects travel over buffered channels and are
// dropped rather than blocked on.
type Hub struct {
	log        *zerolog.Logger
	registry   *Registry
	rooms      map[string]*Room
	clients    map[*Client]struct{}
	defRoom    string
	histLimit  int
	strict     bool
	substitute func(string) string

	actions chan action
	done    chan struct{}
}

// NewHub creates a hub with the default room already present and empty.
func NewHub(opts Options) *Hub {
	if opts.DefaultRoom == "" {
		opts.DefaultRoom = DefaultRoomName
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}
	if opts.Substitute == nil {
		opts.Substitute = func(s string) string { return s }
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}

	h := &Hub{
		log:        opts.Logger,
		registry:   NewRegistry(),
		rooms:      make(map[string]*Room),
		clients:    make(map[*Client]struct{}),
		defRoom:    opts.DefaultRoom,
		histLimit:  opts.HistoryLimit,
		strict:     opts.StrictErrors,
		substitute: opts.Substitute,
		actions:    make(chan action, 64),
		done:       make(chan struct{}),
	}
	h.rooms[h.defRoom] = NewRoom(h.defRoom, h.histLimit)
	return h
}

// Registry exposes the identity registry for read-only transport use.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Run processes actions until ctx is cancelled. It must be running before
// clients are registered.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case act := <-h.actions:
			h.dispatch(act)
		}
	}
}

// RegisterClient admits a client and starts pumping its commands into the
// hub loop. The pump stops when the client is unregistered or the hub exits.
func (h *Hub) RegisterClient(c *Client) {
	h.submit(action{kind: actRegister, client: c})
	go func() {
		for {
			select {
			case cmd, ok := <-c.Commands:
				if !ok {
					return
				}
				h.submit(action{kind: actCommand, client: c, cmd: cmd})
			case <-c.closed:
				return
			case <-h.done:
				return
			}
		}
	}()
}

// UnregisterClient removes a client, releasing its name and announcing the
// departure to its last room. The client's Events channel is closed by the
// hub loop afterwards.
func (h *Hub) UnregisterClient(c *Client) {
	h.submit(action{kind: actUnregister, client: c})
}

// RoomNames returns the sorted set of known room names.
func (h *Hub) RoomNames(ctx context.Context) []string {
	reply := make(chan []string, 1)
	select {
	case h.actions <- action{kind: actRoomNames, reply: reply}:
	case <-ctx.Done():
		return nil
	case <-h.done:
		return nil
	}
	select {
	case names := <-reply:
		return names
	case <-ctx.Done():
		return nil
	case <-h.done:
		return nil
	}
}

// Usernames returns the sorted global presence list.
func (h *Hub) Usernames() []string {
	return h.registry.Usernames()
}

func (h *Hub) submit(act action) {
	select {
	case h.actions <- act:
	case <-h.done:
	}
}

func (h *Hub) dispatch(act action) {
	switch act.kind {
	case actRegister:
		h.handleRegister(act.client)
	case actUnregister:
		h.handleUnregister(act.client)
	case actRoomNames:
		act.reply <- h.roomNames()
	case actCommand:
		if _, ok := h.clients[act.client]; !ok {
			return
		}
		h.handleCommand(act.client, act.cmd)
	}
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandSetUsername:
		h.handleSetUsername(c, cmd.Name)
	case CommandJoinRoom:
		h.handleJoinRoom(c, cmd.Room)
	case CommandCreateRoom:
		h.handleCreateRoom(c, cmd.Room)
	case CommandSendMessage:
		h.handleSendMessage(c, cmd.Text)
	case CommandAddReaction:
		h.handleAddReaction(c, cmd.MessageID, cmd.Emoji)
	case CommandDeleteMessage:
		h.handleDeleteMessage(c, cmd.MessageID)
	case CommandKickUser:
		h.handleKickUser(c, cmd.Target)
	case CommandPrivateMessage:
		h.handlePrivateMessage(c, cmd.Target, cmd.Text)
	}
}

// handleRegister defaults the session into the well-known room and sends it
// the room list and that room's history. Nothing is broadcast to others
// until the session claims a name.
func (h *Hub) handleRegister(c *Client) {
	if _, ok := h.clients[c]; ok {
		return
	}
	h.clients[c] = struct{}{}

	room := h.rooms[h.defRoom]
	room.AddClient(c)
	c.Room = h.defRoom

	h.send(c, &Event{Kind: EventRoomList, Rooms: h.roomNames()})
	h.send(c, &Event{Kind: EventHistory, Room: room.Name, Messages: room.History()})

	h.log.Debug().Str("client_id", c.ID).Msg("client registered")
}

func (h *Hub) handleUnregister(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)

	room := h.rooms[c.Room]
	if room != nil {
		room.RemoveClient(c)
	}

	if c.Name != "" {
		if h.registry.Unregister(c.Name, c.ID) {
			h.broadcastAll(&Event{Kind: EventUserList, Users: h.registry.Usernames()})
		}
		if room != nil {
			room.Broadcast(&Event{Kind: EventUserDisconnected, Room: room.Name, User: c.Name})
		}
	}

	close(c.closed)
	close(c.Events)

	h.log.Debug().Str("client_id", c.ID).Str("user", c.Name).Msg("client unregistered")
}

func (h *Hub) handleSetUsername(c *Client, name string) {
	if name == "" {
		h.fail(c, ErrCodeBadRequest, "name is required")
		return
	}
	if c.Name != "" {
		// Re-claiming: release the old name so the presence list
		// never shows a ghost entry.
		h.registry.Unregister(c.Name, c.ID)
	}

	if h.registry.Register(name, c) {
		h.log.Info().Str("user", name).Msg("admin granted to first user")
	}
	c.Name = name

	if room := h.rooms[c.Room]; room != nil {
		room.BroadcastExcept(&Event{Kind: EventUserConnected, Room: room.Name, User: name}, c)
	}
	h.broadcastAll(&Event{Kind: EventUserList, Users: h.registry.Usernames()})
}

// handleJoinRoom leaves the old room silently; only disconnects are
// announced to the room left behind.
func (h *Hub) handleJoinRoom(c *Client, name string) {
	if name == "" {
		h.fail(c, ErrCodeBadRequest, "room is required")
		return
	}

	room, created := h.ensureRoom(name)
	if created {
		h.broadcastAll(&Event{Kind: EventRoomList, Rooms: h.roomNames()})
	}

	if old := h.rooms[c.Room]; old != nil && old != room {
		old.RemoveClient(c)
	}
	room.AddClient(c)
	c.Room = room.Name

	h.send(c, &Event{Kind: EventHistory, Room: room.Name, Messages: room.History()})
	h.send(c, &Event{Kind: EventRoomList, Rooms: h.roomNames()})
}

func (h *Hub) handleCreateRoom(c *Client, name string) {
	if name == "" {
		h.fail(c, ErrCodeBadRequest, "room is required")
		return
	}
	if _, created := h.ensureRoom(name); created {
		h.broadcastAll(&Event{Kind: EventRoomList, Rooms: h.roomNames()})
	}
}

func (h *Hub) handleSendMessage(c *Client, text string) {
	room := h.rooms[c.Room]
	if room == nil {
		return
	}
	m := newMessage(h.displayName(c), h.substitute(text))
	room.Append(m)
	room.Broadcast(&Event{Kind: EventRoomMessage, Room: room.Name, Message: m.snapshot()})
}

func (h *Hub) handleAddReaction(c *Client, messageID, emoji string) {
	room := h.rooms[c.Room]
	if room == nil {
		return
	}
	reactions, ok := room.React(messageID, emoji, h.displayName(c))
	if !ok {
		h.fail(c, ErrCodeMessageNotFound, "message not found")
		return
	}
	room.Broadcast(&Event{
		Kind:      EventUpdateReactions,
		Room:      room.Name,
		MessageID: messageID,
		Reactions: reactions,
	})
}

// handleDeleteMessage resends the whole history on success; clients treat
// history as truth rather than applying partial delete events.
func (h *Hub) handleDeleteMessage(c *Client, messageID string) {
	if !h.registry.IsAdmin(c.Name) {
		h.fail(c, ErrCodeUnauthorized, "delete requires admin")
		return
	}
	room := h.rooms[c.Room]
	if room == nil {
		return
	}
	if !room.Delete(messageID) {
		h.fail(c, ErrCodeMessageNotFound, "message not found")
		return
	}
	room.Broadcast(&Event{Kind: EventHistory, Room: room.Name, Messages: room.History()})
}

// handleKickUser is advisory: the target gets a kicked notice and is
// expected to disconnect itself. The hub never force-closes connections.
func (h *Hub) handleKickUser(c *Client, target string) {
	if !h.registry.IsAdmin(c.Name) {
		h.fail(c, ErrCodeUnauthorized, "kick requires admin")
		return
	}
	tc := h.registry.Resolve(target)
	if tc == nil {
		h.fail(c, ErrCodeUserNotFound, "user not found")
		return
	}
	h.send(tc, &Event{Kind: EventKicked})
	h.broadcastAll(&Event{Kind: EventUserList, Users: h.registry.Usernames()})
	h.log.Info().Str("admin", c.Name).Str("target", target).Msg("kick issued")
}

func (h *Hub) handlePrivateMessage(c *Client, target, text string) {
	tc := h.registry.Resolve(target)
	if tc == nil {
		h.fail(c, ErrCodeUserNotFound, "user not found")
		return
	}
	h.send(tc, &Event{
		Kind: EventPrivateMessage,
		From: h.displayName(c),
		Text: h.substitute(text),
	})
}

// ensureRoom returns the named room, creating it if absent. Rooms persist
// for the process lifetime once created, even when empty.
func (h *Hub) ensureRoom(name string) (*Room, bool) {
	if room, ok := h.rooms[name]; ok {
		return room, false
	}
	room := NewRoom(name, h.histLimit)
	h.rooms[name] = room
	h.log.Info().Str("room", name).Msg("room created")
	return room, true
}

func (h *Hub) roomNames() []string {
	names := make([]string, 0, len(h.rooms))
	for name := range h.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *Hub) displayName(c *Client) string {
	if c.Name == "" {
		return AnonymousName
	}
	return c.Name
}

func (h *Hub) broadcastAll(event *Event) {
	for client := range h.clients {
		h.send(client, event)
	}
}

func (h *Hub) send(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
		// Drop if slow consumer.
	}
}

// fail applies the failure policy: silent by default, an explicit error
// event in strict mode.
func (h *Hub) fail(c *Client, code, msg string) {
	if !h.strict {
		h.log.Debug().Str("client_id", c.ID).Str("code", code).Msg("dropped failed operation")
		return
	}
	h.send(c, &Event{Kind: EventError, Error: coreError(code, msg)})
}
