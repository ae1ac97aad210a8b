package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/salachat/salachat-server/internal/config"
	"github.com/salachat/salachat-server/internal/core"
	"github.com/salachat/salachat-server/internal/emoji"
	"github.com/salachat/salachat-server/internal/proto"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	hub := core.NewHub(core.Options{Substitute: emoji.Replace})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	cfg := config.Default()
	cfg.Addr = ":0"
	disabled := zerolog.Nop()

	server := NewServer(hub, &cfg, &disabled)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func sendInbound(ctx context.Context, t *testing.T, conn *websocket.Conn, typ string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s: %v", typ, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

// readUntil discards outbound frames until one of the wanted type arrives.
func readUntil(ctx context.Context, t *testing.T, conn *websocket.Conn, typ string) json.RawMessage {
	t.Helper()

	for {
		var raw struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := wsjson.Read(ctx, conn, &raw); err != nil {
			t.Fatalf("read while waiting for %s: %v", typ, err)
		}
		if raw.Type == typ {
			return raw.Data
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestWebSocketChatRoundTrip(t *testing.T) {
	ts := startTestServer(t)
	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial A: %v", err)
	}
	defer connA.Close(websocket.StatusNormalClosure, "done")

	connB, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial B: %v", err)
	}
	defer connB.Close(websocket.StatusNormalClosure, "done")

	// Both connections land in the default room and get its state.
	var rooms proto.RoomListData
	if err := json.Unmarshal(readUntil(ctx, t, connA, proto.OutboundTypeRoomList), &rooms); err != nil {
		t.Fatalf("unmarshal room list: %v", err)
	}
	if len(rooms.Rooms) != 1 || rooms.Rooms[0] != core.DefaultRoomName {
		t.Fatalf("unexpected room list: %v", rooms.Rooms)
	}
	readUntil(ctx, t, connB, proto.OutboundTypeChatHistory)

	sendInbound(ctx, t, connA, proto.InboundTypeSetUsername, proto.SetUsernameData{Name: "alice"})
	sendInbound(ctx, t, connB, proto.InboundTypeSetUsername, proto.SetUsernameData{Name: "bob"})

	// B's claim is announced to A's room.
	var presence proto.PresenceData
	if err := json.Unmarshal(readUntil(ctx, t, connA, proto.OutboundTypeUserConnected), &presence); err != nil {
		t.Fatalf("unmarshal user_connected: %v", err)
	}
	if presence.User != "bob" {
		t.Fatalf("user_connected for %q, want bob", presence.User)
	}

	sendInbound(ctx, t, connA, proto.InboundTypeChatMessage, proto.ChatMessageData{Text: "hello :fire:"})

	var msg proto.ChatMessageEvent
	if err := json.Unmarshal(readUntil(ctx, t, connB, proto.OutboundTypeChatMessage), &msg); err != nil {
		t.Fatalf("unmarshal chat_message: %v", err)
	}
	if msg.Message.Author != "alice" || msg.Message.Body != "hello 🔥" {
		t.Fatalf("unexpected message: %+v", msg.Message)
	}

	sendInbound(ctx, t, connB, proto.InboundTypeAddReaction, proto.AddReactionData{
		MessageID: msg.Message.ID,
		Emoji:     "👍",
	})

	var reactions proto.UpdateReactionsData
	if err := json.Unmarshal(readUntil(ctx, t, connA, proto.OutboundTypeUpdateReactions), &reactions); err != nil {
		t.Fatalf("unmarshal update_reactions: %v", err)
	}
	if reactions.MessageID != msg.Message.ID || len(reactions.Reactions) != 1 || reactions.Reactions[0].User != "bob" {
		t.Fatalf("unexpected reactions: %+v", reactions)
	}

	sendInbound(ctx, t, connB, proto.InboundTypePrivateMessage, proto.PrivateMessageData{
		To:   "alice",
		Text: "psst <3",
	})

	var pm proto.PrivateMessageEvent
	if err := json.Unmarshal(readUntil(ctx, t, connA, proto.OutboundTypePrivateMessage), &pm); err != nil {
		t.Fatalf("unmarshal private_message: %v", err)
	}
	if pm.From != "bob" || pm.Text != "psst ❤️" {
		t.Fatalf("unexpected private message: %+v", pm)
	}
}

func TestWebSocketBadPayloadGetsError(t *testing.T) {
	ts := startTestServer(t)
	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: "join_room", Data: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("write: %v", err)
	}

	for {
		var raw struct {
			Type  string       `json:"type"`
			Error *proto.Error `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &raw); err != nil {
			t.Fatalf("read: %v", err)
		}
		if raw.Type == proto.OutboundTypeError {
			if raw.Error == nil || raw.Error.Code != core.ErrCodeBadRequest {
				t.Fatalf("unexpected error payload: %+v", raw.Error)
			}
			return
		}
	}
}

func TestAPIListings(t *testing.T) {
	ts := startTestServer(t)
	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	sendInbound(ctx, t, conn, proto.InboundTypeSetUsername, proto.SetUsernameData{Name: "alice"})
	readUntil(ctx, t, conn, proto.OutboundTypeUserList)
	sendInbound(ctx, t, conn, proto.InboundTypeCreateRoom, proto.RoomData{Room: "Dev"})
	readUntil(ctx, t, conn, proto.OutboundTypeRoomList) // broadcast after create

	resp, err := ts.Client().Get(ts.URL + "/api/rooms")
	if err != nil {
		t.Fatalf("rooms request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "Dev") || !strings.Contains(string(body), core.DefaultRoomName) {
		t.Fatalf("rooms response %s missing expected rooms", body)
	}

	resp, err = ts.Client().Get(ts.URL + "/api/users")
	if err != nil {
		t.Fatalf("users request: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "alice") {
		t.Fatalf("users response %s missing alice", body)
	}
}
