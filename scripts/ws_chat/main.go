// Command ws_chat is a line-oriented chat client for manual testing.
// Plain lines are posted to the current room; slash commands cover the rest:
//
//	/join <room>      switch rooms
//	/create <room>    create a room without joining
//	/msg <user> text  direct message
//	/react <id> <emoji>
//	/delete <id>
//	/kick <user>
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/salachat/salachat-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:3000/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "username")
	room := flag.String("room", "", "room to join after connecting")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(typ string, data any) {
		payload, err := json.Marshal(data)
		if err != nil {
			log.Printf("marshal %s: %v", typ, err)
			return
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	send(proto.InboundTypeSetUsername, proto.SetUsernameData{Name: *user})
	if *room != "" {
		send(proto.InboundTypeJoinRoom, proto.RoomData{Room: *room})
	}

	fmt.Printf("Connected to %s as %s\n", *addr, *user)
	fmt.Println("Type messages and press Enter to send. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn, send)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func decode[T any](data any) (T, error) {
	var out T
	raw, err := json.Marshal(data)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			// Treat expected shutdowns quietly.
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		switch outbound.Type {
		case proto.OutboundTypeChatMessage:
			evt, err := decode[proto.ChatMessageEvent](outbound.Data)
			if err != nil {
				log.Printf("decode chat_message: %v", err)
				continue
			}
			fmt.Printf("[%s] %s: %s (id %s)\n", evt.Room, evt.Message.Author, evt.Message.Body, evt.Message.ID)
		case proto.OutboundTypeChatHistory:
			evt, err := decode[proto.ChatHistoryData](outbound.Data)
			if err != nil {
				log.Printf("decode chat_history: %v", err)
				continue
			}
			fmt.Printf("--- %s (%d messages) ---\n", evt.Room, len(evt.Messages))
			for _, m := range evt.Messages {
				fmt.Printf("[%s] %s: %s\n", evt.Room, m.Author, m.Body)
			}
		case proto.OutboundTypeUpdateReactions:
			evt, err := decode[proto.UpdateReactionsData](outbound.Data)
			if err != nil {
				log.Printf("decode update_reactions: %v", err)
				continue
			}
			fmt.Printf("[%s] message %s now has %d reactions\n", evt.Room, evt.MessageID, len(evt.Reactions))
		case proto.OutboundTypePrivateMessage:
			evt, err := decode[proto.PrivateMessageEvent](outbound.Data)
			if err != nil {
				log.Printf("decode private_message: %v", err)
				continue
			}
			fmt.Printf("(pm) %s: %s\n", evt.From, evt.Text)
		case proto.OutboundTypeUserConnected:
			evt, err := decode[proto.PresenceData](outbound.Data)
			if err != nil {
				continue
			}
			fmt.Printf("* %s connected\n", evt.User)
		case proto.OutboundTypeUserDisconnected:
			evt, err := decode[proto.PresenceData](outbound.Data)
			if err != nil {
				continue
			}
			fmt.Printf("* %s disconnected\n", evt.User)
		case proto.OutboundTypeUserList:
			evt, err := decode[proto.UserListData](outbound.Data)
			if err != nil {
				continue
			}
			fmt.Printf("* online: %s\n", strings.Join(evt.Users, ", "))
		case proto.OutboundTypeRoomList:
			evt, err := decode[proto.RoomListData](outbound.Data)
			if err != nil {
				continue
			}
			fmt.Printf("* rooms: %s\n", strings.Join(evt.Rooms, ", "))
		case proto.OutboundTypeKicked:
			fmt.Println("* you were kicked by an admin, closing")
			return
		case proto.OutboundTypeError:
			if outbound.Error != nil {
				fmt.Printf("! %s: %s\n", outbound.Error.Code, outbound.Error.Msg)
			}
		default:
			fmt.Printf("type=%s data=%v\n", outbound.Type, outbound.Data)
		}
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn, send func(string, any)) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}
			if !strings.HasPrefix(text, "/") {
				send(proto.InboundTypeChatMessage, proto.ChatMessageData{Text: text})
				continue
			}

			fields := strings.Fields(text)
			switch fields[0] {
			case "/join":
				if len(fields) == 2 {
					send(proto.InboundTypeJoinRoom, proto.RoomData{Room: fields[1]})
				}
			case "/create":
				if len(fields) == 2 {
					send(proto.InboundTypeCreateRoom, proto.RoomData{Room: fields[1]})
				}
			case "/msg":
				if len(fields) >= 3 {
					send(proto.InboundTypePrivateMessage, proto.PrivateMessageData{
						To:   fields[1],
						Text: strings.Join(fields[2:], " "),
					})
				}
			case "/react":
				if len(fields) == 3 {
					send(proto.InboundTypeAddReaction, proto.AddReactionData{
						MessageID: fields[1],
						Emoji:     fields[2],
					})
				}
			case "/delete":
				if len(fields) == 2 {
					send(proto.InboundTypeDeleteMessage, proto.DeleteMessageData{MessageID: fields[1]})
				}
			case "/kick":
				if len(fields) == 2 {
					send(proto.InboundTypeKickUser, proto.KickUserData{User: fields[1]})
				}
			default:
				fmt.Printf("unknown command %s\n", fields[0])
			}
		}
	}
}
