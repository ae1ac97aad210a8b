package http

import (
	"encoding/json"

	"github.com/salachat/salachat-server/internal/core"
	"github.com/salachat/salachat-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeSetUsername:
		var data proto.SetUsernameData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.Name == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "name is required"}, nil
		}
		return &core.Command{Kind: core.CommandSetUsername, Name: data.Name}, nil, nil

	case proto.InboundTypeJoinRoom:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room is required"}, nil
		}
		return &core.Command{Kind: core.CommandJoinRoom, Room: data.Room}, nil, nil

	case proto.InboundTypeCreateRoom:
		var data proto.RoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.Room == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "room is required"}, nil
		}
		return &core.Command{Kind: core.CommandCreateRoom, Room: data.Room}, nil, nil

	case proto.InboundTypeChatMessage:
		var data proto.ChatMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		return &core.Command{Kind: core.CommandSendMessage, Text: data.Text}, nil, nil

	case proto.InboundTypeAddReaction:
		var data proto.AddReactionData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.MessageID == "" || data.Emoji == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "message_id and emoji are required"}, nil
		}
		return &core.Command{Kind: core.CommandAddReaction, MessageID: data.MessageID, Emoji: data.Emoji}, nil, nil

	case proto.InboundTypeDeleteMessage:
		var data proto.DeleteMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.MessageID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "message_id is required"}, nil
		}
		return &core.Command{Kind: core.CommandDeleteMessage, MessageID: data.MessageID}, nil, nil

	case proto.InboundTypeKickUser:
		var data proto.KickUserData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.User == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "user is required"}, nil
		}
		return &core.Command{Kind: core.CommandKickUser, Target: data.User}, nil, nil

	case proto.InboundTypePrivateMessage:
		var data proto.PrivateMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.To == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "to is required"}, nil
		}
		return &core.Command{Kind: core.CommandPrivateMessage, Target: data.To, Text: data.Text}, nil, nil
	}

	return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "unknown message type"}, nil
}

func wireMessage(m *core.Message) proto.WireMessage {
	reactions := make([]proto.WireReaction, len(m.Reactions))
	for i, r := range m.Reactions {
		reactions[i] = proto.WireReaction{Emoji: r.Emoji, User: r.User}
	}
	return proto.WireMessage{
		ID:        m.ID,
		Author:    m.Author,
		Body:      m.Body,
		Reactions: reactions,
		TS:        m.CreatedAt.Unix(),
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomList:
		return proto.Outbound{
			Type: proto.OutboundTypeRoomList,
			Data: proto.RoomListData{Rooms: event.Rooms},
		}
	case core.EventHistory:
		messages := make([]proto.WireMessage, len(event.Messages))
		for i, m := range event.Messages {
			messages[i] = wireMessage(m)
		}
		return proto.Outbound{
			Type: proto.OutboundTypeChatHistory,
			Data: proto.ChatHistoryData{Room: event.Room, Messages: messages},
		}
	case core.EventRoomMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeChatMessage,
			Data: proto.ChatMessageEvent{Room: event.Room, Message: wireMessage(event.Message)},
		}
	case core.EventUpdateReactions:
		reactions := make([]proto.WireReaction, len(event.Reactions))
		for i, r := range event.Reactions {
			reactions[i] = proto.WireReaction{Emoji: r.Emoji, User: r.User}
		}
		return proto.Outbound{
			Type: proto.OutboundTypeUpdateReactions,
			Data: proto.UpdateReactionsData{
				Room:      event.Room,
				MessageID: event.MessageID,
				Reactions: reactions,
			},
		}
	case core.EventUserConnected:
		return proto.Outbound{
			Type: proto.OutboundTypeUserConnected,
			Data: proto.PresenceData{Room: event.Room, User: event.User},
		}
	case core.EventUserDisconnected:
		return proto.Outbound{
			Type: proto.OutboundTypeUserDisconnected,
			Data: proto.PresenceData{Room: event.Room, User: event.User},
		}
	case core.EventUserList:
		return proto.Outbound{
			Type: proto.OutboundTypeUserList,
			Data: proto.UserListData{Users: event.Users},
		}
	case core.EventKicked:
		return proto.Outbound{Type: proto.OutboundTypeKicked}
	case core.EventPrivateMessage:
		return proto.Outbound{
			Type: proto.OutboundTypePrivateMessage,
			Data: proto.PrivateMessageEvent{From: event.From, Text: event.Text},
		}
	case core.EventError:
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	}
	return proto.Outbound{
		Type:  proto.OutboundTypeError,
		Error: &proto.Error{Code: core.ErrCodeBadRequest, Msg: "unknown event"},
	}
}
