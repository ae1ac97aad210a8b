package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/salachat/salachat-server/internal/core"
)

// APIHandlers serves read-only views over the hub's state. All writes go
// through the websocket protocol.
type APIHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(hub *core.Hub, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{hub: hub, log: logger}
}

// RoomsResponse lists the known room names.
type RoomsResponse struct {
	Rooms []string `json:"rooms"`
}

// UsersResponse lists the currently present usernames.
type UsersResponse struct {
	Users []string `json:"users"`
}

// ListRooms handles GET /api/rooms.
func (h *APIHandlers) ListRooms(c *gin.Context) {
	rooms := h.hub.RoomNames(c.Request.Context())
	if rooms == nil {
		rooms = []string{}
	}
	c.JSON(http.StatusOK, RoomsResponse{Rooms: rooms})
}

// ListUsers handles GET /api/users.
func (h *APIHandlers) ListUsers(c *gin.Context) {
	users := h.hub.Usernames()
	if users == nil {
		users = []string{}
	}
	c.JSON(http.StatusOK, UsersResponse{Users: users})
}
