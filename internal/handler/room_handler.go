package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidchat/internal/model"
	"vidchat/internal/service"
)

// RoomHandler handles video room endpoints.
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new room handler.
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// CreateRoomRequest wraps the room options the way the web client sends them.
type CreateRoomRequest struct {
	Options model.RoomOptions `json:"options"`
}

// JoinRoomRequest carries the room to join.
type JoinRoomRequest struct {
	RoomName string `query:"roomname" validate:"required"`
}

// CreateRoom godoc
// @Summary Create a video room unless one with that name exists
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoomRequest true "Room options"
// @Success 200 {object} SuccessResponse "room already existed"
// @Success 201 {object} SuccessResponse "room created"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 504 {object} errors.ErrorResponse
// @Router /createRoom [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req CreateRoomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.roomService.CreateRoom(c.Request().Context(), req.Options)
	if err != nil {
		return err
	}
	code := http.StatusOK
	if result.Created {
		code = http.StatusCreated
	}
	return success(c, code, echo.Map{"created": result.Created, "room": result.Room})
}

// JoinRoom godoc
// @Summary Issue a video access token for a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomname query string true "Room name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /joinRoom [get]
func (h *RoomHandler) JoinRoom(c echo.Context) error {
	var req JoinRoomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ticket, err := h.roomService.JoinRoom(c.Request().Context(), req.RoomName)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"twilioToken": ticket.Token, "identity": ticket.Identity})
}
