package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidchat/internal/auth"
	apperr "vidchat/internal/errors"
	"vidchat/internal/service"
)

// ConversationHandler handles chat conversation endpoints.
type ConversationHandler struct {
	conversationService service.ConversationService
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// ConversationRequest names the conversation to open.
type ConversationRequest struct {
	Name string `json:"name" validate:"required,max=256"`
}

// Open godoc
// @Summary Find or create a chat conversation and return a chat token
// @Tags conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConversationRequest true "Conversation name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /conversation [post]
func (h *ConversationHandler) Open(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	var req ConversationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ticket, err := h.conversationService.Open(c.Request().Context(), req.Name, user.Username)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"conversation": ticket.Conversation, "token": ticket.Token})
}
