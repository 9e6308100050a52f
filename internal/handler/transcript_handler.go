package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidchat/internal/auth"
	apperr "vidchat/internal/errors"
	"vidchat/internal/service"
)

// TranscriptHandler handles transcript endpoints.
type TranscriptHandler struct {
	transcriptService service.TranscriptService
}

// NewTranscriptHandler creates a new transcript handler.
func NewTranscriptHandler(transcriptService service.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcriptService: transcriptService}
}

// CreateTranscriptRequest is a transcript submission. The owner is the session user.
type CreateTranscriptRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// GetTranscriptRequest selects one transcript.
type GetTranscriptRequest struct {
	ID uint `query:"id" validate:"required"`
}

// Create godoc
// @Summary Store a transcript for the logged-in user
// @Tags transcripts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTranscriptRequest true "Transcript"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transcript [post]
func (h *TranscriptHandler) Create(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	var req CreateTranscriptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.transcriptService.Create(c.Request().Context(), user.ID, req.Name, req.Content)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, echo.Map{"id": id})
}

// Get godoc
// @Summary Read one of the logged-in user's transcripts
// @Tags transcripts
// @Produce json
// @Security BearerAuth
// @Param id query int true "Transcript id"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transcript [get]
func (h *TranscriptHandler) Get(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	var req GetTranscriptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	t, err := h.transcriptService.Get(c.Request().Context(), user.ID, req.ID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"transcript": t})
}

// List godoc
// @Summary List the logged-in user's transcripts, newest first
// @Tags transcripts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /transcripts [get]
func (h *TranscriptHandler) List(c echo.Context) error {
	user, ok := auth.UserFrom(c)
	if !ok {
		return apperr.ErrInvalidToken
	}

	list, err := h.transcriptService.ListByUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"transcripts": list})
}
