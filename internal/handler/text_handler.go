package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidchat/internal/service"
)

// TextHandler handles AI text conversion.
type TextHandler struct {
	textService service.TextService
}

// NewTextHandler creates a new text handler.
func NewTextHandler(textService service.TextService) *TextHandler {
	return &TextHandler{textService: textService}
}

// ConvertTextRequest is read from the query string.
type ConvertTextRequest struct {
	Text string `query:"text" validate:"required"`
	Type string `query:"type" validate:"required"`
}

// ConvertText godoc
// @Summary Extract topics from or summarize a text
// @Tags text
// @Produce json
// @Security BearerAuth
// @Param text query string true "Text to convert"
// @Param type query string true "topics or summarize"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Failure 504 {object} errors.ErrorResponse
// @Router /convertText [get]
func (h *TextHandler) ConvertText(c echo.Context) error {
	var req ConvertTextRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.textService.Convert(c.Request().Context(), req.Text, req.Type)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, echo.Map{"extractedTopics": out})
}
