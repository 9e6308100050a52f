package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	apperr "vidchat/internal/errors"
)

// SuccessResponse is the envelope of every successful request. Endpoint
// specific fields sit next to msg and status.
type SuccessResponse struct {
	Msg    string `json:"msg" example:"Successful"`
	Status string `json:"status" example:"success"`
}

func success(c echo.Context, code int, fields echo.Map) error {
	body := echo.Map{"msg": "Successful", "status": "success"}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(code, body)
}

// bindAndValidate decodes the request into req and runs struct validation.
// Both failures are reported as missing fields.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrMissingFields, err)
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrMissingFields, err)
	}
	return nil
}
