package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/shubhamsg199/repo-metrics/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := "INTERNAL"
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = "INVALID_ARGUMENT"
	case errors.Is(err, entities.ErrTeamsNotConfigured):
		status = http.StatusInternalServerError
		code = "TEAMS_NOT_CONFIGURED"
	case errors.Is(err, entities.ErrUnrecognizedEvent), errors.Is(err, entities.ErrMalformedTimestamp):
		status = http.StatusBadGateway
		code = "UPSTREAM_SCHEMA"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code, msg string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
