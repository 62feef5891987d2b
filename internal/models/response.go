package models

import "github.com/gofiber/fiber/v2"

// APIResponse is the uniform envelope returned by every endpoint, success and
// failure alike: a status code, a human-readable message, and an optional
// payload. Expected failures never surface as unhandled faults; they are
// mapped into this shape.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Respond writes the uniform envelope with the given status, message and payload.
func Respond(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(APIResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// RespondWithError maps err to the uniform envelope, deriving the HTTP status
// from the error code. Unknown errors are reported as internal.
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr := AsAppError(err)
	return Respond(c, appErr.HTTPStatus(), appErr.Message, nil)
}
