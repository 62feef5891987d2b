package server

import (
	"strconv"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a numeric route parameter. The second return value reports
// whether an error response has already been written.
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, false
	}
	return uint(id), true
}

func humanizeParam(param string) string {
	switch param {
	case "id":
		return "post ID"
	default:
		return param
	}
}

func jwtSubject(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
