package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments returns a post's comments, newest first
func (s *Server) GetComments(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	comments, err := s.commentService.ListByPost(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Comments Found",
		fiber.Map{"comments": comments})
}

// CreateComment adds a comment to a post. No authentication is required;
// commenters identify themselves by name.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var input service.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.commentService.Create(c.UserContext(), id, input); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Comment Added Successfully", nil)
}
