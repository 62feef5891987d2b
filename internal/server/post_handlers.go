package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts returns a page of posts ordered newest first.
// The cursor query parameter is the offset of the requested page.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page, err := s.postService.ListAll(c.UserContext(), c.Query("cursor"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Success", page)
}

// SearchPosts returns the posts whose title contains the search term
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	posts, err := s.postService.SearchByTitle(c.UserContext(), c.Query("term"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Posts Found", posts)
}

// GetUserPosts returns the authenticated user's posts with aggregate stats
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	stats, err := s.postService.FindUserPosts(c.UserContext(), s.principal(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Success", stats)
}

// GetPost returns a single post with its author and comments
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	post, err := s.postService.FindOne(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Post Found", post)
}

// IncrementPostViews atomically bumps a post's view counter
func (s *Server) IncrementPostViews(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	post, err := s.postService.IncrementView(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Success", post)
}

// CreatePost creates a post owned by the authenticated user
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var input service.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	id, err := s.postService.Create(c.UserContext(), input, s.principal(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusCreated, "Post created Successfully",
		fiber.Map{"id": id})
}

// UpdatePost overwrites an existing post's content fields
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var input service.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	updatedID, err := s.postService.Update(c.UserContext(), id, input, s.principal(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Successfully Edited Post",
		fiber.Map{"id": updatedID})
}

// DeletePost removes a post owned by the authenticated user
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	if err := s.postService.Remove(c.UserContext(), id, s.principal(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, "Post Deleted Successfully", nil)
}
