package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// CommentService owns attaching anonymous comments to posts and listing them.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// CreateCommentInput carries the writeable comment fields.
type CreateCommentInput struct {
	Comment       string `json:"comment"`
	CommenterName string `json:"commenter_name"`
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// Create attaches a comment to the post. There is no existence check on the
// post before the insert; the store's foreign key constraint is the only
// protection, and a constraint violation surfaces as an internal error.
func (s *CommentService) Create(ctx context.Context, postID uint, in CreateCommentInput) error {
	if in.Comment == "" || in.CommenterName == "" {
		return models.NewValidationError("Comment and commenter_name are required")
	}

	comment := &models.Comment{
		Comment:       in.Comment,
		CommenterName: in.CommenterName,
		PostID:        postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return models.NewInternalError("Failed to create comment", err)
	}
	return nil
}

// ListByPost returns the post's comments. An empty result set is a success
// with an empty sequence; only a failed retrieval maps to not-found.
func (s *CommentService) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if postID == 0 {
		return nil, models.NewValidationError("Post ID is required")
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, &models.AppError{Code: "NOT_FOUND", Message: "Comments not found", Err: err}
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}
