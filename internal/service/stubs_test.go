package service

import (
	"context"

	"inkwell/internal/models"
)

// stubPostRepo implements repository.PostRepository with overridable
// behavior per test.
type stubPostRepo struct {
	createFn        func(ctx context.Context, post *models.Post) error
	getByIDFn       func(ctx context.Context, id uint) (*models.Post, error)
	listFn          func(ctx context.Context, limit, offset int) ([]*models.Post, error)
	countFn         func(ctx context.Context) (int64, error)
	getByUserIDFn   func(ctx context.Context, userID uint) ([]*models.Post, error)
	countByUserFn   func(ctx context.Context, userID uint) (int64, error)
	searchFn        func(ctx context.Context, term string) ([]*models.Post, error)
	updateFn        func(ctx context.Context, post *models.Post) error
	deleteFn        func(ctx context.Context, id uint) error
	incrementViewFn func(ctx context.Context, id uint) (*models.Post, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPostRepo) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubPostRepo) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func (s *stubPostRepo) GetByUserID(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubPostRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}

func (s *stubPostRepo) SearchByTitle(ctx context.Context, term string) ([]*models.Post, error) {
	return s.searchFn(ctx, term)
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPostRepo) IncrementView(ctx context.Context, id uint) (*models.Post, error) {
	return s.incrementViewFn(ctx, id)
}

// stubUserRepo implements repository.UserRepository.
type stubUserRepo struct {
	getByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

// stubCommentRepo implements repository.CommentRepository.
type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	listByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func existingUser(id uint) *stubUserRepo {
	return &stubUserRepo{
		getByIDFn: func(_ context.Context, got uint) (*models.User, error) {
			if got == id {
				return &models.User{ID: id, Name: "Author", Email: "author@example.com"}, nil
			}
			return nil, nil
		},
	}
}
