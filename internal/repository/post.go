package repository

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Count(ctx context.Context) (int64, error)
	GetByUserID(ctx context.Context, userID uint) ([]*models.Post, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
	SearchByTitle(ctx context.Context, term string) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	IncrementView(ctx context.Context, id uint) (*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("updated_at DESC")
		}).
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns one page of posts, most recent first. Ties on created_at fall
// back to the store's insertion order, which is stable for a fixed data set.
// The offset paging here is not consistency-safe under concurrent writes: a
// page can skip or repeat items if posts are inserted or deleted between
// calls. That is an accepted limitation of the raw-offset cursor contract.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	defer observability.TrackQuery("list", "posts")()

	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}

// GetByUserID returns all of one author's posts, each annotated with its
// comment count via a correlated subquery so the count and the row come from
// a single statement.
func (r *postRepository) GetByUserID(ctx context.Context, userID uint) ([]*models.Post, error) {
	defer observability.TrackQuery("get_by_user", "posts")()

	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Select("posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// SearchByTitle matches by substring containment on title. Case sensitivity
// is whatever the storage engine's LIKE gives us.
func (r *postRepository) SearchByTitle(ctx context.Context, term string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("title LIKE ?", "%"+term+"%").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementView applies a single store-side "add 1" to view_count. The
// increment is never performed as a read-then-write in Go: concurrent calls
// for the same post must all be reflected, and only an atomic UPDATE
// expression guarantees that.
func (r *postRepository) IncrementView(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("increment_view", "posts")()

	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	observability.PostViewIncrements.Inc()

	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}
