// Package service implements the application's business operations on top of
// the repository layer. Every operation returns either a payload or a typed
// *models.AppError; expected failures never escape as panics or bare errors.
package service

import (
	"context"
	"errors"
	"strconv"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// pageSize is the fixed page length for post listings.
const pageSize = 10

// Principal is the authenticated identity resolved from a bearer credential.
// The service never parses credentials itself; it only re-resolves the id
// against the user store where an operation demands a live account.
type Principal struct {
	ID    uint
	Email string
}

// PostService owns pagination, search, view counters and per-author
// aggregate statistics.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePostInput carries the writable post fields.
type CreatePostInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	FullContent string `json:"full_content"`
	Image       string `json:"image,omitempty"`
}

// PostView is the read model for listing and detail responses: the post plus
// the author projection {id, name} and nothing else about the author.
type PostView struct {
	*models.Post
	Author *models.PublicUser `json:"author,omitempty"`
}

func newPostView(p *models.Post) PostView {
	v := PostView{Post: p}
	if p.Author != nil {
		pub := p.Author.Public()
		v.Author = &pub
	}
	return v
}

// PostPage is one page of the global post listing.
type PostPage struct {
	Posts       []PostView `json:"posts"`
	NextCursor  *int       `json:"nextCursor"`
	HasNextPage bool       `json:"hasNextPage"`
}

// UserPostStats aggregates one author's posts and engagement counters.
type UserPostStats struct {
	Posts         []*models.Post `json:"posts"`
	NumOfPosts    int            `json:"numOfPosts"`
	NumOfComments int            `json:"numOfComments"`
	TotalViews    int            `json:"totalViews"`
}

// parseCursor turns the raw cursor query value into an offset. The cursor is
// a plain decimal offset, not an opaque token; anything absent, non-numeric
// or negative falls back to offset zero rather than erroring, matching the
// documented no-validation contract.
func parseCursor(cursor string) int {
	if cursor == "" {
		return 0
	}
	offset, err := strconv.Atoi(cursor)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// ListAll returns one page of posts ordered by creation time descending.
//
// hasNextPage is totalCount > offset+pageSize and nextCursor is offset+pageSize
// when another page exists, nil otherwise. Because the cursor is a raw offset
// over a mutable collection, a page can skip or repeat posts when the set
// changes between calls; that is an accepted limitation, not a bug.
func (s *PostService) ListAll(ctx context.Context, cursor string) (*PostPage, error) {
	offset := parseCursor(cursor)

	posts, err := s.postRepo.List(ctx, pageSize, offset)
	if err != nil {
		return nil, models.NewInternalError("Failed to fetch posts", err)
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, models.NewInternalError("Failed to fetch posts", err)
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, newPostView(p))
	}

	page := &PostPage{
		Posts:       views,
		HasNextPage: total > int64(offset+pageSize),
	}
	if page.HasNextPage {
		next := offset + pageSize
		page.NextCursor = &next
	}
	return page, nil
}

// FindOne returns the post with its comments ordered by last update,
// newest first, and the author's id and name only.
func (s *PostService) FindOne(ctx context.Context, id uint) (*PostView, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError("Failed to fetch post", err)
	}
	view := newPostView(post)
	return &view, nil
}

// SearchByTitle returns posts whose title contains term as a substring.
func (s *PostService) SearchByTitle(ctx context.Context, term string) ([]*models.Post, error) {
	if term == "" {
		return nil, models.NewValidationError("Search term is required")
	}
	posts, err := s.postRepo.SearchByTitle(ctx, term)
	if err != nil {
		return nil, models.NewInternalError("Failed to search posts", err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// FindUserPosts aggregates the caller's posts and engagement counters.
//
// This is a scatter-gather: one query fetches the posts with their comment
// counts, a second counts the posts, and the comment and view totals are
// reduced in memory. The two queries are not taken in one snapshot, so a
// concurrent write can skew the totals against the list; accepted for now.
// An author with zero posts gets zeros, never an error.
func (s *PostService) FindUserPosts(ctx context.Context, principal Principal) (*UserPostStats, error) {
	posts, err := s.postRepo.GetByUserID(ctx, principal.ID)
	if err != nil {
		return nil, models.NewInternalError("Unable to find posts", err)
	}

	numOfPosts, err := s.postRepo.CountByUserID(ctx, principal.ID)
	if err != nil {
		return nil, models.NewInternalError("Unable to find posts", err)
	}

	stats := &UserPostStats{
		Posts:      posts,
		NumOfPosts: int(numOfPosts),
	}
	if stats.Posts == nil {
		stats.Posts = []*models.Post{}
	}
	for _, p := range posts {
		stats.NumOfComments += p.CommentsCount
		stats.TotalViews += int(p.ViewCount)
	}
	return stats, nil
}

// IncrementView applies exactly one view to the post and returns the updated
// record. The increment is delegated to the store as an atomic add so that
// simultaneous viewers are all counted. A missing post surfaces as an
// internal error rather than a silent no-op.
func (s *PostService) IncrementView(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.IncrementView(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError("Failed to update post", err)
	}
	return post, nil
}

// Create persists a new post for the principal. The principal must resolve
// to an existing user; otherwise nothing is persisted.
func (s *PostService) Create(ctx context.Context, in CreatePostInput, principal Principal) (uint, error) {
	if in.Title == "" || in.Content == "" || in.FullContent == "" {
		return 0, models.NewValidationError("Title, content and full_content are required")
	}

	user, err := s.userRepo.GetByID(ctx, principal.ID)
	if err != nil {
		return 0, models.NewInternalError("Failed to resolve user", err)
	}
	if user == nil {
		return 0, models.NewUnauthorizedError("Unauthorized")
	}

	post := &models.Post{
		Title:       in.Title,
		Content:     in.Content,
		FullContent: in.FullContent,
		Image:       in.Image,
		UserID:      user.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return 0, models.NewInternalError("Failed to create post", err)
	}
	if post.ID == 0 {
		return 0, models.NewInternalError("Failed to create post", nil)
	}
	return post.ID, nil
}

// Update overwrites the post's title, content, full_content and image fields
// with the provided values, empty or not. Only the post's author may update
// it; the authorship comparison against the stored author id is deliberate,
// restoring the access-control invariant the endpoint always implied.
func (s *PostService) Update(ctx context.Context, postID uint, in CreatePostInput, principal Principal) (uint, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Post", postID)
		}
		return 0, models.NewInternalError("Failed to fetch post", err)
	}

	if post.UserID != principal.ID {
		return 0, models.NewUnauthorizedError("You can only update your own posts")
	}

	post.Title = in.Title
	post.Content = in.Content
	post.FullContent = in.FullContent
	post.Image = in.Image

	if err := s.postRepo.Update(ctx, post); err != nil {
		return 0, models.NewInternalError("Failed to update post", err)
	}
	return post.ID, nil
}

// Remove deletes the post. The principal must resolve to an existing user
// and be the post's author. Deleting an id that does not exist is surfaced
// as an internal error, never a silent success.
func (s *PostService) Remove(ctx context.Context, postID uint, principal Principal) error {
	user, err := s.userRepo.GetByID(ctx, principal.ID)
	if err != nil {
		return models.NewInternalError("Failed to resolve user", err)
	}
	if user == nil {
		return models.NewUnauthorizedError("Unauthorized")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.NewInternalError("Failed to delete post", err)
	}
	if post.UserID != principal.ID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return models.NewInternalError("Failed to delete post", err)
	}
	return nil
}
