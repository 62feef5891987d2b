// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// SeedPassword is the plaintext password every seeded account gets, so demo
// logins are possible without digging through the seeder output.
const SeedPassword = "Password123"

// Run populates the database with demo users, posts and comments.
func Run(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return err
	}

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return err
	}

	if err := createComments(db, posts); err != nil {
		return err
	}

	log.Printf("Seeding complete: %d users, %d posts", len(users), len(posts))
	return nil
}

func clearData(db *gorm.DB) error {
	// Children first so foreign keys never block the wipe.
	if err := db.Exec("DELETE FROM comments").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM posts").Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM users").Error
}

func createUsers(db *gorm.DB, count int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user := &models.User{
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Name:     gofakeit.Name(),
			Password: string(hashed),
		}
		if err := db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []*models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("cannot seed posts without users")
	}

	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		post := &models.Post{
			Title:       gofakeit.Sentence(5),
			Content:     gofakeit.Paragraph(1, 2, 8, " "),
			FullContent: gofakeit.Paragraph(3, 5, 12, "\n\n"),
			Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/400", gofakeit.UUID()),
			ViewCount:   uint(rand.Intn(500)),
			UserID:      author.ID,
		}
		// realistic created_at spread over the last 90 days
		daysBack := rand.Intn(90)
		hoursBack := rand.Intn(24)
		post.CreatedAt = time.Now().
			Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

		if err := db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("failed to create post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createComments(db *gorm.DB, posts []*models.Post) error {
	for _, post := range posts {
		numComments := rand.Intn(6)
		for j := 0; j < numComments; j++ {
			comment := &models.Comment{
				Comment:       gofakeit.Sentence(10),
				CommenterName: gofakeit.Name(),
				PostID:        post.ID,
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("failed to create comment on post %d: %w", post.ID, err)
			}
		}
	}
	return nil
}
