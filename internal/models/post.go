package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a published article in the Inkwell application.
//
// ViewCount is monotonically non-decreasing and is only ever mutated through
// an atomic store-side increment, never read-modify-write in service code.
type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Content     string `gorm:"type:text;not null" json:"content"`
	FullContent string `gorm:"type:text;not null" json:"full_content"`
	Image       string `json:"image,omitempty"`
	ViewCount   uint   `gorm:"not null;default:0" json:"view_count"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Author      *User  `gorm:"foreignKey:UserID" json:"author,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->;-:migration" json:"comments_count"`
	Comments      []Comment      `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
