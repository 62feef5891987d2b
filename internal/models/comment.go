package models

import "time"

// Comment is an anonymous reader comment attached to a post. Comments are
// never edited after creation; they disappear only when their post does.
type Comment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Comment       string    `gorm:"type:text;not null" json:"comment"`
	CommenterName string    `gorm:"not null" json:"commenter_name"`
	PostID        uint      `gorm:"not null;index" json:"post_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
