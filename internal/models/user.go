// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered author in the Inkwell application.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Name      string         `gorm:"not null" json:"name"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// PublicUser is the author projection embedded in post payloads: id and
// display name only, never email or credentials.
type PublicUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Public returns the projection of u safe to embed in post responses.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name}
}
