package models

import "time"

// User is an admin-area account. Credentials only; the site has no public
// user registration.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;unique;not null" json:"email"`
	Name         string    `gorm:"size:100" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
