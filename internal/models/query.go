package models

import "time"

// Query is a contact-form submission. Append-mostly: created by the public
// site, deleted from the admin area, never edited.
type Query struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Query     string    `gorm:"type:text" json:"query"`
	CreatedAt time.Time `json:"created_at"`
}
