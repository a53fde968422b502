package models

import "time"

// Settings is the site-wide SEO/branding singleton. At most one row exists;
// it is read-modify-written as a whole and never addressed by id.
type Settings struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Keywords    string    `gorm:"type:text" json:"keywords"`
	Logo        string    `gorm:"size:512" json:"logo"`
	FooterLogo  string    `gorm:"size:512" json:"footer_logo"`
	Favicon     string    `gorm:"size:512" json:"favicon"`
	UpdatedAt   time.Time `json:"updated_at"`
}
