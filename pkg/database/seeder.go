package database

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kunal-1408/deployed-portfolio-sub001/config"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/utils"
)

// SeedAdmin creates the bootstrap admin account from config when no account
// with that email exists yet.
func SeedAdmin() {
	email := config.AppConfig.Admin.Email
	if email == "" || config.AppConfig.Admin.Password == "" {
		log.Println("Admin seed skipped: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return
	}

	var existing models.User
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check admin user: %v", err)
		return
	}

	hashedPassword, err := utils.HashPassword(config.AppConfig.Admin.Password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}
	admin := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Admin",
		PasswordHash: hashedPassword,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	} else {
		log.Println("Admin user seeded successfully.")
	}
}
