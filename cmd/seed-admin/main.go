// Seeding script for the first staff account
// cmd/seed-admin/main.go
package main

import (
	"admission-api/config"
	"admission-api/models"
	"admission-api/utils"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if !utils.ValidateEmail(email) {
		log.Fatalf("Invalid admin email: %s", email)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		log.Fatalf("Weak admin password: %s", msg)
	}

	// Initialize database
	config.InitDB()

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	var user models.User
	err = config.DB.Where("email = ? AND delete_at IS NULL", email).First(&user).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"password": hashed,
			"role":     models.RoleAdmin,
		}
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			log.Fatalf("Failed to update admin %s: %v", email, err)
		}
		log.Printf("Updated existing account %s to admin\n", email)
	case err == gorm.ErrRecordNotFound:
		now := time.Now()
		user = models.User{
			Email:    email,
			Password: hashed,
			Role:     models.RoleAdmin,
			CreateAt: &now,
			UpdateAt: &now,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create admin %s: %v", email, err)
		}
		log.Printf("Created admin account %s\n", email)
	default:
		log.Fatal("Failed to look up admin account:", err)
	}

	log.Println("Admin seeding completed!")
}
