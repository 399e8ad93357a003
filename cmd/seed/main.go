package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"itemstore/internal/auth"
	"itemstore/internal/config"
	"itemstore/internal/db"
	"itemstore/internal/model"
	"itemstore/internal/repository"
)

var seedCategories = []string{"books", "electronics", "clothing", "home"}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Category{}, &model.Item{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	categories := repository.NewCategoryRepository(gormDB)

	adminEmail := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	adminPassword := getEnv("SEED_ADMIN_PASSWORD", "changeme123")

	if _, err := users.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, err := auth.HashPassword(adminPassword)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &model.User{
			Name:     "Administrator",
			Email:    adminEmail,
			Password: hashed,
			IsActive: true,
			Role:     model.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", adminEmail)
	} else {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	created := 0
	for _, name := range seedCategories {
		if err := categories.Create(ctx, &model.Category{Name: name}); err != nil {
			log.Printf("Skipping category %q: %v", name, err)
			continue
		}
		created++
	}
	log.Printf("Seed complete: %d categories created", created)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
