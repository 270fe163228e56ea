package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SithHades/fridgemaster/internal/config"
	"github.com/SithHades/fridgemaster/internal/db"
	"github.com/SithHades/fridgemaster/internal/model"
	"github.com/SithHades/fridgemaster/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.DictionaryEntry{},
		&model.GeneratedRecipe{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()

	email := getEnv("SEED_USER_EMAIL", "admin@fridge.com")
	password := getEnv("SEED_USER_PASSWORD", "admin123")

	userRepo := repository.NewUserRepository(gormDB)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		log.Printf("Seed user %s already exists, skipping user creation", email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user = &model.User{
			Email:        email,
			PasswordHash: string(hash),
			Credits:      model.DefaultCredits,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create seed user: %v", err)
		}
		seedProducts(ctx, gormDB, user)
		log.Printf("Created seed user %s with %d credits", email, user.Credits)
	default:
		log.Fatalf("lookup seed user: %v", err)
	}

	seedDictionary(ctx, repository.NewDictionaryRepository(gormDB))

	log.Println("Seed complete")
}

// seedProducts gives the fresh user one product about to expire and one already
// expired, so the expiring list has content out of the box.
func seedProducts(ctx context.Context, gormDB *gorm.DB, user *model.User) {
	productRepo := repository.NewProductRepository(gormDB)
	now := time.Now()

	products := []model.Product{
		{
			UserID:       user.ID,
			Name:         "Milk",
			Quantity:     "1L",
			ExpiryDate:   now.AddDate(0, 0, 5),
			PurchaseDate: now,
		},
		{
			UserID:       user.ID,
			Name:         "Eggs",
			Quantity:     "12 pack",
			ExpiryDate:   now.AddDate(0, 0, -1),
			PurchaseDate: now,
		},
	}
	for i := range products {
		if err := productRepo.Create(ctx, &products[i]); err != nil {
			log.Fatalf("create seed product %s: %v", products[i].Name, err)
		}
	}
}

func seedDictionary(ctx context.Context, dictRepo repository.DictionaryRepository) {
	entries := []model.DictionaryEntry{
		{Name: "Milk", DefaultQty: "1L"},
		{Name: "Eggs", DefaultQty: "12 pack"},
		{Name: "Butter", DefaultQty: "250g"},
	}
	for i := range entries {
		if err := dictRepo.Upsert(ctx, &entries[i]); err != nil {
			log.Fatalf("upsert dictionary entry %s: %v", entries[i].Name, err)
		}
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
