// Package db opens the GORM database connection used by all repositories.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "receitas_backend/internal/feature/auth/adapters"
	authentity "receitas_backend/internal/feature/auth/domain/entity"
	recipeentity "receitas_backend/internal/feature/recipes/domain/entity"
)

// OpenDB connects to PostgreSQL with a retry window, then runs the schema
// migration. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	ssl := os.Getenv("DB_SSLMODE")
	if ssl == "" {
		ssl = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, ssl)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// The unique indexes created here (users.email, receitas.titulo) are what
	// make duplicate sign-ups and duplicate titles a conflict instead of a race.
	if err := db.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&recipeentity.Recipe{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
