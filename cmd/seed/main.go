package main

import (
	"context"
	"log"
	"os"
	"time"

	"dental-assistant-be/internal/entity"
	"dental-assistant-be/internal/repository/implementation"
	"dental-assistant-be/internal/repository/specification"
	"dental-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development staff user and prints a signed bearer token so the
// API can be exercised locally. Registration itself lives outside this
// service.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	secret := os.Getenv("JWT_SECRET")
	if dsn == "" || secret == "" {
		color.Red("Error: DB_CONNECTION_STRING and JWT_SECRET must be set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	repo := implementation.NewUserRepository(db)

	email := getEnv("SEED_USER_EMAIL", "assistant@dental.local")
	password := getEnv("SEED_USER_PASSWORD", "changeme123")

	user, err := repo.FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		color.Red("Error: Failed to look up seed user: %v", err)
		os.Exit(1)
	}

	if user == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			color.Red("Error: Failed to hash password: %v", err)
			os.Exit(1)
		}

		user = &entity.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Dev Assistant",
			Role:         entity.UserRoleUser,
		}
		if err := repo.Create(ctx, user); err != nil {
			color.Red("Error: Failed to create seed user: %v", err)
			os.Exit(1)
		}
		color.Green("Seeded user %s (id=%d)", user.Email, user.Id)
	} else {
		color.Yellow("User %s already exists (id=%d), reusing", user.Email, user.Id)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.Id,
		"jti":     uuid.NewString(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		color.Red("Error: Failed to sign token: %v", err)
		os.Exit(1)
	}

	color.Cyan("Bearer token (24h):")
	color.White("%s", signed)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
