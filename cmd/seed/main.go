package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/sidapp/mongo-user-service/config"
	"github.com/sidapp/mongo-user-service/internal/domain/entity"
	"github.com/sidapp/mongo-user-service/internal/domain/repository"
	mongoinfra "github.com/sidapp/mongo-user-service/internal/infrastructure/mongodb"
)

// Seeds a handful of demo users. Re-running skips the ones that already
// exist (unique email index).
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	db, err := mongoinfra.NewDatabase(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	repo := mongoinfra.NewUserRepository(db, cfg.MongoUsersColl)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	seeds := []entity.User{
		{Name: "Admin User", Email: "admin@example.com", Phone: "+1 (555) 010-0001", Role: "ADMIN", Status: "ACTIVE", Address: "1 Admin Way"},
		{Name: "John Doe", Email: "john@example.com", Role: "USER", Status: "ACTIVE"},
		{Name: "Guest Account", Email: "guest@example.com", Role: "GUEST", Status: "INACTIVE"},
	}

	for i := range seeds {
		u := seeds[i]
		exists, err := repo.ExistsByEmail(ctx, u.Email)
		if err != nil {
			log.Fatalf("failed to check existing user: %v", err)
		}
		if exists {
			fmt.Printf("skipped existing user: email=%s\n", u.Email)
			continue
		}
		created, err := repo.Save(ctx, &u)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				fmt.Printf("skipped duplicate user: email=%s\n", u.Email)
				continue
			}
			log.Fatalf("failed to seed user: %v", err)
		}
		fmt.Printf("seeded user: id=%s email=%s role=%s\n", created.ID, created.Email, created.Role)
	}
}
