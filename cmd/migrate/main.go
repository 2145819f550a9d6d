package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/impact-gym-api/internal/models"
	"github.com/noah-isme/impact-gym-api/internal/repository"
	"github.com/noah-isme/impact-gym-api/pkg/config"
	"github.com/noah-isme/impact-gym-api/pkg/database"
	"github.com/noah-isme/impact-gym-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logr.Fatal("migration failed", zap.Error(err))
	}
	logr.Info("schema up to date")

	if cfg.Seed.AdminPassword == "" {
		logr.Info("ADMIN_PASSWORD not set, skipping admin seed")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logr.Fatal("failed to hash admin password", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	admin := &models.Admin{Username: cfg.Seed.AdminUsername, PasswordHash: string(hash)}
	if err := repository.NewAdminRepository(db).Create(ctx, admin); err != nil {
		logr.Fatal("failed to seed admin", zap.Error(err))
	}
	logr.Info("admin seeded", zap.String("username", admin.Username))
}
