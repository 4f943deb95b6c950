// Seeds the master admin account: the configured admin email pinned to
// the master serial ID with both credentials set. Safe to run twice.
//
//	GOTHER_STORE_ADMIN_EMAIL=admin@1gother.com INIT_ADMIN_PASSWORD=... go run ./scripts
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gother/internal/config"
	"gother/internal/model/auth"
	"gother/internal/pkg/id"
	"gother/internal/pkg/logger"
	"gother/internal/pkg/mongodb"
	"gother/internal/pkg/password"
	authrepo "gother/internal/repository/auth"
)

func main() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.gother")

	viper.SetEnvPrefix("GOTHER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
		os.Exit(1)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to unmarshal config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	client, err := mongodb.New(&cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongo")
	}
	defer func() {
		_ = client.Close(context.Background())
	}()

	ctx := context.Background()
	userRepo := authrepo.NewUserRepo(client.Database())

	email := strings.ToLower(cfg.Store.AdminEmail)
	passwordPlain := os.Getenv("INIT_ADMIN_PASSWORD")
	if passwordPlain == "" {
		passwordPlain = "admin123"
	}
	masterSerial := cfg.Store.MasterSerialID()

	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Info().Str("email", email).Msg("master admin not found, will create")
			if err := createAdmin(ctx, userRepo, email, passwordPlain, masterSerial); err != nil {
				log.Fatal().Err(err).Msg("create master admin failed")
			}
		} else {
			log.Fatal().Err(err).Msg("failed to query user")
		}
	} else {
		// exists, pin role, status and serial
		log.Info().Str("email", email).Msg("master admin exists, will repin")
		update := bson.M{
			"$set": bson.M{
				"role":      auth.RoleAdmin,
				"status":    auth.UserStatusActive,
				"serial_id": masterSerial,
			},
		}
		if err := userRepo.Update(ctx, user.ID, update); err != nil {
			log.Fatal().Err(err).Msg("update master admin failed")
		}
	}

	fmt.Printf("Master admin initialized: email=%s serial_id=%d role=admin status=active\n",
		email, masterSerial)
}

func createAdmin(ctx context.Context, repo *authrepo.UserRepo, email, pwd string, serial int64) error {
	hashed, err := password.Hash(pwd)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &auth.User{
		ID:             id.New(),
		Email:          email,
		Password:       hashed,
		LinkedPassword: hashed,
		SerialID:       serial,
		Role:           auth.RoleAdmin,
		Status:         auth.UserStatusActive,
		DisplayName:    "Admin",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return repo.Create(ctx, user)
}
