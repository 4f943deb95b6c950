// Package tests integration tests.
//
// Run against a live MongoDB:
//
//	MONGO_URI=mongodb://localhost:27017 go test ./tests -v
//
// Notes:
//   - MONGO_URI: MongoDB connection string (default: mongodb://localhost:27017)
//   - KEEP_TEST_DATA: set to "true" to keep the test database after the run
//     (default: false, collections are dropped)
//   - AI and Redis are not exercised here; services run in their degraded modes
package tests

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gother/internal/config"
	authRepo "gother/internal/repository/auth"
	storeRepo "gother/internal/repository/store"
	"gother/internal/service"
)

// package-level test environment, initialized in TestMain
var (
	testCtx         context.Context
	testDB          *mongo.Database
	testServices    *TestServices
	testCleanup     func()
	testMongoClient *mongo.Client
	testStoreCfg    *config.StoreConfig
)

// TestServices bundles the service graph the tests drive
type TestServices struct {
	UserRepo    *authRepo.UserRepo
	RefreshRepo *authRepo.RefreshTokenRepo
	Registry    *service.RegistryService
	Auth        *service.AuthService
	User        *service.UserService
	Catalog     *service.CatalogService
	Order       *service.OrderService
}

func TestMain(m *testing.M) {
	testCtx = context.Background()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	var err error
	testMongoClient, err = mongo.Connect(testCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
	}

	testDB = testMongoClient.Database("gother_test")

	testStoreCfg = &config.StoreConfig{
		AdminEmail:      "admin@1gother.com",
		MasterSerialIDs: []int64{1, 111},
		SerialBase:      1000,
	}

	testServices = setupTestServices(testDB, testStoreCfg)

	keepTestData := os.Getenv("KEEP_TEST_DATA") == "true"
	testCleanup = func() {
		if !keepTestData {
			for _, name := range []string{
				"users", "refresh_tokens", "counters",
				"products", "categories", "orders", "banners", "settings",
			} {
				_ = testDB.Collection(name).Drop(testCtx)
			}
		} else {
			fmt.Fprintf(os.Stderr, "keeping test data: database=%s\n", testDB.Name())
		}
		_ = testMongoClient.Disconnect(testCtx)
	}

	code := m.Run()

	testCleanup()
	os.Exit(code)
}

// setupTestServices wires the service graph the way the server does,
// minus Redis, storage and AI.
func setupTestServices(db *mongo.Database, storeCfg *config.StoreConfig) *TestServices {
	userRepo := authRepo.NewUserRepo(db)
	refreshRepo := authRepo.NewRefreshTokenRepo(db)
	productRepo := storeRepo.NewProductRepo(db)
	categoryRepo := storeRepo.NewCategoryRepo(db)
	bannerRepo := storeRepo.NewBannerRepo(db)
	settingsRepo := storeRepo.NewSettingsRepo(db)
	orderRepo := storeRepo.NewOrderRepo(db)

	authCfg := &config.AuthConfig{
		JWTSecret:          "integration-test-secret",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
	}

	registry := service.NewRegistryService(userRepo, refreshRepo, storeCfg)

	return &TestServices{
		UserRepo:    userRepo,
		RefreshRepo: refreshRepo,
		Registry:    registry,
		Auth:        service.NewAuthService(userRepo, refreshRepo, registry, authCfg, storeCfg),
		User:        service.NewUserService(userRepo, refreshRepo, storeCfg),
		Catalog:     service.NewCatalogService(productRepo, categoryRepo, bannerRepo, settingsRepo, nil),
		Order:       service.NewOrderService(orderRepo, productRepo),
	}
}
