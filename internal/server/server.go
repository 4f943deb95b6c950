package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gother/internal/ai"
	"gother/internal/config"
	"gother/internal/handler"
	adminHandler "gother/internal/handler/admin"
	authHandler "gother/internal/handler/auth"
	shopHandler "gother/internal/handler/shop"
	streamHandler "gother/internal/handler/stream"
	"gother/internal/model/auth"
	"gother/internal/pkg/access"
	"gother/internal/pkg/cache"
	"gother/internal/pkg/mongodb"
	"gother/internal/pkg/storagefactory"
	authRepo "gother/internal/repository/auth"
	storeRepo "gother/internal/repository/store"
	"gother/internal/server/middleware"
	"gother/internal/service"
	"gother/internal/watch"
)

// Server is the HTTP API process
type Server struct {
	cfg     *config.Config
	engine  *gin.Engine
	mongo   *mongodb.Client
	redis   *cache.RedisCache
	watcher *watch.Watcher
	topics  map[string]watch.Querier
}

// New wires the full service graph. MongoDB is mandatory; Redis, AI and
// media storage degrade to disabled when unconfigured.
func New(cfg *config.Config) (*Server, error) {
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	mongoClient, err := mongodb.New(&cfg.Mongo)
	if err != nil {
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	if err := mongodb.EnsureIndexes(mongoClient.Database()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	var redisCache *cache.RedisCache
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisCache(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without it")
		} else {
			redisCache = rc
			log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
		}
	}

	var aiClient *ai.Client
	if cfg.AI.APIKey != "" {
		client, err := ai.NewClient(context.Background(), &cfg.AI)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize AI client, consultant disabled")
		} else {
			aiClient = client
			log.Info().Str("provider", cfg.AI.Provider).Str("model", cfg.AI.Model).Msg("gift consultant ready")
		}
	}

	var mediaService *service.MediaService
	if cfg.Storage.Type != "" {
		st, err := storagefactory.NewStorage(&cfg.Storage)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize media storage, uploads disabled")
		} else {
			mediaService = service.NewMediaService(st)
			log.Info().Str("type", st.GetStorageType()).Msg("media storage ready")
		}
	}

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		mongo:  mongoClient,
		redis:  redisCache,
	}

	srv.setupRoutes(aiClient, mediaService)

	return srv, nil
}

func (s *Server) setupRoutes(aiClient *ai.Client, mediaService *service.MediaService) {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS())

	healthHandler := handler.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := s.mongo.Database()
	userRepo := authRepo.NewUserRepo(db)
	refreshTokenRepo := authRepo.NewRefreshTokenRepo(db)
	productRepo := storeRepo.NewProductRepo(db)
	categoryRepo := storeRepo.NewCategoryRepo(db)
	orderRepo := storeRepo.NewOrderRepo(db)
	bannerRepo := storeRepo.NewBannerRepo(db)
	settingsRepo := storeRepo.NewSettingsRepo(db)

	resolver := access.NewResolver(s.cfg.Store.MasterSerialIDs)

	registrySvc := service.NewRegistryService(userRepo, refreshTokenRepo, &s.cfg.Store)
	authSvc := service.NewAuthService(userRepo, refreshTokenRepo, registrySvc, &s.cfg.Auth, &s.cfg.Store)
	userSvc := service.NewUserService(userRepo, refreshTokenRepo, &s.cfg.Store)
	catalogSvc := service.NewCatalogService(productRepo, categoryRepo, bannerRepo, settingsRepo, s.redis)
	orderSvc := service.NewOrderService(orderRepo, productRepo)
	statsSvc := service.NewStatsService(userRepo, productRepo, orderRepo)

	var consultantSvc *service.ConsultantService
	if aiClient != nil {
		consultantSvc = service.NewConsultantService(aiClient, catalogSvc)
	}

	hub := watch.NewHub()
	s.topics = map[string]watch.Querier{
		watch.TopicProducts: func(ctx context.Context) (interface{}, error) {
			return catalogSvc.ListProducts(ctx, "")
		},
		watch.TopicCategories: func(ctx context.Context) (interface{}, error) {
			return catalogSvc.ListCategories(ctx)
		},
		watch.TopicBanners: func(ctx context.Context) (interface{}, error) {
			return catalogSvc.ListBanners(ctx)
		},
		watch.TopicSettings: func(ctx context.Context) (interface{}, error) {
			return catalogSvc.GetSettings(ctx)
		},
		watch.TopicOrders: func(ctx context.Context) (interface{}, error) {
			return orderSvc.ListAll(ctx, "")
		},
		watch.TopicUsers: func(ctx context.Context) (interface{}, error) {
			users, _, err := userSvc.List(ctx, 1, 100)
			return users, err
		},
	}
	s.watcher = watch.NewWatcher(db, hub)

	authHdl := authHandler.NewHandler(authSvc, userSvc, resolver)
	shopHdl := shopHandler.NewHandler(catalogSvc, orderSvc, consultantSvc)
	adminHdl := adminHandler.NewHandler(userSvc, registrySvc, catalogSvc, orderSvc, mediaService, statsSvc, resolver)
	streamHdl := streamHandler.NewHandler(hub, s.topics, resolver)

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/auth/register", authHdl.Register)
		v1.POST("/auth/login", authHdl.Login)
		v1.POST("/auth/refresh", authHdl.Refresh)

		authed := v1.Group("", middleware.Auth(authSvc))
		{
			authed.POST("/auth/logout", authHdl.Logout)
			authed.GET("/auth/me", authHdl.GetMe)
			authed.PATCH("/auth/me", authHdl.UpdateProfile)
		}

		// public storefront
		v1.GET("/shop/products", shopHdl.ListProducts)
		v1.GET("/shop/products/:id", shopHdl.GetProduct)
		v1.GET("/shop/categories", shopHdl.ListCategories)
		v1.GET("/shop/banners", shopHdl.ListBanners)
		v1.GET("/shop/settings", shopHdl.GetSettings)

		shop := v1.Group("/shop", middleware.Auth(authSvc))
		{
			shop.POST("/orders", shopHdl.PlaceOrder)
			shop.GET("/orders", shopHdl.ListMyOrders)
			shop.POST("/consult", shopHdl.Consult)
		}

		// live snapshots; staff topics check the session themselves
		v1.GET("/stream/:topic", middleware.OptionalAuth(authSvc), streamHdl.Stream)

		admin := v1.Group("/admin", middleware.Auth(authSvc), middleware.RequireStaff(resolver))
		{
			admin.GET("/dashboard", middleware.RequirePermission(resolver, auth.PermDashboard), adminHdl.Dashboard)

			orders := admin.Group("", middleware.RequirePermission(resolver, auth.PermOrders))
			{
				orders.GET("/orders", adminHdl.ListOrders)
				orders.PUT("/orders/:id/status", adminHdl.SetOrderStatus)
				orders.DELETE("/orders/:id", adminHdl.DeleteOrder)
			}

			users := admin.Group("", middleware.RequirePermission(resolver, auth.PermUsers))
			{
				users.GET("/users", adminHdl.ListUsers)
				users.PUT("/users/:id/status", adminHdl.SetUserStatus)
				users.DELETE("/users/:id", adminHdl.DeleteUser)
			}

			linker := admin.Group("", middleware.RequirePermission(resolver, auth.PermLinker))
			{
				linker.PUT("/linker/:id/credential", adminHdl.ReLinkCredential)
				linker.PUT("/linker/:id/serial", adminHdl.ReassignSerial)
			}

			admin.GET("/products", middleware.RequirePermission(resolver, auth.PermProducts), shopHdl.ListProducts)
			admin.POST("/products", middleware.RequirePermission(resolver, auth.PermAddProduct), adminHdl.CreateProduct)
			products := admin.Group("", middleware.RequirePermission(resolver, auth.PermProducts))
			{
				products.PUT("/products/:id", adminHdl.UpdateProduct)
				products.DELETE("/products/:id", adminHdl.DeleteProduct)
			}

			categories := admin.Group("", middleware.RequirePermission(resolver, auth.PermCategories))
			{
				categories.POST("/categories", adminHdl.CreateCategory)
				categories.PUT("/categories/:id", adminHdl.UpdateCategory)
				categories.DELETE("/categories/:id", adminHdl.DeleteCategory)
			}

			settings := admin.Group("", middleware.RequirePermission(resolver, auth.PermSettings))
			{
				settings.PUT("/settings", adminHdl.UpdateSettings)
				settings.POST("/banners", adminHdl.CreateBanner)
				settings.DELETE("/banners/:id", adminHdl.DeleteBanner)
			}

			admin.POST("/media", adminHdl.UploadMedia)

			// master-only: staff management and the destructive registry ops
			master := admin.Group("", middleware.RequireMaster(resolver))
			{
				master.POST("/staff/search", adminHdl.SearchStaff)
				master.PUT("/staff/:id/permissions", adminHdl.SetPermissions)
				master.POST("/staff/clean", adminHdl.CleanAdmins)
				master.POST("/linker/sync", adminHdl.SyncMaster)
				master.POST("/users/wipe", adminHdl.WipeUsers)
			}
		}
	}
}

// Run starts the watcher and the HTTP listener, then blocks until ctx
// is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go s.watcher.Run(watchCtx, s.topics)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		if err := s.mongo.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close MongoDB connection")
		}
		if s.redis != nil {
			if err := s.redis.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close Redis connection")
			}
		}

		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine exposes the router for tests
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
