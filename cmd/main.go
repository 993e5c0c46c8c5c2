package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	grpcdelivery "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/storage"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	gcs "cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Invalid LOG_LEVEL '%s', keeping info: %v", cfg.LogLevel, err)
	}
	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Catalog Service...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, database); err != nil {
			logger.Fatalf("FATAL: Failed to migrate database: %v", err)
		}
		logger.Info("Database schema is up to date.")
	}

	// --- Dependency Injection ---
	categoryRepo := repository.NewPostgresCategoryRepository(database, logger)
	productRepo := repository.NewPostgresProductRepository(database, logger)
	cartRepo := repository.NewPostgresCartRepository(database, logger)
	logger.Info("Repositories initialized.")

	fileStore, closeStore := newFileStore(ctx, cfg, logger)
	defer closeStore()

	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo, logger)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, productRepo, cartRepo, cartUseCase, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, cartRepo, cartUseCase, fileStore, cfg.ImageDir, logger)
	logger.Info("Use cases initialized.")

	defaults := delivery.PagingDefaults{
		PageSize:         cfg.PageSize,
		SortCategoriesBy: cfg.SortCategoriesBy,
		SortProductsBy:   cfg.SortProductsBy,
		SortDir:          cfg.SortDir,
	}
	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, defaults, logger)
	productHandler := delivery.NewProductHandler(productUseCase, defaults, logger)
	catalogGrpcHandler := grpcdelivery.NewCatalogHandler(productUseCase, categoryUseCase, defaults, logger)
	logger.Info("Handlers initialized.")

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set, admin routes are unauthenticated")
	}
	router := delivery.NewRouter(categoryHandler, productHandler, cfg.JWTSecret, logger)

	// --- gRPC Server ---
	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to listen on gRPC port %s: %v", cfg.GrpcPort, err)
	}
	grpcServer := grpc.NewServer()
	grpcdelivery.RegisterCatalogServiceServer(grpcServer, catalogGrpcHandler)
	reflection.Register(grpcServer)

	go func() {
		logger.Infof("gRPC server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorf("gRPC server stopped: %v", err)
			stop()
		}
	}()

	// --- HTTP Server ---
	httpServer := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("HTTP server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, stopping servers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}
	grpcServer.GracefulStop()
	logger.Info("Catalog Service stopped.")
}

func newFileStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (domain.FileStore, func()) {
	if !strings.EqualFold(cfg.ImageStore, "gcs") {
		logger.Infof("Storing product images on disk under %s", cfg.ImageDir)
		return storage.NewLocalFileStore(logger), func() {}
	}

	client, err := gcs.NewClient(ctx)
	if err != nil {
		logger.Fatalf("FATAL: Failed to create GCS client: %v", err)
	}
	logger.Infof("Storing product images in GCS bucket %s", cfg.GCSBucket)
	return storage.NewGCSFileStore(client, cfg.GCSBucket, logger), func() {
		if err := client.Close(); err != nil {
			logger.Warnf("Failed to close GCS client: %v", err)
		}
	}
}
