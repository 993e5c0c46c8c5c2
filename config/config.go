package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL    string `envconfig:"DATABASE_URL"     required:"true"`
	HTTPPort       string `envconfig:"HTTP_PORT"        default:":8081"`
	GrpcPort       string `envconfig:"GRPC_PORT"        default:":50051"`
	LogLevel       string `envconfig:"LOG_LEVEL"        default:"info"`
	MigrateOnStart bool   `envconfig:"MIGRATE_ON_START" default:"true"`

	ImageDir   string `envconfig:"IMAGE_DIR"   default:"images/"`
	ImageStore string `envconfig:"IMAGE_STORE" default:"local"` // local or gcs
	GCSBucket  string `envconfig:"GCS_BUCKET"`

	// Admin routes are open when JWTSecret is empty.
	JWTSecret string `envconfig:"JWT_SECRET"`

	PageSize         int    `envconfig:"PAGE_SIZE"          default:"50"`
	SortCategoriesBy string `envconfig:"SORT_CATEGORIES_BY" default:"categoryId"`
	SortProductsBy   string `envconfig:"SORT_PRODUCTS_BY"   default:"productId"`
	SortDir          string `envconfig:"SORT_DIR"           default:"asc"`
}

var (
	config Config
	once   sync.Once
)

// Process reads the environment into a fresh Config and validates it.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.ImageStore) {
	case "local":
	case "gcs":
		if strings.TrimSpace(c.GCSBucket) == "" {
			return fmt.Errorf("GCS_BUCKET is required when IMAGE_STORE=gcs")
		}
	default:
		return fmt.Errorf("unknown IMAGE_STORE %q (must be local or gcs)", c.ImageStore)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	return nil
}

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Process()
		if err != nil {
			logger.Fatalf("Configuration error: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s, ImageStore=%s",
			config.HTTPPort, config.GrpcPort, config.LogLevel, config.ImageStore)
	})
	return &config
}
