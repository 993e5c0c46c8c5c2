package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/catalog?sslmode=disable")

	cfg, err := Process()

	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTPPort)
	assert.Equal(t, ":50051", cfg.GrpcPort)
	assert.Equal(t, "images/", cfg.ImageDir)
	assert.Equal(t, "local", cfg.ImageStore)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "categoryId", cfg.SortCategoriesBy)
	assert.Equal(t, "productId", cfg.SortProductsBy)
	assert.Equal(t, "asc", cfg.SortDir)
	assert.True(t, cfg.MigrateOnStart)
}

func TestProcess_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	_, err := Process()

	assert.Error(t, err)
}

func TestProcess_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "gcs without bucket", env: map[string]string{"IMAGE_STORE": "gcs"}},
		{name: "unknown store", env: map[string]string{"IMAGE_STORE": "s3"}},
		{name: "zero page size", env: map[string]string{"PAGE_SIZE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/catalog")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Process()
			assert.Error(t, err)
		})
	}

	t.Run("gcs with bucket", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/catalog")
		t.Setenv("IMAGE_STORE", "gcs")
		t.Setenv("GCS_BUCKET", "catalog-images")
		cfg, err := Process()
		require.NoError(t, err)
		assert.Equal(t, "catalog-images", cfg.GCSBucket)
	})
}
