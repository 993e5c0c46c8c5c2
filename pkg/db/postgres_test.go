package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UNIQUE (cart_id, product_id)`)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), database))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Failure(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS categories`).WillReturnError(errors.New("permission denied"))

	err = Migrate(context.Background(), database)
	assert.ErrorContains(t, err, "failed to apply schema")
}

func TestConnect_EmptyURL(t *testing.T) {
	_, err := Connect("")
	assert.Error(t, err)
}
