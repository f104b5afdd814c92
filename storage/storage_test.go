package storage_test

import (
	"context"
	"testing"

	"phonebook/dynamodb"
	"phonebook/pkg/config"
	"phonebook/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactRepository(t *testing.T) {
	t.Run("rejects unknown driver", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.Driver = "mongodb"

		_, _, err := storage.NewContactRepository(context.Background(), cfg)

		assert.EqualError(t, err, `unsupported DB_DRIVER "mongodb"`)
	})

	t.Run("builds dynamodb repository", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.Driver = "DynamoDB"
		cfg.DynamoDB.Region = "eu-north-1"
		cfg.DynamoDB.Endpoint = "http://localhost:8000"
		cfg.DynamoDB.AccessKey = "local"
		cfg.DynamoDB.SecretKey = "local"
		cfg.DynamoDB.ContactsTable = "persons"

		repo, closeFn, err := storage.NewContactRepository(context.Background(), cfg)

		require.NoError(t, err)
		assert.IsType(t, &dynamodb.ContactRepository{}, repo)
		assert.NoError(t, closeFn())
	})

	t.Run("reports dynamodb misconfiguration", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.DB.Driver = storage.DriverDynamoDB

		_, _, err := storage.NewContactRepository(context.Background(), cfg)

		assert.EqualError(t, err, "dynamodb: region is required")
	})
}
