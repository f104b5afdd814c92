package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"phonebook/contact"
	"phonebook/dynamodb"
	"phonebook/pkg/config"
	"phonebook/postgres"
)

const (
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

// NewContactRepository opens the store selected by cfg.DB.Driver. The
// returned func releases the underlying connection.
func NewContactRepository(ctx context.Context, cfg *config.Config) (contact.Repository, func() error, error) {
	switch driver := strings.ToLower(strings.TrimSpace(cfg.DB.Driver)); driver {
	case "", DriverPostgres:
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     strconv.Itoa(cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return postgres.NewContactRepository(db), sqlDB.Close, nil

	case DriverDynamoDB:
		client, err := dynamodb.NewClient(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, nil, err
		}
		return dynamodb.NewContactRepository(client, cfg.DynamoDB.ContactsTable), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
