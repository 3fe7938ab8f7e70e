package store

import (
	"context"

	"github.com/kmolchanov/feedback-service/internal/config"
	"github.com/kmolchanov/feedback-service/internal/logger"
)

// Storages bundles every repository behind a single constructor so that the
// composition root wires persistence with one call.
type Storages struct {
	UserRepository     UserRepository
	AdminRepository    AdminRepository
	FeedbackRepository FeedbackRepository

	// DB is exposed for lifecycle management (migrations, Close).
	DB *DB
}

// NewStorages connects to Postgres and constructs all repositories over the
// shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		AdminRepository:    NewAdminRepository(db, logger),
		FeedbackRepository: NewFeedbackRepository(db, logger),
		DB:                 db,
	}, nil
}
