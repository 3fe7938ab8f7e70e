package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/models"
)

// adminRepository is the PostgreSQL-backed implementation of
// [AdminRepository] over the "admins" table. Admins form a separate identity
// namespace: uniqueness of username and email is enforced per table, not
// across tables.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new admin record and returns the fully populated
// [models.Admin] with server-assigned fields.
//
// PostgreSQL unique_violation (23505) maps to [ErrAdminAlreadyExists]; this
// backstops the application-level duplicate check under concurrent identical
// registrations.
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdmin, admin.Username, admin.Email, admin.Password)

	var created models.Admin
	if err := row.Scan(&created.ID, &created.Username, &created.Email, &created.Password, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error: admin insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Admin{}, ErrAdminAlreadyExists
		default:
			return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindAdminByEmail retrieves the admin record whose email matches exactly.
// Returns [ErrAdminNotFound] when no record matches.
func (r *adminRepository) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var found models.Admin
	row := r.db.QueryRowContext(ctx, findAdminByEmail, email)

	if err := row.Scan(&found.ID, &found.Username, &found.Email, &found.Password, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}

		log.Err(err).
			Str("func", "*adminRepository.FindAdminByEmail").
			Bool("retryable", r.db.IsRetryable(err)).
			Msg("error: admin lookup failed")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ExistsAdminByUsernameOrEmail reports whether any admin record matches the
// given username OR email.
func (r *adminRepository) ExistsAdminByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDuplicateCheckQuery(models.Admin{}.TableName(), username, email, nil)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.ExistsAdminByUsernameOrEmail").Msg("error: building duplicate check query")
		return false, err
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		log.Err(err).Str("func", "*adminRepository.ExistsAdminByUsernameOrEmail").Msg("error: duplicate check failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return true, nil
}
