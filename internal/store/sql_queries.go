package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password, created_at, updated_at;`

	findUserByEmail = `SELECT id, username, email, password, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password, created_at, updated_at
    FROM users
    WHERE id = $1;`

	findAllUsers = `SELECT id, username, email, password, created_at, updated_at
    FROM users
    ORDER BY id;`

	updateUserProfile = `UPDATE users
    SET username = $1, email = $2, updated_at = NOW()
    WHERE id = $3
    RETURNING id, username, email, password, created_at, updated_at;`

	updateUserPassword = `UPDATE users
    SET password = $1, updated_at = NOW()
    WHERE id = $2;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createAdmin = `INSERT INTO admins (username, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password, created_at, updated_at;`

	findAdminByEmail = `SELECT id, username, email, password, created_at, updated_at
    FROM admins
    WHERE email = $1;`

	createFeedback = `INSERT INTO feedbacks (feedback_text, details, user_id)
    VALUES ($1, $2, $3)
    RETURNING id, feedback_text, details, status, user_id, created_at, updated_at;`

	findFeedbackByID = `SELECT id, feedback_text, details, status, user_id, created_at, updated_at
    FROM feedbacks
    WHERE id = $1;`

	findFeedbacksByUserID = `SELECT id, feedback_text, details, status, user_id, created_at, updated_at
    FROM feedbacks
    WHERE user_id = $1
    ORDER BY id;`

	findAllFeedbacks = `SELECT id, feedback_text, details, status, user_id, created_at, updated_at
    FROM feedbacks
    ORDER BY id;`

	updateFeedbackStatus = `UPDATE feedbacks
    SET status = $1, updated_at = NOW()
    WHERE id = $2
    RETURNING id, feedback_text, details, status, user_id, created_at, updated_at;`

	deleteFeedback = `DELETE FROM feedbacks WHERE id = $1;`
)

// buildDuplicateCheckQuery builds the "OR over exact-match conditions" query
// used by registration and profile-edit duplicate checks:
//
//	SELECT id FROM <table> WHERE (username = ? OR email = ?) [AND id <> ?]
//
// excludeID, when non-nil, removes the caller's own record from the match so
// that editing a profile does not collide with itself.
func buildDuplicateCheckQuery(table, username, email string, excludeID *int64) (string, []any, error) {
	builder := sq.Select("id").
		From(table).
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		PlaceholderFormat(sq.Dollar)

	if excludeID != nil {
		builder = builder.Where(sq.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
