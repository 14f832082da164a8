package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
)

// oneLine collapses a multi-line SQL literal for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

const userColumns = "id, first_name, last_name, initials, email, status, created_at, updated_at"

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns all users with their addresses attached.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("query executed", "query", oneLine(query), "rows", len(users), "error", err)

	if err != nil {
		return nil, err
	}

	const addrQuery = `
		SELECT id, user_id, address_type, valid_from, post_code, city, country_code,
		       street, building_number, created_at, updated_at
		FROM users_addresses
		ORDER BY user_id, id
	`

	addresses := []models.UserAddressDB{}
	if err := r.db.SelectContext(ctx, &addresses, addrQuery); err != nil {
		logger.Log.Infow("query executed", "query", oneLine(addrQuery), "error", err)
		return nil, err
	}

	byUser := make(map[int64][]models.UserAddressDB, len(users))
	for _, a := range addresses {
		byUser[a.UserID] = append(byUser[a.UserID], a)
	}
	for i := range users {
		users[i].Addresses = byUser[users[i].ID]
		if users[i].Addresses == nil {
			users[i].Addresses = []models.UserAddressDB{}
		}
	}

	return users, nil
}

// GetByID returns the user with the given id and its addresses,
// or nil if no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	const addrQuery = `
		SELECT id, user_id, address_type, valid_from, post_code, city, country_code,
		       street, building_number, created_at, updated_at
		FROM users_addresses
		WHERE user_id = $1
		ORDER BY id
	`

	user.Addresses = []models.UserAddressDB{}
	if err := r.db.SelectContext(ctx, &user.Addresses, addrQuery, id); err != nil {
		logger.Log.Infow("query executed", "query", oneLine(addrQuery), "args", []any{id}, "error", err)
		return nil, err
	}

	return &user, nil
}

// EmailTaken reports whether another user already holds the given email.
// When excludeID is non-nil that user is ignored, so updates do not
// collide with the record being updated.
func (r *UserReadRepository) EmailTaken(ctx context.Context, email string, excludeID *int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM users
			WHERE email = $1
			  AND ($2::BIGINT IS NULL OR id <> $2)
		)
	`

	var taken bool
	err := r.db.GetContext(ctx, &taken, query, email, excludeID)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", []any{email, excludeID}, "result", taken, "error", err)

	return taken, err
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user row with server-assigned id and timestamps.
func (r *UserWriteRepository) Save(ctx context.Context, firstName, lastName, initials, email, status string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (first_name, last_name, initials, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	args := []any{firstName, lastName, initials, email, status}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	user.Addresses = []models.UserAddressDB{}
	return &user, nil
}

// Update overwrites the mutable fields of a user and refreshes updated_at.
// The id and created_at columns are never touched. Returns nil if the id
// does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, firstName, lastName, initials, email, status string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET first_name = $2,
		    last_name = $3,
		    initials = $4,
		    email = $5,
		    status = $6,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	args := []any{id, firstName, lastName, initials, email, status}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Delete removes a user and all of its addresses: child rows first, then the
// parent, both against the same executor so the request transaction keeps
// the pair atomic. Reports whether the user existed.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const addrQuery = `DELETE FROM users_addresses WHERE user_id = $1`
	const userQuery = `DELETE FROM users WHERE id = $1`

	executor := r.executor(ctx)

	if _, err := executor.ExecContext(ctx, addrQuery, id); err != nil {
		logger.Log.Infow("query executed", "query", addrQuery, "args", []any{id}, "error", err)
		return false, err
	}

	res, err := executor.ExecContext(ctx, userQuery, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed", "query", userQuery, "args", []any{id}, "result", rowsAffected, "error", err)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
