package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
)

const addressColumns = "id, user_id, address_type, valid_from, post_code, city, country_code, street, building_number, created_at, updated_at"

// AddressReadRepository handles address read operations. Every lookup is
// scoped by the owning user id; an address belonging to a different user is
// indistinguishable from a missing one.
type AddressReadRepository struct {
	db *sqlx.DB
}

func NewAddressReadRepository(db *sqlx.DB) *AddressReadRepository {
	return &AddressReadRepository{db: db}
}

// ListByUserID returns all addresses owned by the given user.
// An unknown user id yields an empty slice.
func (r *AddressReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.UserAddressDB, error) {
	const query = `
		SELECT ` + addressColumns + `
		FROM users_addresses
		WHERE user_id = $1
		ORDER BY id
	`

	addresses := []models.UserAddressDB{}
	err := r.db.SelectContext(ctx, &addresses, query, userID)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", []any{userID}, "rows", len(addresses), "error", err)

	if err != nil {
		return nil, err
	}

	return addresses, nil
}

// GetByID returns the address matching both the owning user id and the
// address id, or nil if no row matches the pair.
func (r *AddressReadRepository) GetByID(ctx context.Context, userID, addressID int64) (*models.UserAddressDB, error) {
	const query = `
		SELECT ` + addressColumns + `
		FROM users_addresses
		WHERE user_id = $1 AND id = $2
	`

	var address models.UserAddressDB
	err := r.db.GetContext(ctx, &address, query, userID, addressID)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", []any{userID, addressID}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &address, nil
}

// TupleTaken reports whether the user already has an address with the same
// address_type and valid_from. When excludeID is non-nil that address is
// ignored, so updates do not collide with the record being updated.
func (r *AddressReadRepository) TupleTaken(ctx context.Context, userID int64, addressType string, validFrom time.Time, excludeID *int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM users_addresses
			WHERE user_id = $1
			  AND address_type = $2
			  AND valid_from = $3
			  AND ($4::BIGINT IS NULL OR id <> $4)
		)
	`

	args := []any{userID, addressType, validFrom, excludeID}

	var taken bool
	err := r.db.GetContext(ctx, &taken, query, args...)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", args, "result", taken, "error", err)

	return taken, err
}

// AddressWriteRepository handles address write operations.
type AddressWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAddressWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AddressWriteRepository {
	return &AddressWriteRepository{db: db, txGetter: txGetter}
}

func (r *AddressWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new address for the given user. The owner comes from the
// URL path, never from the request body.
func (r *AddressWriteRepository) Save(ctx context.Context, userID int64, addressType string, validFrom time.Time, postCode, city, countryCode, street, buildingNumber string) (*models.UserAddressDB, error) {
	const query = `
		INSERT INTO users_addresses
			(user_id, address_type, valid_from, post_code, city, country_code, street, building_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + addressColumns

	args := []any{userID, addressType, validFrom, postCode, city, countryCode, street, buildingNumber}

	var address models.UserAddressDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &address, query, args...)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	return &address, nil
}

// Update overwrites the mutable fields of an address scoped by owner and
// refreshes updated_at. Returns nil if no row matches the (user, address)
// pair.
func (r *AddressWriteRepository) Update(ctx context.Context, userID, addressID int64, addressType string, validFrom time.Time, postCode, city, countryCode, street, buildingNumber string) (*models.UserAddressDB, error) {
	const query = `
		UPDATE users_addresses
		SET address_type = $3,
		    valid_from = $4,
		    post_code = $5,
		    city = $6,
		    country_code = $7,
		    street = $8,
		    building_number = $9,
		    updated_at = NOW()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + addressColumns

	args := []any{userID, addressID, addressType, validFrom, postCode, city, countryCode, street, buildingNumber}

	var address models.UserAddressDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &address, query, args...)

	logger.Log.Infow("query executed", "query", oneLine(query), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &address, nil
}

// Delete removes the address matching the (user, address) pair.
// Reports whether such a row existed.
func (r *AddressWriteRepository) Delete(ctx context.Context, userID, addressID int64) (bool, error) {
	const query = `DELETE FROM users_addresses WHERE user_id = $1 AND id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, userID, addressID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed", "query", query, "args", []any{userID, addressID}, "result", rowsAffected, "error", err)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
