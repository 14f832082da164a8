package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
)

// ErrUserNotFound is returned when no user matches the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserReader defines read operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	EmailTaken(ctx context.Context, email string, excludeID *int64) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, firstName, lastName, initials, email, status string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, firstName, lastName, initials, email, status string) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserInput carries the writable fields of a create or full-update request.
// Read-only fields (id, timestamps) have no place here, so the service
// ignores them even when callers supply values.
type UserInput struct {
	FirstName string `json:"first_name" validate:"omitempty,max=60"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Initials  string `json:"initials" validate:"omitempty,max=30"`
	Email     string `json:"email" validate:"required,max=100,email"`
	Status    string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UserPatch carries the fields present in a partial update. A nil field was
// omitted from the request and keeps its prior value.
type UserPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Initials  *string `json:"initials"`
	Email     *string `json:"email"`
	Status    *string `json:"status"`
}

// UserService orchestrates user CRUD with validation and the email
// uniqueness invariant.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	validate *validator.Validate
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		validate: newValidate(),
	}
}

// List returns all users with their addresses.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Get returns one user with its addresses.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create validates the input and persists a new user.
func (svc *UserService) Create(ctx context.Context, in UserInput) (*models.UserDB, error) {
	if in.Status == "" {
		in.Status = models.UserStatusActive
	}

	if err := svc.validateUser(ctx, in, nil); err != nil {
		return nil, err
	}

	user, err := svc.writer.Save(ctx, in.FirstName, in.LastName, in.Initials, in.Email, in.Status)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	return user, nil
}

// Update re-validates all fields and overwrites the user's mutable fields.
// Its id and created_at are never altered.
func (svc *UserService) Update(ctx context.Context, id int64, in UserInput) (*models.UserDB, error) {
	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	if in.Status == "" {
		in.Status = models.UserStatusActive
	}

	if err := svc.validateUser(ctx, in, &id); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, id, in.FirstName, in.LastName, in.Initials, in.Email, in.Status)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	updated.Addresses = existing.Addresses
	return updated, nil
}

// Patch updates only the supplied fields; omitted fields keep their prior
// values. The merged record is validated as a whole.
func (svc *UserService) Patch(ctx context.Context, id int64, patch UserPatch) (*models.UserDB, error) {
	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	in := UserInput{
		FirstName: existing.FirstName,
		LastName:  existing.LastName,
		Initials:  existing.Initials,
		Email:     existing.Email,
		Status:    existing.Status,
	}
	if patch.FirstName != nil {
		in.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		in.LastName = *patch.LastName
	}
	if patch.Initials != nil {
		in.Initials = *patch.Initials
	}
	if patch.Email != nil {
		in.Email = *patch.Email
	}
	if patch.Status != nil {
		in.Status = *patch.Status
	}
	if in.Status == "" {
		in.Status = models.UserStatusActive
	}

	if err := svc.validateUser(ctx, in, &id); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, id, in.FirstName, in.LastName, in.Initials, in.Email, in.Status)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	updated.Addresses = existing.Addresses
	return updated, nil
}

// Delete removes the user and, by cascade, all of its addresses.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

// validateUser runs field validation plus the email uniqueness pre-check.
// The uniqueness check mirrors the store constraint and excludes the record
// being updated.
func (svc *UserService) validateUser(ctx context.Context, in UserInput, excludeID *int64) error {
	fields := checkStruct(svc.validate, in)

	if len(fields["email"]) == 0 {
		taken, err := svc.reader.EmailTaken(ctx, in.Email, excludeID)
		if err != nil {
			logger.Log.Errorw("failed to check email uniqueness", "err", err)
			return err
		}
		if taken {
			fields["email"] = append(fields["email"], "A user with this email already exists.")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
