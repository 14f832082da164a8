package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
)

// ErrAddressNotFound is returned when no address matches the requested
// (user id, address id) pair. An address owned by a different user is
// reported the same way as a missing one.
var ErrAddressNotFound = errors.New("address not found")

// AddressReader defines read operations for user addresses.
type AddressReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.UserAddressDB, error)
	GetByID(ctx context.Context, userID, addressID int64) (*models.UserAddressDB, error)
	TupleTaken(ctx context.Context, userID int64, addressType string, validFrom time.Time, excludeID *int64) (bool, error)
}

// AddressWriter defines write operations for user addresses.
type AddressWriter interface {
	Save(ctx context.Context, userID int64, addressType string, validFrom time.Time, postCode, city, countryCode, street, buildingNumber string) (*models.UserAddressDB, error)
	Update(ctx context.Context, userID, addressID int64, addressType string, validFrom time.Time, postCode, city, countryCode, street, buildingNumber string) (*models.UserAddressDB, error)
	Delete(ctx context.Context, userID, addressID int64) (bool, error)
}

// AddressInput carries the writable fields of an address create or
// full-update request. The owning user always comes from the URL path.
type AddressInput struct {
	AddressType    string    `json:"address_type" validate:"required,oneof=HOME INVOICE POST WORK"`
	ValidFrom      time.Time `json:"valid_from" validate:"required"`
	PostCode       string    `json:"post_code" validate:"required,max=6"`
	City           string    `json:"city" validate:"required,max=60"`
	CountryCode    string    `json:"country_code" validate:"required,max=3"`
	Street         string    `json:"street" validate:"required,max=100"`
	BuildingNumber string    `json:"building_number" validate:"required,max=60"`
}

// AddressPatch carries the fields present in a partial update. A nil field
// was omitted from the request and keeps its prior value.
type AddressPatch struct {
	AddressType    *string    `json:"address_type"`
	ValidFrom      *time.Time `json:"valid_from"`
	PostCode       *string    `json:"post_code"`
	City           *string    `json:"city"`
	CountryCode    *string    `json:"country_code"`
	Street         *string    `json:"street"`
	BuildingNumber *string    `json:"building_number"`
}

// AddressService orchestrates address CRUD scoped by the owning user,
// enforcing the (user, address_type, valid_from) uniqueness invariant.
type AddressService struct {
	reader   AddressReader
	writer   AddressWriter
	validate *validator.Validate
}

// NewAddressService creates a new AddressService instance.
func NewAddressService(reader AddressReader, writer AddressWriter) *AddressService {
	return &AddressService{
		reader:   reader,
		writer:   writer,
		validate: newValidate(),
	}
}

// List returns all addresses owned by the given user. An unknown user id
// yields an empty list; parent existence is not checked here.
func (svc *AddressService) List(ctx context.Context, userID int64) ([]models.UserAddressDB, error) {
	addresses, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list addresses", "user_id", userID, "err", err)
		return nil, err
	}
	return addresses, nil
}

// Get returns the address matching both the user id and the address id.
func (svc *AddressService) Get(ctx context.Context, userID, addressID int64) (*models.UserAddressDB, error) {
	address, err := svc.reader.GetByID(ctx, userID, addressID)
	if err != nil {
		logger.Log.Errorw("failed to get address", "user_id", userID, "address_id", addressID, "err", err)
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

// Create validates the input and persists a new address for the given user.
func (svc *AddressService) Create(ctx context.Context, userID int64, in AddressInput) (*models.UserAddressDB, error) {
	if err := svc.validateAddress(ctx, userID, in, nil); err != nil {
		return nil, err
	}

	address, err := svc.writer.Save(ctx, userID, in.AddressType, in.ValidFrom, in.PostCode, in.City, in.CountryCode, in.Street, in.BuildingNumber)
	if err != nil {
		logger.Log.Errorw("failed to save address", "user_id", userID, "err", err)
		return nil, err
	}
	return address, nil
}

// Update re-validates all fields and overwrites the address, scoped by owner.
func (svc *AddressService) Update(ctx context.Context, userID, addressID int64, in AddressInput) (*models.UserAddressDB, error) {
	existing, err := svc.reader.GetByID(ctx, userID, addressID)
	if err != nil {
		logger.Log.Errorw("failed to get address", "user_id", userID, "address_id", addressID, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrAddressNotFound
	}

	if err := svc.validateAddress(ctx, userID, in, &addressID); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, userID, addressID, in.AddressType, in.ValidFrom, in.PostCode, in.City, in.CountryCode, in.Street, in.BuildingNumber)
	if err != nil {
		logger.Log.Errorw("failed to update address", "user_id", userID, "address_id", addressID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrAddressNotFound
	}
	return updated, nil
}

// Patch updates only the supplied fields; omitted fields keep their prior
// values. The merged record is validated as a whole.
func (svc *AddressService) Patch(ctx context.Context, userID, addressID int64, patch AddressPatch) (*models.UserAddressDB, error) {
	existing, err := svc.reader.GetByID(ctx, userID, addressID)
	if err != nil {
		logger.Log.Errorw("failed to get address", "user_id", userID, "address_id", addressID, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrAddressNotFound
	}

	in := AddressInput{
		AddressType:    existing.AddressType,
		ValidFrom:      existing.ValidFrom,
		PostCode:       existing.PostCode,
		City:           existing.City,
		CountryCode:    existing.CountryCode,
		Street:         existing.Street,
		BuildingNumber: existing.BuildingNumber,
	}
	if patch.AddressType != nil {
		in.AddressType = *patch.AddressType
	}
	if patch.ValidFrom != nil {
		in.ValidFrom = *patch.ValidFrom
	}
	if patch.PostCode != nil {
		in.PostCode = *patch.PostCode
	}
	if patch.City != nil {
		in.City = *patch.City
	}
	if patch.CountryCode != nil {
		in.CountryCode = *patch.CountryCode
	}
	if patch.Street != nil {
		in.Street = *patch.Street
	}
	if patch.BuildingNumber != nil {
		in.BuildingNumber = *patch.BuildingNumber
	}

	if err := svc.validateAddress(ctx, userID, in, &addressID); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, userID, addressID, in.AddressType, in.ValidFrom, in.PostCode, in.City, in.CountryCode, in.Street, in.BuildingNumber)
	if err != nil {
		logger.Log.Errorw("failed to update address", "user_id", userID, "address_id", addressID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrAddressNotFound
	}
	return updated, nil
}

// Delete removes the address matching the (user id, address id) pair.
func (svc *AddressService) Delete(ctx context.Context, userID, addressID int64) error {
	deleted, err := svc.writer.Delete(ctx, userID, addressID)
	if err != nil {
		logger.Log.Errorw("failed to delete address", "user_id", userID, "address_id", addressID, "err", err)
		return err
	}
	if !deleted {
		return ErrAddressNotFound
	}
	return nil
}

// validateAddress runs field validation plus the (user, address_type,
// valid_from) uniqueness pre-check. The tuple check only runs once its two
// fields are individually valid.
func (svc *AddressService) validateAddress(ctx context.Context, userID int64, in AddressInput, excludeID *int64) error {
	fields := checkStruct(svc.validate, in)

	if len(fields["address_type"]) == 0 && len(fields["valid_from"]) == 0 {
		taken, err := svc.reader.TupleTaken(ctx, userID, in.AddressType, in.ValidFrom, excludeID)
		if err != nil {
			logger.Log.Errorw("failed to check address uniqueness", "user_id", userID, "err", err)
			return err
		}
		if taken {
			fields[NonFieldErrors] = append(fields[NonFieldErrors], "The fields user, address_type, valid_from must make a unique set.")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
