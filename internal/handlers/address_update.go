package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
	"github.com/pzaitsev/user-records/internal/services"
)

// AddressUpdater defines the interface that the service must implement.
type AddressUpdater interface {
	Update(ctx context.Context, userID, addressID int64, in services.AddressInput) (*models.UserAddressDB, error)
	Patch(ctx context.Context, userID, addressID int64, patch services.AddressPatch) (*models.UserAddressDB, error)
}

// UpdateAddressRequest represents the JSON body for a full address update.
// swagger:model UpdateAddressRequest
type UpdateAddressRequest struct {
	// Address type
	// required: true
	AddressType string `json:"address_type"`

	// Instant the address becomes valid
	// required: true
	ValidFrom time.Time `json:"valid_from"`

	// Postal code
	// required: true
	PostCode string `json:"post_code"`

	// City
	// required: true
	City string `json:"city"`

	// ISO-like country code
	// required: true
	CountryCode string `json:"country_code"`

	// Street
	// required: true
	Street string `json:"street"`

	// Building number
	// required: true
	BuildingNumber string `json:"building_number"`
}

// PatchAddressRequest represents the JSON body for a partial address update;
// omitted fields keep their prior values.
// swagger:model PatchAddressRequest
type PatchAddressRequest struct {
	AddressType    *string    `json:"address_type"`
	ValidFrom      *time.Time `json:"valid_from"`
	PostCode       *string    `json:"post_code"`
	City           *string    `json:"city"`
	CountryCode    *string    `json:"country_code"`
	Street         *string    `json:"street"`
	BuildingNumber *string    `json:"building_number"`
}

// NewUpdateAddressHandler returns an HTTP handler for full address updates.
// @Summary Update an address
// @Description Re-validates and overwrites all fields of an address scoped by its owner
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param address_id path int true "Address id"
// @Param updateAddressRequest body handlers.UpdateAddressRequest true "Address fields"
// @Success 200 {object} models.UserAddressDB "Updated address"
// @Failure 400 {object} map[string][]string "Field validation errors"
// @Failure 404 {object} handlers.DetailResponse "Address not found for this user"
// @Router /api/users/{id}/address/{address_id}/ [put]
func NewUpdateAddressHandler(svc AddressUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, addressID, ok := parseAddressPath(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			return
		}

		var req UpdateAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DetailResponse{Detail: jsonParseError})
			return
		}

		address, err := svc.Update(r.Context(), userID, addressID, services.AddressInput{
			AddressType:    req.AddressType,
			ValidFrom:      req.ValidFrom,
			PostCode:       req.PostCode,
			City:           req.City,
			CountryCode:    req.CountryCode,
			Street:         req.Street,
			BuildingNumber: req.BuildingNumber,
		})
		if err != nil {
			writeAddressWriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(address)
	}
}

// NewPatchAddressHandler returns an HTTP handler for partial address updates.
// @Summary Partially update an address
// @Description Updates only the supplied fields; omitted fields keep prior values
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param address_id path int true "Address id"
// @Param patchAddressRequest body handlers.PatchAddressRequest true "Subset of address fields"
// @Success 200 {object} models.UserAddressDB "Updated address"
// @Failure 400 {object} map[string][]string "Field validation errors"
// @Failure 404 {object} handlers.DetailResponse "Address not found for this user"
// @Router /api/users/{id}/address/{address_id}/ [patch]
func NewPatchAddressHandler(svc AddressUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, addressID, ok := parseAddressPath(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			return
		}

		var req PatchAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DetailResponse{Detail: jsonParseError})
			return
		}

		address, err := svc.Patch(r.Context(), userID, addressID, services.AddressPatch{
			AddressType:    req.AddressType,
			ValidFrom:      req.ValidFrom,
			PostCode:       req.PostCode,
			City:           req.City,
			CountryCode:    req.CountryCode,
			Street:         req.Street,
			BuildingNumber: req.BuildingNumber,
		})
		if err != nil {
			writeAddressWriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(address)
	}
}

// writeAddressWriteError maps an update failure onto the response.
func writeAddressWriteError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrAddressNotFound):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
	case errors.As(err, &vErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(vErr.Fields)
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: internalServerError})
	}
}
