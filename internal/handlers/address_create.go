package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
	"github.com/pzaitsev/user-records/internal/services"
)

// AddressCreator defines the interface that the service must implement.
type AddressCreator interface {
	Create(ctx context.Context, userID int64, in services.AddressInput) (*models.UserAddressDB, error)
}

// CreateAddressRequest represents the JSON body for creating an address.
// The owner comes from the URL path; a user reference in the body is ignored.
// swagger:model CreateAddressRequest
type CreateAddressRequest struct {
	// Address type
	// required: true
	// default: HOME
	AddressType string `json:"address_type"`

	// Instant the address becomes valid
	// required: true
	ValidFrom time.Time `json:"valid_from"`

	// Postal code
	// required: true
	// default: 12345
	PostCode string `json:"post_code"`

	// City
	// required: true
	// default: Springfield
	City string `json:"city"`

	// ISO-like country code
	// required: true
	// default: US
	CountryCode string `json:"country_code"`

	// Street
	// required: true
	// default: Main Street
	Street string `json:"street"`

	// Building number
	// required: true
	// default: 42
	BuildingNumber string `json:"building_number"`
}

// NewCreateAddressHandler returns an HTTP handler that creates an address
// for the user in the path.
// @Summary Create an address
// @Description Creates an address owned by the user in the path
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param createAddressRequest body handlers.CreateAddressRequest true "Address fields"
// @Success 201 {object} models.UserAddressDB "Created address"
// @Failure 400 {object} map[string][]string "Field validation errors"
// @Router /api/users/{id}/address/ [post]
func NewCreateAddressHandler(svc AddressCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			return
		}

		var req CreateAddressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DetailResponse{Detail: jsonParseError})
			return
		}

		address, err := svc.Create(r.Context(), userID, services.AddressInput{
			AddressType:    req.AddressType,
			ValidFrom:      req.ValidFrom,
			PostCode:       req.PostCode,
			City:           req.City,
			CountryCode:    req.CountryCode,
			Street:         req.Street,
			BuildingNumber: req.BuildingNumber,
		})
		if err != nil {
			var vErr *services.ValidationError
			switch {
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
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(address)
	}
}
