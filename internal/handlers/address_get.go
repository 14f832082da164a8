package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
	"github.com/pzaitsev/user-records/internal/services"
)

// AddressGetter defines the interface that the service must implement.
type AddressGetter interface {
	Get(ctx context.Context, userID, addressID int64) (*models.UserAddressDB, error)
}

// parseAddressPath extracts the (user id, address id) pair from the URL.
func parseAddressPath(r *http.Request) (userID, addressID int64, ok bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	addressID, err = strconv.ParseInt(chi.URLParam(r, "address_id"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return userID, addressID, true
}

// NewGetAddressHandler returns an HTTP handler that retrieves one address
// scoped by its owning user. An address owned by a different user is
// reported as not found.
// @Summary Retrieve an address
// @Description Returns the address matching both the user id and the address id
// @Tags addresses
// @Produce json
// @Param id path int true "User id"
// @Param address_id path int true "Address id"
// @Success 200 {object} models.UserAddressDB "Address"
// @Failure 404 {object} handlers.DetailResponse "Address not found for this user"
// @Router /api/users/{id}/address/{address_id}/ [get]
func NewGetAddressHandler(svc AddressGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, addressID, ok := parseAddressPath(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			return
		}

		address, err := svc.Get(r.Context(), userID, addressID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAddressNotFound):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: internalServerError})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(address)
	}
}
