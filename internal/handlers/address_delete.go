package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/services"
)

// AddressDeleter defines the interface that the service must implement.
type AddressDeleter interface {
	Delete(ctx context.Context, userID, addressID int64) error
}

// NewDeleteAddressHandler returns an HTTP handler that deletes one address
// scoped by its owning user.
// @Summary Delete an address
// @Description Deletes the address matching both the user id and the address id
// @Tags addresses
// @Param id path int true "User id"
// @Param address_id path int true "Address id"
// @Success 204 "Address deleted"
// @Failure 404 {object} handlers.DetailResponse "Address not found for this user"
// @Router /api/users/{id}/address/{address_id}/ [delete]
func NewDeleteAddressHandler(svc AddressDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, addressID, ok := parseAddressPath(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			return
		}

		if err := svc.Delete(r.Context(), userID, addressID); err != nil {
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

		w.WriteHeader(http.StatusNoContent)
	}
}
