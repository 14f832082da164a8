package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
)

// AddressLister defines the interface that the service must implement.
type AddressLister interface {
	List(ctx context.Context, userID int64) ([]models.UserAddressDB, error)
}

// NewListAddressesHandler returns an HTTP handler that lists the addresses
// of one user. Parent existence is not checked; an unknown user id yields
// an empty list.
// @Summary List a user's addresses
// @Description Returns all addresses belonging to the user in the path
// @Tags addresses
// @Produce json
// @Param id path int true "User id"
// @Success 200 {array} models.UserAddressDB "Addresses"
// @Router /api/users/{id}/address/ [get]
func NewListAddressesHandler(svc AddressLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			return
		}

		addresses, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: internalServerError})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(addresses)
	}
}
