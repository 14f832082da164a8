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

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, in services.UserInput) (*models.UserDB, error)
	Patch(ctx context.Context, id int64, patch services.UserPatch) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a full user update.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// First name
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	LastName string `json:"last_name"`

	// Initials
	Initials string `json:"initials"`

	// Email
	// required: true
	Email string `json:"email"`

	// Status, defaults to ACTIVE
	Status string `json:"status"`
}

// PatchUserRequest represents the JSON body for a partial user update;
// omitted fields keep their prior values.
// swagger:model PatchUserRequest
type PatchUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Initials  *string `json:"initials"`
	Email     *string `json:"email"`
	Status    *string `json:"status"`
}

// NewUpdateUserHandler returns an HTTP handler for full user updates.
// @Summary Update a user
// @Description Re-validates and overwrites all mutable fields; id and created_at never change
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "User fields"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} map[string][]string "Field validation errors"
// @Failure 404 {object} handlers.DetailResponse "User not found"
// @Router /api/users/{id}/ [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DetailResponse{Detail: jsonParseError})
			return
		}

		user, err := svc.Update(r.Context(), id, services.UserInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Initials:  req.Initials,
			Email:     req.Email,
			Status:    req.Status,
		})
		if err != nil {
			writeUserWriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

// NewPatchUserHandler returns an HTTP handler for partial user updates.
// @Summary Partially update a user
// @Description Updates only the supplied fields; omitted fields keep prior values
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User id"
// @Param patchUserRequest body handlers.PatchUserRequest true "Subset of user fields"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} map[string][]string "Field validation errors"
// @Failure 404 {object} handlers.DetailResponse "User not found"
// @Router /api/users/{id}/ [patch]
func NewPatchUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DetailResponse{Detail: notFoundDetail})
			return
		}

		var req PatchUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DetailResponse{Detail: jsonParseError})
			return
		}

		user, err := svc.Patch(r.Context(), id, services.UserPatch{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Initials:  req.Initials,
			Email:     req.Email,
			Status:    req.Status,
		})
		if err != nil {
			writeUserWriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

// writeUserWriteError maps an update failure onto the response.
func writeUserWriteError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrUserNotFound):
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
