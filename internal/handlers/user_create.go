package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pzaitsev/user-records/internal/logger"
	"github.com/pzaitsev/user-records/internal/models"
	"github.com/pzaitsev/user-records/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, in services.UserInput) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for creating a user.
// Read-only fields (id, created_at, updated_at) are absent and therefore
// silently ignored when supplied.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// default: John
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"last_name"`

	// Initials
	// default: JD
	Initials string `json:"initials"`

	// Email
	// required: true
	// default: john.doe@example.com
	Email string `json:"email"`

	// Status, defaults to ACTIVE
	// default: ACTIVE
	Status string `json:"status"`
}

// NewCreateUserHandler returns an HTTP handler that creates a user.
// @Summary Create a new user
// @Description Creates a user with server-assigned id and timestamps
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User fields"
// @Success 201 {object} models.UserDB "Created user"
// @Failure 400 {object} map[string][]string "Field validation errors"
// @Router /api/users/ [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DetailResponse{Detail: jsonParseError})
			return
		}

		user, err := svc.Create(r.Context(), services.UserInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Initials:  req.Initials,
			Email:     req.Email,
			Status:    req.Status,
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
		json.NewEncoder(w).Encode(user)
	}
}
