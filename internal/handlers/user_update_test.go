package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pzaitsev/user-records/internal/models"
	"github.com/pzaitsev/user-records/internal/services"
)

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("updated", func(t *testing.T) {
		svc := NewMockUserUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), int64(1), services.UserInput{
				FirstName: "Johnny",
				LastName:  "Updated",
				Email:     "john.updated@example.com",
			}).
			Return(&models.UserDB{
				ID:        1,
				FirstName: "Johnny",
				LastName:  "Updated",
				Email:     "john.updated@example.com",
				Status:    "ACTIVE",
			}, nil)

		body := `{"first_name":"Johnny","last_name":"Updated","email":"john.updated@example.com"}`
		req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/users/1/", strings.NewReader(body)),
			map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		NewUpdateUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var user models.UserDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
		assert.Equal(t, "Updated", user.LastName)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockUserUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), int64(99999), gomock.Any()).
			Return(nil, services.ErrUserNotFound)

		body := `{"last_name":"Ghost","email":"ghost@x.com"}`
		req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/users/99999/", strings.NewReader(body)),
			map[string]string{"id": "99999"})
		rr := httptest.NewRecorder()

		NewUpdateUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		svc := NewMockUserUpdater(ctrl)
		svc.EXPECT().
			Update(gomock.Any(), int64(1), gomock.Any()).
			Return(nil, &services.ValidationError{Fields: map[string][]string{
				"email": {"A user with this email already exists."},
			}})

		body := `{"last_name":"Doe","email":"other@example.com"}`
		req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/users/1/", strings.NewReader(body)),
			map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		NewUpdateUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"email":["A user with this email already exists."]}`, rr.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := NewMockUserUpdater(ctrl)

		req := withURLParams(httptest.NewRequest(http.MethodPut, "/api/users/1/", strings.NewReader("{invalid")),
			map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		NewUpdateUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"detail":"JSON parse error."}`, rr.Body.String())
	})
}

func TestPatchUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("only supplied fields forwarded", func(t *testing.T) {
		svc := NewMockUserUpdater(ctrl)
		svc.EXPECT().
			Patch(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, patch services.UserPatch) (*models.UserDB, error) {
				assert.NotNil(t, patch.FirstName)
				assert.Equal(t, "Updated John", *patch.FirstName)
				assert.Nil(t, patch.LastName)
				assert.Nil(t, patch.Email)
				assert.Nil(t, patch.Status)
				return &models.UserDB{ID: 1, FirstName: "Updated John", LastName: "Doe", Email: "doe@x.com", Status: "ACTIVE"}, nil
			})

		body := `{"first_name":"Updated John"}`
		req := withURLParams(httptest.NewRequest(http.MethodPatch, "/api/users/1/", strings.NewReader(body)),
			map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		NewPatchUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var user models.UserDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&user))
		assert.Equal(t, "Updated John", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockUserUpdater(ctrl)
		svc.EXPECT().
			Patch(gomock.Any(), int64(99999), gomock.Any()).
			Return(nil, services.ErrUserNotFound)

		body := `{"first_name":"Ghost"}`
		req := withURLParams(httptest.NewRequest(http.MethodPatch, "/api/users/99999/", strings.NewReader(body)),
			map[string]string{"id": "99999"})
		rr := httptest.NewRecorder()

		NewPatchUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		svc := NewMockUserUpdater(ctrl)

		req := withURLParams(httptest.NewRequest(http.MethodPatch, "/api/users/abc/", strings.NewReader(`{}`)),
			map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		NewPatchUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})
}
