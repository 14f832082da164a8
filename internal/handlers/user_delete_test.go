package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pzaitsev/user-records/internal/services"
)

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deleted", func(t *testing.T) {
		svc := NewMockUserDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/1/", nil),
			map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		NewDeleteUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewMockUserDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), int64(99999)).Return(services.ErrUserNotFound)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/99999/", nil),
			map[string]string{"id": "99999"})
		rr := httptest.NewRecorder()

		NewDeleteUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		svc := NewMockUserDeleter(ctrl)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/abc/", nil),
			map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		NewDeleteUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		svc := NewMockUserDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(assert.AnError)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/1/", nil),
			map[string]string{"id": "1"})
		rr := httptest.NewRecorder()

		NewDeleteUserHandler(svc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}
