package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pzaitsev/user-records/internal/services"
)

func TestDeleteAddressHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deleted", func(t *testing.T) {
		svc := NewMockAddressDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(nil)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/1/address/10/", nil),
			map[string]string{"id": "1", "address_id": "10"})
		rr := httptest.NewRecorder()

		NewDeleteAddressHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("address of another user", func(t *testing.T) {
		svc := NewMockAddressDeleter(ctrl)
		svc.EXPECT().Delete(gomock.Any(), int64(2), int64(10)).Return(services.ErrAddressNotFound)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/2/address/10/", nil),
			map[string]string{"id": "2", "address_id": "10"})
		rr := httptest.NewRecorder()

		NewDeleteAddressHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})

	t.Run("non-numeric address id", func(t *testing.T) {
		svc := NewMockAddressDeleter(ctrl)

		req := withURLParams(httptest.NewRequest(http.MethodDelete, "/api/users/1/address/abc/", nil),
			map[string]string{"id": "1", "address_id": "abc"})
		rr := httptest.NewRecorder()

		NewDeleteAddressHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})
}
