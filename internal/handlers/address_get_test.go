package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pzaitsev/user-records/internal/models"
	"github.com/pzaitsev/user-records/internal/services"
)

func TestGetAddressHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		svc := NewMockAddressGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), int64(1), int64(10)).
			Return(&models.UserAddressDB{
				ID:          10,
				UserID:      1,
				AddressType: "HOME",
				ValidFrom:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				City:        "Warsaw",
			}, nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/users/1/address/10/", nil),
			map[string]string{"id": "1", "address_id": "10"})
		rr := httptest.NewRecorder()

		NewGetAddressHandler(svc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var address models.UserAddressDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&address))
		assert.Equal(t, int64(10), address.ID)
		assert.Equal(t, "HOME", address.AddressType)
	})

	t.Run("address of another user", func(t *testing.T) {
		svc := NewMockAddressGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), int64(2), int64(10)).
			Return(nil, services.ErrAddressNotFound)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/users/2/address/10/", nil),
			map[string]string{"id": "2", "address_id": "10"})
		rr := httptest.NewRecorder()

		NewGetAddressHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})

	t.Run("non-numeric address id", func(t *testing.T) {
		svc := NewMockAddressGetter(ctrl)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/users/1/address/abc/", nil),
			map[string]string{"id": "1", "address_id": "abc"})
		rr := httptest.NewRecorder()

		NewGetAddressHandler(svc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"detail":"Not found."}`, rr.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		svc := NewMockAddressGetter(ctrl)
		svc.EXPECT().Get(gomock.Any(), int64(1), int64(10)).
			Return(nil, assert.AnError)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/users/1/address/10/", nil),
			map[string]string{"id": "1", "address_id": "10"})
		rr := httptest.NewRecorder()

		NewGetAddressHandler(svc)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}
