package list_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SBN-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SBN-BookingService/pkg/logger/loggertest"
)

type stubService struct {
	resp *models.BookingListResponse
	err  error
}

func (s stubService) List(context.Context) (*models.BookingListResponse, error) {
	return s.resp, s.err
}

func TestHandle(t *testing.T) {
	svc := stubService{resp: &models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: "BK-1"}, {ID: "BK-2"}},
		Total:    2,
	}}
	h := NewHandler(svc, loggertest.New(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListBookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "BK-1", resp.Bookings[0].ID)
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	h := NewHandler(stubService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}, loggertest.New(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.JSONEq(t, `{"success":true,"bookings":[]}`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	h := NewHandler(stubService{err: errors.New("boom")}, loggertest.New(t))

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
