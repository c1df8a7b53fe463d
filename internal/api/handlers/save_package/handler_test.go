package save_package

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ConciergeBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages"
	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.SavePackageRequest
	err error
}

func (f *fakeService) Save(_ context.Context, req *models.SavePackageRequest) (*models.PackageResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	id := req.ID
	if id == "" {
		id = "3f1c2a5e-8a7b-4f0e-9d3c-1b2a3c4d5e6f"
	}
	return &models.PackageResponse{ID: id, Name: req.Name, Guests: req.Guests, Total: 690, Currency: "USD"}, nil
}

const honeymoon = `{"name":"Honeymoon","guestCount":2,"items":[{"id":"spa_massage","quantity":1}]}`

func serve(h *Handler, sessionID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/packages", strings.NewReader(body))
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	middleware.Session(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Create(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "session-1", honeymoon)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "session-1", svc.got.OwnerID)
	assert.Equal(t, "Honeymoon", svc.got.Name)

	var body models.PackageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, 690.0, body.Total)
}

func TestHandle_Update(t *testing.T) {
	svc := &fakeService{}
	body := `{"id":"0b7e4b7e-2f4c-4a57-9d1e-5a6b7c8d9e0f","name":"Anniversary","guestCount":2,"items":[{"id":"spa_massage","quantity":1}]}`

	rec := serve(NewHandler(svc, nopLogger{}), "session-1", body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_OwnerComesFromSession(t *testing.T) {
	svc := &fakeService{}
	body := `{"name":"Honeymoon","guestCount":2,"ownerId":"session-2","items":[{"id":"spa_massage","quantity":1}]}`

	rec := serve(NewHandler(svc, nopLogger{}), "session-1", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "session-1", svc.got.OwnerID)
}

func TestHandle_ValidationError(t *testing.T) {
	fields := domain.FieldErrors{}
	fields.Add("startDate", "Enter a valid date (YYYY-MM-DD)")
	svc := &fakeService{err: &packages.ValidationError{Fields: fields}}

	rec := serve(NewHandler(svc, nopLogger{}), "session-1", honeymoon)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, handlers.CodeValidation, body.Code)
	assert.Equal(t, "Enter a valid date (YYYY-MM-DD)", body.Fields["startDate"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		sessionID  string
		body       string
		err        error
		wantStatus int
	}{
		{name: "missing session", body: honeymoon, wantStatus: http.StatusUnauthorized},
		{name: "malformed body", sessionID: "session-1", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "invalid id", sessionID: "session-1", body: honeymoon,
			err: fmt.Errorf("%w: invalid package id", packages.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "foreign package", sessionID: "session-1", body: honeymoon,
			err: packages.ErrPackageNotFound, wantStatus: http.StatusNotFound},
		{name: "storage failure", sessionID: "session-1", body: honeymoon,
			err: fmt.Errorf("%w: db down", packages.ErrInternal), wantStatus: http.StatusInternalServerError},
		{name: "unexpected", sessionID: "session-1", body: honeymoon,
			err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.sessionID, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
