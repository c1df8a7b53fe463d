package delete_package

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ConciergeBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	owner, id string
	err       error
}

func (f *fakeService) Delete(_ context.Context, ownerID, id string) error {
	f.owner, f.id = ownerID, id
	return f.err
}

func serve(h *Handler) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Handle("/api/v1/packages/{packageId}", middleware.Session(http.HandlerFunc(h.Handle))).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/packages/pkg-1", nil)
	req.Header.Set(middleware.SessionHeader, "session-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "session-1", svc.owner)
	assert.Equal(t, "pkg-1", svc.id)
}

func TestHandle_NotFound(t *testing.T) {
	rec := serve(NewHandler(&fakeService{err: packages.ErrPackageNotFound}, nopLogger{}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
