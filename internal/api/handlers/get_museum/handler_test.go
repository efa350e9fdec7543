package get_museum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MuseumService/internal/domain"
	"github.com/m04kA/SMC-MuseumService/internal/service/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubCatalog struct {
	museum *domain.Museum
	err    error
}

func (s *stubCatalog) GetMuseum(ctx context.Context, id string) (*domain.Museum, error) {
	return s.museum, s.err
}

func getMuseum(t *testing.T, handler *Handler, museumID string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/museums/{museumId}", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/museums/"+museumID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ReturnsMuseum(t *testing.T) {
	handler := NewHandler(&stubCatalog{
		museum: &domain.Museum{
			ID:   "vitm",
			Name: "VITM",
			Tickets: map[string]domain.Ticket{
				"general": {Name: "General", Price: 200},
			},
		},
	}, nopLogger{})

	rec := getMuseum(t, handler, "vitm")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MuseumResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "vitm", resp.ID)
	assert.Equal(t, float64(200), resp.Tickets["general"].Price)
}

func TestHandle_NotFound(t *testing.T) {
	handler := NewHandler(&stubCatalog{err: catalog.ErrMuseumNotFound}, nopLogger{})

	rec := getMuseum(t, handler, "ghost")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	handler := NewHandler(&stubCatalog{err: catalog.ErrInternal}, nopLogger{})

	rec := getMuseum(t, handler, "vitm")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
