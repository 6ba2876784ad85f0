package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-spa-host/internal/config"
	"github.com/MKhiriev/go-spa-host/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHealth_ArtifactAvailable(t *testing.T) {
	h := newTestHandler(t,
		&service.Services{ArtifactService: &mockArtifactService{}},
		config.Static{},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()

	h.getHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestGetHealth_ArtifactUnavailable(t *testing.T) {
	h := newTestHandler(t,
		&service.Services{ArtifactService: &mockArtifactService{err: service.ErrArtifactNotAvailable}},
		config.Static{},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()

	h.getHealth(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unavailable")
}
