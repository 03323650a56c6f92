package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/internal/api"
	"github.com/pageza/alchemorsel-v2/scaler/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupRouter(t *testing.T) {
	router, err := SetupRouter(Options{
		Services: api.Services{
			Recipes: new(mocks.MockRecipeService),
			Exports: new(mocks.MockExportService),
			Tokens:  new(mocks.MockTokenService),
		},
		Registry: prometheus.NewRegistry(),
		Logger:   zap.NewNop(),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quantities/format", strings.NewReader(`{"quantities":[0.75]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"formatted":["¾"]}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `scaler_http_requests_total{method="POST",route="/api/v1/quantities/format",status="200"} 1`)
}

func TestSetupRouter_WithoutMetrics(t *testing.T) {
	router, err := SetupRouter(Options{Logger: zap.NewNop()})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
