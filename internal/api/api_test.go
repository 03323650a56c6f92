package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/alchemorsel-v2/scaler/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router  *gin.Engine
	recipes *mocks.MockRecipeService
	exports *mocks.MockExportService
	tokens  *mocks.MockTokenService
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ta := &testAPI{
		router:  gin.New(),
		recipes: new(mocks.MockRecipeService),
		exports: new(mocks.MockExportService),
		tokens:  new(mocks.MockTokenService),
	}
	RegisterRoutes(ta.router, Services{
		Recipes: ta.recipes,
		Exports: ta.exports,
		Tokens:  ta.tokens,
	}, zap.NewNop())

	t.Cleanup(func() {
		ta.recipes.AssertExpectations(t)
		ta.exports.AssertExpectations(t)
		ta.tokens.AssertExpectations(t)
	})
	return ta
}

func (ta *testAPI) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ta.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	ta := setupTestAPI(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := ta.do(http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		decode(t, w, &body)
		assert.Equal(t, "healthy", body["status"])
	}
}
