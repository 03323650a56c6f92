package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/alchemorsel-v2/scaler/internal/api"
	"github.com/pageza/alchemorsel-v2/scaler/internal/database"
	"github.com/pageza/alchemorsel-v2/scaler/internal/model"
	"github.com/pageza/alchemorsel-v2/scaler/internal/router"
	"github.com/pageza/alchemorsel-v2/scaler/internal/service"
	"github.com/pageza/alchemorsel-v2/scaler/internal/testdb"
)

const jwtSecret = "integration-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	logger := zap.NewNop()
	r, err := router.SetupRouter(router.Options{
		Services: api.Services{
			Recipes: service.NewRecipeService(db, logger),
			Exports: service.NewExportService(nil, logger),
			Tokens:  service.NewTokenService(jwtSecret),
		},
		Logger: logger,
	})
	require.NoError(t, err)
	return r
}

func request(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// runScalingScenario creates a recipe over HTTP and reads it back scaled
func runScalingScenario(t *testing.T, db *gorm.DB) {
	r := setupRouter(t, db)
	owner := uuid.New()
	token, err := service.NewTokenService(jwtSecret).GenerateToken(owner, "cook", time.Hour)
	require.NoError(t, err)

	w := request(t, r, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":     "Buttermilk Biscuits",
		"servings": "Makes 8 biscuits",
		"ingredients": []map[string]interface{}{
			{"quantity": 2, "unit": "cups", "name": "flour"},
			{"quantity": 0.75, "unit": "cup", "name": "buttermilk", "note": "cold"},
			{"quantity": 1.0 / 3, "unit": "cup", "name": "butter"},
			{"name": "flaky salt", "note": "to finish"},
		},
		"instructions": []string{"Cut butter into flour", "Bake at 425"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Recipe model.Recipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Recipe.ID.String()

	w = request(t, r, http.MethodGet, "/api/v1/recipes/"+id+"/scaled?factor=1.5", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var scaled struct {
		Recipe model.ScaledRecipe `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scaled))
	assert.Equal(t, "Makes 12 biscuits", scaled.Recipe.Servings)

	got := make([]string, 0, len(scaled.Recipe.Ingredients))
	for _, ing := range scaled.Recipe.Ingredients {
		got = append(got, ing.Line)
	}
	assert.Equal(t, []string{
		"3 cups flour",
		"1 ⅛ cup buttermilk, cold",
		"½ cup butter",
		"flaky salt, to finish",
	}, got)

	w = request(t, r, http.MethodGet, "/api/v1/recipes/"+id+"/scaled?servings=4", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scaled))
	assert.Equal(t, 0.5, scaled.Recipe.Factor)
	assert.Equal(t, "1 cups flour", scaled.Recipe.Ingredients[0].Line)
	assert.Equal(t, "⅙ cup butter", scaled.Recipe.Ingredients[2].Line)

	w = request(t, r, http.MethodGet, "/api/v1/recipes/"+id+"/shopping-list.xlsx?factor=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	qty, err := f.GetCellValue(sheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "4", qty)

	w = request(t, r, http.MethodPost, "/api/v1/recipes/"+id+"/shopping-list/export", nil, token)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	other, err := service.NewTokenService(jwtSecret).GenerateToken(uuid.New(), "stranger", time.Hour)
	require.NoError(t, err)
	w = request(t, r, http.MethodDelete, "/api/v1/recipes/"+id, nil, other)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(t, r, http.MethodDelete, "/api/v1/recipes/"+id, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, r, http.MethodGet, "/api/v1/recipes/"+id+"/scaled", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScalingScenario_SQLite(t *testing.T) {
	db, err := database.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)

	runScalingScenario(t, db)
}

func TestScalingScenario_Postgres(t *testing.T) {
	tdb := testdb.SetupTestDB(t)

	runScalingScenario(t, tdb.DB)
}
