package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/alchemorsel-v2/scaler/internal/types"
)

func TestFormatQuantities(t *testing.T) {
	ta := setupTestAPI(t)

	w := ta.do(http.MethodPost, "/api/v1/quantities/format",
		`{"quantities":[1.5,null,0.125,-2.75,0.3333,0,100]}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.FormatQuantitiesResponse
	decode(t, w, &resp)
	assert.Equal(t, []string{"1 ½", "", "⅛", "-2 ¾", "⅓", "0", "100"}, resp.Formatted)
}

func TestFormatQuantities_InvalidBody(t *testing.T) {
	ta := setupTestAPI(t)

	for _, body := range []string{`{}`, `{"quantities":["one"]}`, `not json`} {
		w := ta.do(http.MethodPost, "/api/v1/quantities/format", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestScaleQuantity(t *testing.T) {
	tests := []struct {
		name string
		body string
		want types.ScaleQuantityResponse
	}{
		{"whole result", `{"quantity":2,"factor":1.5}`, types.ScaleQuantityResponse{Quantity: 3, Display: "3"}},
		{"fraction result", `{"quantity":0.5,"factor":0.25}`, types.ScaleQuantityResponse{Quantity: 0.125, Display: "⅛"}},
		{"missing quantity", `{"quantity":null,"factor":2}`, types.ScaleQuantityResponse{Quantity: 0, Display: "0"}},
		{"missing factor", `{"quantity":2}`, types.ScaleQuantityResponse{Quantity: 0, Display: "0"}},
	}

	ta := setupTestAPI(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ta.do(http.MethodPost, "/api/v1/quantities/scale", tt.body, "")
			assert.Equal(t, http.StatusOK, w.Code)

			var resp types.ScaleQuantityResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.want, resp)
		})
	}
}

func TestScaleQuantity_Overflow(t *testing.T) {
	ta := setupTestAPI(t)

	for _, body := range []string{
		`{"quantity":1e308,"factor":10}`,
		`{"quantity":1e308,"factor":-10}`,
	} {
		w := ta.do(http.MethodPost, "/api/v1/quantities/scale", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"error":"scaled quantity out of range"}`, w.Body.String())
	}
}

func TestScaleServings(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"doubles count", `{"text":"Serves 4","factor":2}`, http.StatusOK, "Serves 8"},
		{"range", `{"text":"Feeds 2-4 people","factor":2}`, http.StatusOK, "Feeds 4-8 people"},
		{"fractional result", `{"text":"Serves 2","factor":1.25}`, http.StatusOK, "Serves 2 ½"},
		{"no numbers", `{"text":"For the whole family","factor":3}`, http.StatusOK, "For the whole family"},
		{"missing text", `{"factor":2}`, http.StatusOK, ""},
		{"missing factor", `{"text":"Serves 4"}`, http.StatusBadRequest, ""},
		{"negative factor", `{"text":"Serves 4","factor":-1}`, http.StatusBadRequest, ""},
		{"factor too large", `{"text":"Serves 4","factor":500}`, http.StatusBadRequest, ""},
	}

	ta := setupTestAPI(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ta.do(http.MethodPost, "/api/v1/servings/scale", tt.body, "")
			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status != http.StatusOK {
				return
			}

			var resp types.ScaleServingsResponse
			decode(t, w, &resp)
			assert.Equal(t, tt.want, resp.Text)
		})
	}
}
