// README: HTTP-level tests for the recommendation endpoint.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"roadfit/internal/http/handlers"
	"roadfit/internal/modules/recommend"
)

// buildTestRouter wires a minimal Gin engine with the recommend handler.
// A nil vehicle source is fine: the requests below carry inline vehicles.
func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := recommend.NewService(nil, nil, nil, 3)
	r := gin.New()
	h := handlers.NewRecommendHandler(svc)
	r.POST("/api/recommendation", h.Evaluate)
	return r
}

func doRequest(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/recommendation", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRequest() map[string]any {
	return map[string]any{
		"people_count":            3,
		"luggage_big_count":       1,
		"luggage_small_count":     2,
		"trip_length_km":          150,
		"trip_length_hours":       2,
		"preference":              "comfort",
		"transmission_preference": "automatic",
		"driving_skills":          "comfortable",
		"parking_difficulty":      5,
		"condition_id":            800,
		"temperature_c":           -2,
		"wind_speed_mps":          12.5,
		"rain_volume_1h":          10,
		"snow_volume_1h":          5,
		"visibility_m":            100,
		"road_coordinates": []any{
			[]float64{52.52001, 13.40494, 36.5, 120},
			[]float64{52.52003, 13.40498, 36.5, 30},
			[]float64{52.5201, 13.4049, 36.4, 85},
			[]float64{52.52016, 13.40481, 36.3, 25},
			[]float64{52.52004, 13.40464, 36.5, 40},
		},
		"vehicles": []map[string]any{
			{
				"id":                     "1a1257a0-e495-43ff-b213-9786338e159b",
				"brand":                  "VOLKSWAGEN",
				"model":                  "GOLF",
				"transmission_type":      "Automatic",
				"passengers_count":       5,
				"bags_count":             4,
				"is_exciting_discount":   true,
				"vehicle_cost_value_eur": 36400,
			},
			{
				"id":                     "0bddecb3-202f-4281-8dcb-d41c1fbde6df",
				"brand":                  "VOLKSWAGEN",
				"model":                  "T-CROSS",
				"transmission_type":      "Automatic",
				"passengers_count":       5,
				"bags_count":             4,
				"is_recommended":         true,
				"vehicle_cost_value_eur": 28800,
			},
		},
	}
}

func TestEvaluate_OK(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, validRequest())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		RiskScore      float64 `json:"risk_score"`
		HighwayPercent float64 `json:"highway_percent"`
		Vehicles       []struct {
			ID   string `json:"id"`
			Rank int    `json:"rank"`
		} `json:"vehicles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	// 2 of 5 points at highway speed; risk > 0 in this freezing low-visibility setup.
	if resp.HighwayPercent != 40 {
		t.Errorf("highway_percent = %f, want 40", resp.HighwayPercent)
	}
	if resp.RiskScore <= 0 || resp.RiskScore > 100 {
		t.Errorf("risk_score = %f, want within (0,100]", resp.RiskScore)
	}

	if len(resp.Vehicles) != 2 {
		t.Fatalf("ranked %d vehicles, want 2", len(resp.Vehicles))
	}
	if resp.Vehicles[0].ID != "0bddecb3-202f-4281-8dcb-d41c1fbde6df" || resp.Vehicles[0].Rank != 1 {
		t.Errorf("top vehicle = %s/%d, want the recommended T-Cross first",
			resp.Vehicles[0].ID, resp.Vehicles[0].Rank)
	}
}

func TestEvaluate_InvalidJSON(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEvaluate_MalformedTraceElement(t *testing.T) {
	r := buildTestRouter()
	body := validRequest()
	body["road_coordinates"] = []any{
		[]float64{52.52001, 13.40494, 36.5, 120},
		[]float64{52.52003, 13.40498}, // not a 4-field coordinate
	}
	w := doRequest(r, body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEvaluate_MissingTrace(t *testing.T) {
	r := buildTestRouter()
	body := validRequest()
	delete(body, "road_coordinates")
	w := doRequest(r, body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEvaluate_ParkingDifficultyOutOfRange(t *testing.T) {
	r := buildTestRouter()
	body := validRequest()
	body["parking_difficulty"] = 11
	w := doRequest(r, body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
