package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidboard/internal/domain/pricing"
	"bidboard/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h, err := buildHandlers(context.Background(), cfg)
	require.NoError(t, err)
	return NewRouter(h)
}

func memoryConfig() config.Config {
	return config.Config{
		Backend:        config.BackendMemory,
		SeedDemoData:   true,
		NegativePolicy: pricing.NegativeAllow,
		AIGatewayMock:  true,
		AIStaleGuard:   true,
		AIMaxAttempts:  1,
	}
}

func call(t *testing.T, r http.Handler, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

type estimateBody struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
	Subtotal  float64 `json:"subtotal"`
	LineItems []struct {
		ID     string  `json:"id"`
		Name   string  `json:"name"`
		Qty    float64 `json:"qty"`
		Amount float64 `json:"amount"`
	} `json:"line_items"`
}

func TestPing(t *testing.T) {
	r := testRouter(t, memoryConfig())
	var body map[string]string
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/ping", nil, &body))
	require.Equal(t, "pong", body["message"])
}

func TestEstimateLifecycle(t *testing.T) {
	r := testRouter(t, memoryConfig())

	var created estimateBody
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/v1/estimates", nil, &created))
	require.Equal(t, "Draft", created.Status)
	require.Zero(t, created.Total)
	base := "/v1/estimates/" + created.ID

	var e estimateBody
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, base+"/line-items", map[string]any{"name": "Steel", "rate": 12000}, &e))
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, base+"/line-items", map[string]any{"name": "Labor", "qty": 450, "rate": 85}, &e))
	require.InDelta(t, 62699.4375, e.Total, 1e-6)

	require.Equal(t, http.StatusOK, call(t, r, http.MethodPatch, base+"/line-items/"+e.LineItems[0].ID, map[string]any{"qty": 2}, &e))
	require.Equal(t, 24000.0, e.LineItems[0].Amount)
	require.InDelta(t, 62250*1.15*1.085, e.Total, 1e-6)

	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, base+"/line-items/import", map[string]any{"items": []any{map[string]any{}, map[string]any{"name": "Rebar"}}}, &e))
	require.Len(t, e.LineItems, 4)
	require.Equal(t, "Extracted Item", e.LineItems[2].Name)
	require.Equal(t, 1.0, e.LineItems[2].Qty)

	require.Equal(t, http.StatusOK, call(t, r, http.MethodPatch, base+"/status", map[string]any{"status": "Won"}, &e))
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPatch, base+"/status", map[string]any{"status": "lost"}, &e))
	require.Equal(t, "Lost", e.Status)

	require.Equal(t, http.StatusNotFound, call(t, r, http.MethodPatch, base+"/line-items/missing", map[string]any{"qty": 3}, nil))
	require.Equal(t, http.StatusNotFound, call(t, r, http.MethodPatch, "/v1/estimates/missing/status", map[string]any{"status": "Won"}, nil))

	var cols []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/pipeline/board", nil, &cols))
	require.Len(t, cols, 4)
	require.Equal(t, "Lost", cols[3].Status)
	require.Equal(t, 1, cols[3].Count)

	var stats map[string]float64
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/pipeline/stats", nil, &stats))
	require.Equal(t, 4.0, stats["estimate_count"])
}

func TestScanDocumentWithMockGateway(t *testing.T) {
	r := testRouter(t, memoryConfig())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "quote.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/estimates/est3/ai/scan", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var e estimateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	require.Len(t, e.LineItems, 4)
	require.Equal(t, "Concrete", e.LineItems[2].Name)
	require.Equal(t, "Extracted Item", e.LineItems[3].Name)

	var active map[string]string
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/session/active-estimate", nil, &active))
	require.Equal(t, "est3", active["estimate_id"])
}

func TestAIWithoutGateway(t *testing.T) {
	cfg := memoryConfig()
	cfg.AIGatewayMock = false
	cfg.GeminiAPIKey = ""
	r := testRouter(t, cfg)

	require.Equal(t, http.StatusServiceUnavailable, call(t, r, http.MethodPost, "/v1/estimates/est1/ai/audit", nil, nil))

	var e estimateBody
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/estimates/est1", nil, &e))
	require.InDelta(t, 85200, e.Total, 1e-6)
}

func TestCustomersRoutes(t *testing.T) {
	r := testRouter(t, memoryConfig())

	var list []map[string]any
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/customers", nil, &list))
	require.Len(t, list, 4)
	require.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/v1/customers/c99", nil, nil))
}

func TestNonFiniteValuesRejected(t *testing.T) {
	r := testRouter(t, memoryConfig())

	var apiErr map[string]string
	require.Equal(t, http.StatusBadRequest, call(t, r, http.MethodPost, "/v1/estimates/est1/line-items", map[string]any{"name": "Overflow", "qty": 1e200, "rate": 1e200}, &apiErr))
	require.Equal(t, "INVALID_REQUEST", apiErr["code"])
	require.Equal(t, http.StatusBadRequest, call(t, r, http.MethodPatch, "/v1/estimates/est1", map[string]any{"margin": 1e308}, nil))
	require.Equal(t, http.StatusBadRequest, call(t, r, http.MethodPost, "/v1/estimates/est1/line-items/import", map[string]any{"items": []any{map[string]any{"qty": 1e300, "rate": 1e300}}}, nil))

	var e estimateBody
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/estimates/est1", nil, &e))
	require.InDelta(t, 85200, e.Total, 1e-6)

	var list []estimateBody
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/estimates", nil, &list))
	require.NotEmpty(t, list)

	var cols []map[string]any
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/pipeline/board", nil, &cols))
	require.Len(t, cols, 4)

	var stats map[string]float64
	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/pipeline/stats", nil, &stats))
	require.Equal(t, float64(len(list)), stats["estimate_count"])
}

func TestSuggestionsWithMockGateway(t *testing.T) {
	r := testRouter(t, memoryConfig())

	var batch struct {
		EstimateID  string           `json:"estimate_id"`
		Generation  uint64           `json:"generation"`
		Suggestions []map[string]any `json:"suggestions"`
	}
	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/v1/estimates/est1/ai/suggestions", nil, &batch))
	require.Equal(t, "est1", batch.EstimateID)
	require.NotZero(t, batch.Generation)
	require.Len(t, batch.Suggestions, 3)

	apply := map[string]any{"generation": batch.Generation, "name": "Dumpster Service", "suggested_qty": 6, "suggested_rate": 650}
	var e estimateBody
	require.Equal(t, http.StatusCreated, call(t, r, http.MethodPost, "/v1/estimates/est1/ai/suggestions/apply", apply, &e))
	require.Equal(t, "Dumpster Service", e.LineItems[len(e.LineItems)-1].Name)
	itemCount := len(e.LineItems)

	require.Equal(t, http.StatusOK, call(t, r, http.MethodPut, "/v1/session/active-estimate", map[string]any{"estimate_id": "est2"}, nil))

	var apiErr map[string]string
	require.Equal(t, http.StatusConflict, call(t, r, http.MethodPost, "/v1/estimates/est1/ai/suggestions/apply", apply, &apiErr))
	require.Equal(t, "STALE_AI_RESPONSE", apiErr["code"])

	require.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/v1/estimates/est1", nil, &e))
	require.Len(t, e.LineItems, itemCount)
}
