package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bidboard/internal/adapter/http/handlers/mocks"
	"bidboard/internal/domain/entities"
	"bidboard/internal/domain/pipeline"
	"bidboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(t *testing.T) (*gin.Engine, *mocks.MockIEstimateUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.POST("/v1/estimates", h.CreateEstimate)
	r.GET("/v1/estimates", h.ListEstimates)
	r.GET("/v1/estimates/:id", h.GetEstimate)
	r.PATCH("/v1/estimates/:id", h.UpdateEstimateFields)
	r.PATCH("/v1/estimates/:id/status", h.SetStatus)
	r.POST("/v1/estimates/:id/line-items", h.AddLineItem)
	r.POST("/v1/estimates/:id/line-items/import", h.ImportLineItems)
	r.PATCH("/v1/estimates/:id/line-items/:item_id", h.UpdateLineItem)
	r.DELETE("/v1/estimates/:id/line-items/:item_id", h.RemoveLineItem)
	r.GET("/v1/pipeline/board", h.GetBoard)
	r.GET("/v1/pipeline/stats", h.GetStats)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleEstimate() entities.Estimate {
	e := pipeline.NewEstimate("est-1", "c1", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	e.LineItems = []entities.LineItem{{ID: "l1", Name: "Steel", Qty: 2, Rate: 100, Amount: 200}}
	return pipeline.Recalculate(e)
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/estimates", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body uses default customer", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().CreateEstimate(gomock.Any(), "").Return(sampleEstimate(), nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" || body["status"] != "Draft" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("explicit customer", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().CreateEstimate(gomock.Any(), "c2").Return(sampleEstimate(), nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates", `{"customer_id":"c2"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	t.Run("success includes breakdown", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(sampleEstimate(), nil)

		w := doJSON(r, http.MethodGet, "/v1/estimates/est-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["subtotal"].(float64) != 200 {
			t.Fatalf("unexpected subtotal: %v", body["subtotal"])
		}
	})

	errCases := []struct {
		err  error
		code int
		name string
	}{
		{usecase.ErrEstimateNotFound, http.StatusNotFound, "ESTIMATE_NOT_FOUND"},
		{fmt.Errorf("%w: l9", usecase.ErrLineItemNotFound), http.StatusNotFound, "LINE_ITEM_NOT_FOUND"},
		{usecase.ErrInvalidEstimateID, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrStaleAIResponse, http.StatusConflict, "STALE_AI_RESPONSE"},
		{usecase.ErrAIServiceNotConfigured, http.StatusServiceUnavailable, "AI_NOT_CONFIGURED"},
		{fmt.Errorf("%w: audit: quota", usecase.ErrAIService), http.StatusBadGateway, "AI_SERVICE_ERROR"},
		{errors.New("db down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errCases {
		t.Run("maps "+tc.name, func(t *testing.T) {
			r, uc := newEstimateRouter(t)
			uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{}, tc.err)

			w := doJSON(r, http.MethodGet, "/v1/estimates/est-1", "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] != tc.name {
				t.Fatalf("expected code %s, got %v", tc.name, body["code"])
			}
		})
	}
}

func TestEstimateHandler_SetStatus(t *testing.T) {
	t.Run("missing status", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/status", `{"status":"Archived"}`)
		if w.Code != http.StatusBadRequest || !bytes.Contains(w.Body.Bytes(), []byte("INVALID_STATUS")) {
			t.Fatalf("expected 400 INVALID_STATUS, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("case-insensitive status", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		won := sampleEstimate()
		won.Status = entities.EstimateStatusWon
		uc.EXPECT().SetStatus(gomock.Any(), "est-1", entities.EstimateStatusWon).Return(won, nil)

		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/status", `{"status":"won"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_UpdateEstimateFields(t *testing.T) {
	r, uc := newEstimateRouter(t)
	uc.EXPECT().SetEstimateFields(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, f pipeline.EstimateFields) (entities.Estimate, error) {
			if f.Margin == nil || *f.Margin != 20 || f.Tax != nil || f.Name == nil || *f.Name != "Clinic" {
				t.Fatalf("unexpected fields: %+v", f)
			}
			return sampleEstimate(), nil
		},
	)

	w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1", `{"margin":20,"name":"Clinic"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestEstimateHandler_LineItems(t *testing.T) {
	t.Run("add without body", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().AddLineItem(gomock.Any(), "est-1", entities.LineItemFields{}).Return(sampleEstimate(), nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates/est-1/line-items", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update keeps explicit zero", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().UpdateLineItem(gomock.Any(), "est-1", "l1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, f entities.LineItemFields) (entities.Estimate, error) {
				if f.Qty == nil || *f.Qty != 0 || f.Rate != nil {
					t.Fatalf("unexpected fields: %+v", f)
				}
				return sampleEstimate(), nil
			},
		)

		w := doJSON(r, http.MethodPatch, "/v1/estimates/est-1/line-items/l1", `{"qty":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove unknown item", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().RemoveLineItem(gomock.Any(), "est-1", "l9").Return(entities.Estimate{}, usecase.ErrLineItemNotFound)

		w := doJSON(r, http.MethodDelete, "/v1/estimates/est-1/line-items/l9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("import requires items", func(t *testing.T) {
		r, _ := newEstimateRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/estimates/est-1/line-items/import", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("import batch", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().BulkImport(gomock.Any(), "est-1", gomock.Len(2)).Return(sampleEstimate(), nil)

		w := doJSON(r, http.MethodPost, "/v1/estimates/est-1/line-items/import", `{"items":[{},{"name":"Rebar"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_Pipeline(t *testing.T) {
	t.Run("board passes query", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Board(gomock.Any(), "acme").Return(pipeline.Board([]entities.Estimate{sampleEstimate()}), nil)

		w := doJSON(r, http.MethodGet, "/v1/pipeline/board?q=acme", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var cols []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &cols); err != nil || len(cols) != 4 {
			t.Fatalf("unexpected board: %s", w.Body.String())
		}
		if cols[0]["count"].(float64) != 1 {
			t.Fatalf("expected one draft, got %v", cols[0]["count"])
		}
	})

	t.Run("stats", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().Stats(gomock.Any()).Return(pipeline.Stats{EstimateCount: 3, WinRate: 33}, nil)

		w := doJSON(r, http.MethodGet, "/v1/pipeline/stats", "")
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"win_rate":33`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newEstimateRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Estimate{sampleEstimate()}, nil)

		w := doJSON(r, http.MethodGet, "/v1/estimates", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
