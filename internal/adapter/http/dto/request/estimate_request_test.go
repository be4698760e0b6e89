package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bidboard/internal/domain/entities"
)

func TestStatusRequest_ResolveStatus(t *testing.T) {
	st, err := StatusRequest{Status: " won "}.ResolveStatus()
	if err != nil || st != entities.EstimateStatusWon {
		t.Fatalf("expected Won, got %q err=%v", st, err)
	}

	_, err = StatusRequest{Status: "Archived"}.ResolveStatus()
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestLineItemRequest_ToFields(t *testing.T) {
	var r LineItemRequest
	if err := json.Unmarshal([]byte(`{"qty":0,"name":"Rebar"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	f := r.ToFields()
	if f.Qty == nil || *f.Qty != 0 {
		t.Fatalf("explicit zero qty must be present")
	}
	if f.Rate != nil || f.Description != nil {
		t.Fatalf("omitted fields must stay absent: %+v", f)
	}
	if *f.Name != "Rebar" {
		t.Fatalf("unexpected name %q", *f.Name)
	}
}

func TestImportLineItemsRequest_ToFields(t *testing.T) {
	var r ImportLineItemsRequest
	if err := json.Unmarshal([]byte(`{"items":[{},{"name":"B","rate":5}]}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := r.ToFields()
	if len(got) != 2 || got[0].Name != nil || *got[1].Name != "B" || *got[1].Rate != 5 {
		t.Fatalf("unexpected fields: %+v", got)
	}
}

func TestEstimateFieldsRequest_ToFields(t *testing.T) {
	t.Run("trims ids and parses status", func(t *testing.T) {
		var r EstimateFieldsRequest
		if err := json.Unmarshal([]byte(`{"customer_id":" c2 ","due_date":" 2025-06-01 ","status":"submitted","margin":0}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		f, err := r.ToFields()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if *f.CustomerID != "c2" || *f.DueDate != "2025-06-01" || *f.Status != entities.EstimateStatusSubmitted {
			t.Fatalf("unexpected fields: %+v", f)
		}
		if f.Margin == nil || *f.Margin != 0 || f.Tax != nil || f.Name != nil {
			t.Fatalf("unexpected optional fields: %+v", f)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := "pending"
		_, err := EstimateFieldsRequest{Status: &bad}.ToFields()
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestSalesAdviceRequest_ToHistory(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	r := SalesAdviceRequest{History: []ChatMessageRequest{{Role: "user", Text: "hi"}, {Role: "model", Text: "hello"}}}

	got := r.ToHistory(now)
	if len(got) != 2 || got[0].Role != entities.ChatRoleUser || got[1].Role != entities.ChatRoleModel || !got[1].Timestamp.Equal(now) {
		t.Fatalf("unexpected history: %+v", got)
	}
}

func TestApplySuggestionRequest_ToSuggestedItem(t *testing.T) {
	got := ApplySuggestionRequest{Name: "Dumpster", SuggestedQty: 6, SuggestedRate: 650}.ToSuggestedItem()
	if got.Name != "Dumpster" || got.SuggestedQty != 6 || got.SuggestedRate != 650 {
		t.Fatalf("unexpected item: %+v", got)
	}
}
